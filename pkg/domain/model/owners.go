package model

import (
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// OwnersManifest is the parsed OWNERS file. The first entry of Owners is the
// primary owner and the only login allowed to request a release branch.
type OwnersManifest struct {
	Owners []string `yaml:"owners"`
}

// ParseOwners parses and validates OWNERS file content
func ParseOwners(data []byte) (*OwnersManifest, error) {
	var manifest OwnersManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, goerr.Wrap(err, "failed to parse OWNERS as YAML")
	}

	if len(manifest.Owners) == 0 {
		return nil, goerr.New("owners field is missing or empty in OWNERS")
	}

	return &manifest, nil
}

// Primary returns the first owner
func (m *OwnersManifest) Primary() string {
	return m.Owners[0]
}
