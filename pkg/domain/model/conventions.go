package model

import (
	"fmt"
	"strings"
)

// Conventions bundles the fixed naming rules of the release workflow. It is
// passed by value into the pipeline so tests can construct their own.
type Conventions struct {
	TriggerLabel         string // label whose application starts the workflow
	ReleaseLabelPrefix   string // prefix of the label declaring the version
	ReleaseVersionPrefix string // prefix stripped from the branch name to get the tag
	SourceBranch         string
	MarkerFile           string
	MarkerContent        string
	CommitMessageFormat  string // %s = release branch
	TagMessageFormat     string // %s = release branch
	OwnersFile           string
}

// DefaultConventions returns the conventions used in production
func DefaultConventions() Conventions {
	return Conventions{
		TriggerLabel:         "release-branch-needed",
		ReleaseLabelPrefix:   "release/",
		ReleaseVersionPrefix: "release-",
		SourceBranch:         "master",
		MarkerFile:           "release-version.txt",
		MarkerContent:        "",
		CommitMessageFormat:  "create new release branch for %s",
		TagMessageFormat:     "New release branch for %s",
		OwnersFile:           "OWNERS",
	}
}

// BranchName strips the release label prefix from a release label
func (c Conventions) BranchName(label string) string {
	return strings.TrimPrefix(label, c.ReleaseLabelPrefix)
}

// TagName strips the release version prefix from a release branch name
func (c Conventions) TagName(branch string) string {
	return strings.TrimPrefix(branch, c.ReleaseVersionPrefix)
}

func (c Conventions) CommitMessage(branch string) string {
	return fmt.Sprintf(c.CommitMessageFormat, branch)
}

func (c Conventions) TagMessage(branch string) string {
	return fmt.Sprintf(c.TagMessageFormat, branch)
}
