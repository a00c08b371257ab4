package config

import (
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Tagger holds the identity that authors release tags
type Tagger struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Flags returns CLI flags for the tagger identity
func (c *Tagger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tagger-name",
			Usage:       "Name of the annotated tag author",
			Destination: &c.Name,
			Sources:     cli.EnvVars("GITBOT_TAGGER_NAME"),
		},
		&cli.StringFlag{
			Name:        "tagger-email",
			Usage:       "Email of the annotated tag author",
			Destination: &c.Email,
			Sources:     cli.EnvVars("GITBOT_TAGGER_EMAIL"),
		},
	}
}

// Model validates the identity and converts it
func (c *Tagger) Model() (model.Tagger, error) {
	if c.Name == "" || c.Email == "" {
		return model.Tagger{}, goerr.New("tagger name and email are required",
			goerr.V("name", c.Name),
			goerr.V("email", c.Email),
		)
	}
	return model.Tagger{Name: c.Name, Email: c.Email}, nil
}
