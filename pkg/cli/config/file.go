package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file. Values fill settings that
// were not given by flags or environment variables.
//
//	[tagger]
//	name = "Release Bot"
//	email = "release-bot@example.com"
//
//	[notify]
//	slack_webhook_url = "https://hooks.slack.com/services/..."
type File struct {
	Path string
}

type fileContent struct {
	Tagger Tagger `toml:"tagger"`
	Notify Notify `toml:"notify"`
}

// Flags returns CLI flags for the configuration file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("GITBOT_CONFIG"),
		},
	}
}

// Apply loads the file, if any, and fills empty fields of tagger and notify
func (c *File) Apply(tagger *Tagger, notify *Notify) error {
	if c.Path == "" {
		return nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path))
	}

	var content fileContent
	if err := toml.Unmarshal(raw, &content); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path))
	}

	fill(&tagger.Name, content.Tagger.Name)
	fill(&tagger.Email, content.Tagger.Email)
	fill(&notify.SlackWebhookURL, content.Notify.SlackWebhookURL)
	fill(&notify.SentryDSN, content.Notify.SentryDSN)
	fill(&notify.SentryEnv, content.Notify.SentryEnv)

	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
