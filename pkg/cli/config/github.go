package config

import (
	"os"

	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/gitbot/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration
type GitHub struct {
	WebhookSecret  string `masq:"secret"`
	Token          string `masq:"secret"`
	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
	PrivateKeyFile string
}

// Flags returns CLI flags for GitHub API credentials
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITBOT_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (alternative to token)",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("GITBOT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("GITBOT_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM content)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("GITBOT_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-private-key-file",
			Usage:       "Path to GitHub App private key PEM file",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("GITBOT_GITHUB_PRIVATE_KEY_FILE"),
		},
	}
}

// WebhookFlags returns the flag for the webhook secret, needed only by serve
func (c *GitHub) WebhookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("GITBOT_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

// Auth resolves credentials, reading the private key file if given
func (c *GitHub) Auth() (githubinfra.Auth, error) {
	auth := githubinfra.Auth{
		Token:          c.Token,
		AppID:          c.AppID,
		InstallationID: c.InstallationID,
		PrivateKey:     []byte(c.PrivateKey),
	}

	if c.PrivateKeyFile != "" {
		key, err := os.ReadFile(c.PrivateKeyFile)
		if err != nil {
			return githubinfra.Auth{}, goerr.Wrap(err, "failed to read GitHub App private key file", goerr.V("path", c.PrivateKeyFile))
		}
		auth.PrivateKey = key
	}

	if err := auth.Validate(); err != nil {
		return githubinfra.Auth{}, err
	}
	return auth, nil
}

// NewClientFactory builds the GitHub client factory from the configuration
func (c *GitHub) NewClientFactory() (interfaces.GitHubClientFactory, error) {
	auth, err := c.Auth()
	if err != nil {
		return nil, err
	}
	return githubinfra.NewFactory(auth)
}
