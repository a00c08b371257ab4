package config

import (
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/infra/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds operator notification settings. Both channels are optional.
type Notify struct {
	SlackWebhookURL string `toml:"slack_webhook_url" masq:"secret"`
	SentryDSN       string `toml:"sentry_dsn" masq:"secret"`
	SentryEnv       string `toml:"sentry_env"`
}

// Flags returns CLI flags for operator notifications
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for operator alerts",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("GITBOT_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for operator alerts",
			Destination: &c.SentryDSN,
			Sources:     cli.EnvVars("GITBOT_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Destination: &c.SentryEnv,
			Sources:     cli.EnvVars("GITBOT_SENTRY_ENV"),
		},
	}
}

// Configure returns a notifier for every configured channel, or notify.Nop if none
func (c *Notify) Configure() (interfaces.Notifier, error) {
	var notifiers notify.Multi

	if c.SlackWebhookURL != "" {
		notifiers = append(notifiers, notify.NewSlack(c.SlackWebhookURL))
	}
	if c.SentryDSN != "" {
		s, err := notify.NewSentry(c.SentryDSN, c.SentryEnv)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, s)
	}

	if len(notifiers) == 0 {
		return notify.Nop{}, nil
	}
	return notifiers, nil
}
