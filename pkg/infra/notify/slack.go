package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Slack posts operator notifications to an incoming webhook
type Slack struct {
	webhookURL string
}

// NewSlack creates a Slack notifier
func NewSlack(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL}
}

// Notify posts msg and err to the webhook
func (s *Slack) Notify(ctx context.Context, msg string, err error) error {
	text := fmt.Sprintf("[%s] %s", types.ServiceName, msg)
	if err != nil {
		text += fmt.Sprintf("\n```%s```", err.Error())
	}

	if err := slack.PostWebhookContext(ctx, s.webhookURL, &slack.WebhookMessage{Text: text}); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}
	return nil
}
