package interfaces

import (
	"context"

	"github.com/m-mizutani/gitbot/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent handles one delivery and returns the response to send back
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) (*model.Response, error)
}

// ReleaseBranchUseCase runs the release branch pipeline for one issues event
type ReleaseBranchUseCase interface {
	HandleIssueEvent(ctx context.Context, event *model.IssueEvent) (*model.Response, error)
}

// EventProcessor parses a raw delivery and dispatches it by event type
type EventProcessor interface {
	ProcessEvent(ctx context.Context, eventType model.WebhookEventType, payload []byte) (*model.Response, error)
}

// Notifier reports failures to the bot operators, not to the requester
type Notifier interface {
	Notify(ctx context.Context, msg string, err error) error
}
