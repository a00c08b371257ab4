package github

import (
	"context"

	"github.com/google/go-github/v72/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
)

// EventProcessor parses GitHub webhook payloads and dispatches them by type
type EventProcessor struct {
	releaseUC interfaces.ReleaseBranchUseCase
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(releaseUC interfaces.ReleaseBranchUseCase) *EventProcessor {
	return &EventProcessor{
		releaseUC: releaseUC,
	}
}

// ProcessEvent parses payload as eventType. issues events go to the release
// branch pipeline; every other type is acknowledged as no_action_needed.
func (p *EventProcessor) ProcessEvent(ctx context.Context, eventType model.WebhookEventType, payload []byte) (*model.Response, error) {
	logger := ctxlog.From(ctx)

	parsed, err := github.ParseWebHook(string(eventType), payload)
	if err != nil {
		if eventType == model.EventTypeIssues {
			logger.Warn("Failed to parse issues event", "error", err)
			return model.OutcomeInvalidEvent.Response(0), nil
		}
		logger.Debug("Ignoring unparsable event", "event_type", eventType, "error", err)
		return model.OutcomeNoActionNeeded.Response(0), nil
	}

	switch e := parsed.(type) {
	case *github.IssuesEvent:
		return p.releaseUC.HandleIssueEvent(ctx, model.NewIssueEvent(e))
	default:
		logger.Debug("Ignoring unsupported event type", "event_type", eventType)
		return model.OutcomeNoActionNeeded.Response(0), nil
	}
}
