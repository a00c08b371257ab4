package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gitbot/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

type webhookUseCase struct {
	processor interfaces.EventProcessor
	notifier  interfaces.Notifier
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(processor interfaces.EventProcessor, notifier interfaces.Notifier) *webhookUseCase {
	return &webhookUseCase{
		processor: processor,
		notifier:  notifier,
	}
}

// ProcessEvent hands one delivery to the event processor and alerts operators
// when it ends in a fatal error or an unrecognized state.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) (*model.Response, error) {
	logger := ctxlog.From(ctx).With("delivery_id", event.ID, "event_type", event.Type)
	ctx = ctxlog.With(ctx, logger)

	resp, err := uc.processor.ProcessEvent(ctx, event.Type, event.RawPayload)
	if err != nil {
		uc.notify(ctx, "release branch request failed", err)
		return nil, err
	}

	logger.Info("Processed webhook event", "state", resp.State(), "status_code", resp.StatusCode)
	if resp.StatusCode == http.StatusInternalServerError {
		uc.notify(ctx, "release branch pipeline ended in unrecognized state",
			goerr.New("unrecognized outcome", goerr.V("state", resp.State())))
	}

	return resp, nil
}

func (uc *webhookUseCase) notify(ctx context.Context, msg string, cause error) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.Notify(ctx, msg, cause)
	})
}
