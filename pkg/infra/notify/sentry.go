package notify

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Sentry captures operator notifications as Sentry events
type Sentry struct {
	hub *sentry.Hub
}

// NewSentry initializes a dedicated Sentry client for dsn
func NewSentry(dsn, env string) (*Sentry, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     types.ServiceName + "@" + types.Version,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Sentry client")
	}

	return &Sentry{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// sentryContext carries msg and the values attached to a goerr error
func sentryContext(msg string, err error) sentry.Context {
	sc := sentry.Context{"message": msg}
	if gErr := goerr.Unwrap(err); gErr != nil {
		for k, v := range gErr.Values() {
			sc[k] = v
		}
	}
	return sc
}

// Notify captures err, or msg alone when err is nil
func (s *Sentry) Notify(ctx context.Context, msg string, err error) error {
	hub := s.hub.Clone()
	hub.Scope().SetTag("service", types.ServiceName)
	hub.Scope().SetContext(types.ServiceName, sentryContext(msg, err))

	if err != nil {
		hub.CaptureException(err)
	} else {
		hub.CaptureMessage(msg)
	}

	deadline := 2 * time.Second
	if d, ok := ctx.Deadline(); ok {
		deadline = time.Until(d)
	}
	if !hub.Flush(deadline) {
		return goerr.New("failed to flush Sentry events")
	}
	return nil
}
