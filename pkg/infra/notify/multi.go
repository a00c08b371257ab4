package notify

import (
	"context"
	"errors"

	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
)

// Multi fans a notification out to every notifier
type Multi []interfaces.Notifier

func (m Multi) Notify(ctx context.Context, msg string, err error) error {
	var errs []error
	for _, n := range m {
		if nErr := n.Notify(ctx, msg, err); nErr != nil {
			errs = append(errs, nErr)
		}
	}
	return errors.Join(errs...)
}

// Nop discards notifications
type Nop struct{}

func (Nop) Notify(context.Context, string, error) error { return nil }
