package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/utils/async"
	"github.com/m-mizutani/gt"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

func newLoggerContext(buf *safeBuffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelError}))
	return ctxlog.With(context.Background(), logger)
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler and Wait blocks until done", func(t *testing.T) {
		var executed atomic.Bool
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			executed.Store(true)
			return nil
		})

		async.Wait()
		gt.True(t, executed.Load())
	})

	t.Run("logs returned error", func(t *testing.T) {
		buf := &safeBuffer{}
		async.Dispatch(newLoggerContext(buf), func(ctx context.Context) error {
			return errors.New("slack unreachable")
		})

		async.Wait()
		gt.String(t, buf.String()).Contains("error in async handler")
		gt.String(t, buf.String()).Contains("slack unreachable")
	})

	t.Run("recovers from panic with stack trace", func(t *testing.T) {
		buf := &safeBuffer{}
		async.Dispatch(newLoggerContext(buf), func(ctx context.Context) error {
			panic("notifier exploded")
		})

		async.Wait()
		gt.String(t, buf.String()).Contains("panic in async handler")
		gt.String(t, buf.String()).Contains("notifier exploded")
		gt.String(t, buf.String()).Contains("dispatch_test.go")
	})

	t.Run("handler context survives caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var cancelled atomic.Bool

		async.Dispatch(ctx, func(newCtx context.Context) error {
			cancel()
			select {
			case <-newCtx.Done():
				cancelled.Store(true)
			default:
			}
			gt.NotNil(t, ctxlog.From(newCtx))
			return nil
		})

		async.Wait()
		gt.False(t, cancelled.Load())
	})
}
