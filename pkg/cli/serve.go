package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/cli/config"
	controller "github.com/m-mizutani/gitbot/pkg/controller/http"
	"github.com/m-mizutani/gitbot/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		releaseCfg releaseConfig
	)

	flags := append(serverCfg.Flags(), releaseCfg.github.WebhookFlags()...)
	flags = append(flags, releaseCfg.flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server receiving GitHub webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			webhookUC, err := releaseCfg.newWebhookUseCase()
			if err != nil {
				return goerr.Wrap(err, "failed to configure release branch automation")
			}

			logger.Info("Starting gitbot server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", releaseCfg.github),
				slog.Any("tagger", releaseCfg.tagger),
				slog.Any("notify", releaseCfg.notify),
			)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(releaseCfg.github.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			async.Wait()

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
