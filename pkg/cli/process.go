package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gitbot/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdProcess() *cli.Command {
	var (
		releaseCfg releaseConfig
		eventPath  string
		eventType  string
	)

	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Aliases:     []string{"e"},
			Usage:       "Path to webhook payload JSON, - for stdin",
			Required:    true,
			Destination: &eventPath,
		},
		&cli.StringFlag{
			Name:        "event-type",
			Usage:       "Webhook event type (X-GitHub-Event)",
			Value:       string(model.EventTypeIssues),
			Destination: &eventType,
		},
	}, releaseCfg.flags()...)

	return &cli.Command{
		Name:      "process",
		Aliases:   []string{"p"},
		Usage:     "Process one webhook payload and print the response",
		UsageText: "gitbot process --event payload.json --github-token ... --tagger-name ... --tagger-email ...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			payload, err := readPayload(eventPath, c.Root().Reader)
			if err != nil {
				return err
			}

			webhookUC, err := releaseCfg.newWebhookUseCase()
			if err != nil {
				return goerr.Wrap(err, "failed to configure release branch automation")
			}

			resp, err := webhookUC.ProcessEvent(ctx, &model.WebhookEvent{
				ID:         uuid.NewString(),
				Type:       model.WebhookEventType(eventType),
				RawPayload: payload,
			})
			async.Wait()
			if err != nil {
				return goerr.Wrap(err, "failed to process event")
			}

			return printResponse(c.Root().Writer, c.Root().ErrWriter, resp)
		},
	}
}

func readPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read payload from stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload file", goerr.V("path", path))
	}
	return data, nil
}

// printResponse writes the response JSON to w and a colored state line to status
func printResponse(w, status io.Writer, resp *model.Response) error {
	stateColor := color.New(color.FgGreen, color.Bold)
	switch {
	case resp.StatusCode >= 500:
		stateColor = color.New(color.FgRed, color.Bold)
	case resp.StatusCode >= 400:
		stateColor = color.New(color.FgYellow, color.Bold)
	}
	if _, err := stateColor.Fprintf(status, "%s (%d)\n", resp.State(), resp.StatusCode); err != nil {
		return goerr.Wrap(err, "failed to write state")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return goerr.Wrap(err, "failed to encode response")
	}
	return nil
}
