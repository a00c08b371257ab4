package cli

import (
	"github.com/m-mizutani/gitbot/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/gitbot/pkg/controller/github"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// releaseConfig groups the settings shared by serve and process
type releaseConfig struct {
	github config.GitHub
	tagger config.Tagger
	notify config.Notify
	file   config.File
}

func (c *releaseConfig) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, c.file.Flags()...)
	flags = append(flags, c.github.Flags()...)
	flags = append(flags, c.tagger.Flags()...)
	flags = append(flags, c.notify.Flags()...)
	return flags
}

// newWebhookUseCase resolves the configuration and wires the use cases
func (c *releaseConfig) newWebhookUseCase() (interfaces.WebhookUseCase, error) {
	if err := c.file.Apply(&c.tagger, &c.notify); err != nil {
		return nil, err
	}

	tagger, err := c.tagger.Model()
	if err != nil {
		return nil, err
	}

	factory, err := c.github.NewClientFactory()
	if err != nil {
		return nil, err
	}

	notifier, err := c.notify.Configure()
	if err != nil {
		return nil, err
	}

	releaseUC := usecase.NewReleaseBranch(factory, tagger)
	return usecase.NewWebhook(githubcontroller.NewEventProcessor(releaseUC), notifier), nil
}
