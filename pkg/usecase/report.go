package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// report posts the outcome comment, if the outcome has one, and builds the response
func (uc *releaseBranchUseCase) report(ctx context.Context, issue interfaces.Issue, outcome model.Outcome) (*model.Response, error) {
	logger := ctxlog.From(ctx)

	if !outcome.Defined() {
		logger.Error("Unrecognized outcome", "outcome", int(outcome))
		return outcome.Response(0), nil
	}

	body := outcome.Comment(uc.conventions)
	if body == "" {
		return outcome.Response(0), nil
	}

	id, err := issue.CreateComment(ctx, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to post outcome comment", goerr.V("outcome", outcome.String()))
	}

	logger.Info("Posted outcome comment", "outcome", outcome.String(), "comment_id", id)
	return outcome.Response(id), nil
}
