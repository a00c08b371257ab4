package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// buildReleaseBranch branches from the source branch tip, adds the marker
// commit and tags it. Nothing is checked beforehand: an existing branch or
// tag makes the corresponding create call fail with types.ErrTagConflict.
func (uc *releaseBranchUseCase) buildReleaseBranch(ctx context.Context, repo interfaces.Repository, branch string) (*model.ReleasePlan, error) {
	logger := ctxlog.From(ctx)
	c := uc.conventions

	plan := &model.ReleasePlan{
		Branch: branch,
		Tag:    c.TagName(branch),
	}

	sourceSHA, err := repo.GetBranchSHA(ctx, c.SourceBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve source branch", goerr.V("source_branch", c.SourceBranch))
	}
	plan.SourceSHA = sourceSHA

	if err := repo.CreateRef(ctx, "refs/heads/"+branch, sourceSHA); err != nil {
		return nil, goerr.Wrap(err, "failed to create release branch ref")
	}
	logger.Debug("Created release branch", "branch", branch, "sha", sourceSHA)

	// The marker commit gives the new branch a commit of its own to tag
	markerSHA, err := repo.CreateFile(ctx, c.MarkerFile, c.CommitMessage(branch), []byte(c.MarkerContent), branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to commit marker file", goerr.V("path", c.MarkerFile))
	}
	plan.MarkerSHA = markerSHA
	logger.Debug("Committed marker file", "path", c.MarkerFile, "sha", markerSHA)

	tagSHA, err := repo.CreateTag(ctx, &model.TagRequest{
		Tag:        plan.Tag,
		Message:    c.TagMessage(branch),
		ObjectSHA:  markerSHA,
		ObjectType: "commit",
		Tagger:     uc.tagger,
		Date:       uc.now().UTC().Truncate(time.Second),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create tag object", goerr.V("tag", plan.Tag))
	}
	plan.TagObjectSHA = tagSHA

	if err := repo.CreateRef(ctx, "refs/tags/"+plan.Tag, tagSHA); err != nil {
		return nil, goerr.Wrap(err, "failed to create tag ref", goerr.V("tag", plan.Tag))
	}

	return plan, nil
}
