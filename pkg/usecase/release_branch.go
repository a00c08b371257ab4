package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type releaseBranchUseCase struct {
	factory     interfaces.GitHubClientFactory
	tagger      model.Tagger
	conventions model.Conventions
	now         func() time.Time
}

// ReleaseBranchOption is a functional option for the release branch use case
type ReleaseBranchOption func(*releaseBranchUseCase)

// WithConventions overrides the naming conventions
func WithConventions(c model.Conventions) ReleaseBranchOption {
	return func(uc *releaseBranchUseCase) {
		uc.conventions = c
	}
}

// WithClock replaces the time source used for tagger dates
func WithClock(now func() time.Time) ReleaseBranchOption {
	return func(uc *releaseBranchUseCase) {
		uc.now = now
	}
}

// NewReleaseBranch creates the use case that turns a release-branch-needed
// label event into a release branch and an annotated tag
func NewReleaseBranch(factory interfaces.GitHubClientFactory, tagger model.Tagger, opts ...ReleaseBranchOption) interfaces.ReleaseBranchUseCase {
	uc := &releaseBranchUseCase{
		factory:     factory,
		tagger:      tagger,
		conventions: model.DefaultConventions(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// HandleIssueEvent runs gate, intent extraction, authorization and branch
// creation in order. Every rejected request ends in a classified outcome;
// a returned error means a hosting API call failed and no outcome was reported.
func (uc *releaseBranchUseCase) HandleIssueEvent(ctx context.Context, event *model.IssueEvent) (*model.Response, error) {
	logger := ctxlog.From(ctx)

	if !uc.isTriggerEvent(event) {
		logger.Debug("Ignoring issue event",
			"action", event.Action,
			"label", event.Label,
			"issue_state", event.IssueState,
		)
		return model.OutcomeNoActionNeeded.Response(0), nil
	}

	if err := event.Validate(); err != nil {
		logger.Warn("Invalid issue event", "error", err)
		return model.OutcomeInvalidEvent.Response(0), nil
	}

	logger = logger.With(
		"repo", event.RepoFullName,
		"issue", event.IssueNumber,
		"sender", event.SenderLogin,
	)
	ctx = ctxlog.With(ctx, logger)

	client, err := uc.factory.NewClient(ctx, event.APIBaseURL())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client", goerr.V("base_url", event.APIBaseURL()))
	}
	repo := client.Repository(event.Owner(), event.Repo())
	issue := repo.Issue(event.IssueNumber)

	branch, outcome, ok := uc.extractRelease(event.Labels)
	if !ok {
		logger.Info("Release label check failed", "outcome", outcome)
		return uc.report(ctx, issue, outcome)
	}
	logger = logger.With("release", branch)
	ctx = ctxlog.With(ctx, logger)

	if outcome, ok := uc.authorize(ctx, repo, event.SenderLogin); !ok {
		logger.Info("Release request not authorized", "outcome", outcome)
		return uc.report(ctx, issue, outcome)
	}

	plan, err := uc.buildReleaseBranch(ctx, repo, branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release branch",
			goerr.V("repo", event.RepoFullName),
			goerr.V("release", branch),
		)
	}

	logger.Info("Release branch created",
		"branch", plan.Branch,
		"source_sha", plan.SourceSHA,
		"marker_sha", plan.MarkerSHA,
		"tag", plan.Tag,
		"tag_object_sha", plan.TagObjectSHA,
	)

	return uc.report(ctx, issue, model.OutcomeReleaseSuccessful)
}

// isTriggerEvent accepts only the trigger label being applied to an open issue
func (uc *releaseBranchUseCase) isTriggerEvent(event *model.IssueEvent) bool {
	return event.IssueState == "open" &&
		event.Action == "labeled" &&
		event.Label == uc.conventions.TriggerLabel
}

// extractRelease requires exactly one release label and returns the branch
// name. A lone bare prefix yields no branch name and counts as no release.
func (uc *releaseBranchUseCase) extractRelease(labels []string) (string, model.Outcome, bool) {
	var releases []string
	for _, label := range labels {
		if strings.HasPrefix(label, uc.conventions.ReleaseLabelPrefix) {
			releases = append(releases, label)
		}
	}

	switch len(releases) {
	case 0:
		return "", model.OutcomeNoReleases, false
	case 1:
		branch := uc.conventions.BranchName(releases[0])
		if branch == "" {
			return "", model.OutcomeNoReleases, false
		}
		return branch, 0, true
	default:
		return "", model.OutcomeMultipleReleases, false
	}
}
