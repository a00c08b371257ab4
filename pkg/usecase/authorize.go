package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// authorize loads OWNERS from the default branch and accepts only its first entry.
// Read failures are split into a missing file and any other API failure.
func (uc *releaseBranchUseCase) authorize(ctx context.Context, repo interfaces.Repository, sender string) (model.Outcome, bool) {
	logger := ctxlog.From(ctx)

	data, err := repo.GetFileContents(ctx, uc.conventions.OwnersFile)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagNotFound) {
			logger.Info("OWNERS file not found", "path", uc.conventions.OwnersFile)
			return model.OutcomeNoOwners, false
		}
		logger.Error("Failed to read OWNERS file", "error", err)
		return model.OutcomeErrorOwners, false
	}

	manifest, err := model.ParseOwners(data)
	if err != nil {
		logger.Info("Invalid OWNERS file", "error", err)
		return model.OutcomeOwnersYAMLError, false
	}

	if sender != manifest.Primary() {
		logger.Info("Sender is not the primary owner", "primary_owner", manifest.Primary())
		return model.OutcomeOnlyOwnerCanOpen, false
	}

	return 0, true
}
