package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type RemoveTestcasePathCommand struct {
	IssueID uint
	PathID  uint
}

type RemoveTestcasePathUseCase struct {
	pathRepo issue.PathRepository
	logger   logger.Interface
}

func NewRemoveTestcasePathUseCase(
	pathRepo issue.PathRepository,
	logger logger.Interface,
) *RemoveTestcasePathUseCase {
	return &RemoveTestcasePathUseCase{
		pathRepo: pathRepo,
		logger:   logger,
	}
}

func (uc *RemoveTestcasePathUseCase) Execute(ctx context.Context, cmd RemoveTestcasePathCommand) error {
	if cmd.PathID == 0 {
		return errors.NewValidationError("path ID is required")
	}

	path, err := uc.pathRepo.GetByID(ctx, cmd.PathID)
	if err != nil {
		return err
	}
	if path.IssueID() != cmd.IssueID {
		return errors.NewNotFoundError("testcase path not found on this issue")
	}

	if err := uc.pathRepo.Delete(ctx, cmd.PathID); err != nil {
		uc.logger.Errorw("failed to remove testcase path", "path_id", cmd.PathID, "error", err)
		return err
	}

	uc.logger.Infow("testcase path removed", "issue_id", cmd.IssueID, "path_id", cmd.PathID)
	return nil
}
