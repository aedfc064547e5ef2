package usecases

import (
	"context"

	"testertalk/internal/domain/reviewer"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type DeleteBucketReviewerCommand struct {
	ID uint
}

type DeleteBucketReviewerUseCase struct {
	reviewerRepo reviewer.Repository
	logger       logger.Interface
}

func NewDeleteBucketReviewerUseCase(
	reviewerRepo reviewer.Repository,
	logger logger.Interface,
) *DeleteBucketReviewerUseCase {
	return &DeleteBucketReviewerUseCase{
		reviewerRepo: reviewerRepo,
		logger:       logger,
	}
}

func (uc *DeleteBucketReviewerUseCase) Execute(ctx context.Context, cmd DeleteBucketReviewerCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("bucket reviewer ID is required")
	}

	if _, err := uc.reviewerRepo.GetByID(ctx, cmd.ID); err != nil {
		return err
	}

	if err := uc.reviewerRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete bucket reviewer", "id", cmd.ID, "error", err)
		return err
	}

	uc.logger.Infow("bucket reviewer deleted", "id", cmd.ID)
	return nil
}
