package usecases

import (
	"context"

	"testertalk/internal/application/reviewer/dto"
	"testertalk/internal/domain/reviewer"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type UpsertBucketReviewerCommand struct {
	BucketName   string
	ReviewerName string
	Email        string
}

// UpsertBucketReviewerUseCase creates or replaces the reviewer mapping for a
// bucket. Bucket names are case-insensitive; the mapping is keyed on the
// uppercased form.
type UpsertBucketReviewerUseCase struct {
	reviewerRepo reviewer.Repository
	logger       logger.Interface
}

func NewUpsertBucketReviewerUseCase(
	reviewerRepo reviewer.Repository,
	logger logger.Interface,
) *UpsertBucketReviewerUseCase {
	return &UpsertBucketReviewerUseCase{
		reviewerRepo: reviewerRepo,
		logger:       logger,
	}
}

func (uc *UpsertBucketReviewerUseCase) Execute(ctx context.Context, cmd UpsertBucketReviewerCommand) (*dto.BucketReviewerDTO, error) {
	if len(cmd.BucketName) == 0 {
		return nil, errors.NewValidationError("bucket name is required")
	}
	if len(cmd.ReviewerName) == 0 {
		return nil, errors.NewValidationError("reviewer name is required")
	}

	candidate, err := reviewer.NewBucketReviewer(cmd.BucketName, cmd.ReviewerName, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.reviewerRepo.GetByBucketName(ctx, candidate.BucketName())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if existing == nil {
		if err := uc.reviewerRepo.Save(ctx, candidate); err != nil {
			uc.logger.Errorw("failed to save bucket reviewer", "bucket", candidate.BucketName(), "error", err)
			return nil, err
		}
		uc.logger.Infow("bucket reviewer created",
			"bucket", candidate.BucketName(), "reviewer", candidate.ReviewerName())
		result := dto.ToBucketReviewerDTO(candidate)
		return &result, nil
	}

	if err := existing.SetReviewer(cmd.ReviewerName, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.reviewerRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update bucket reviewer", "bucket", existing.BucketName(), "error", err)
		return nil, err
	}

	uc.logger.Infow("bucket reviewer updated",
		"bucket", existing.BucketName(), "reviewer", existing.ReviewerName())
	result := dto.ToBucketReviewerDTO(existing)
	return &result, nil
}
