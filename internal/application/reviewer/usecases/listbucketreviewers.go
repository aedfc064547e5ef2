package usecases

import (
	"context"

	"testertalk/internal/application/reviewer/dto"
	"testertalk/internal/domain/reviewer"
	"testertalk/internal/shared/logger"
)

type ListBucketReviewersUseCase struct {
	reviewerRepo reviewer.Repository
	logger       logger.Interface
}

func NewListBucketReviewersUseCase(
	reviewerRepo reviewer.Repository,
	logger logger.Interface,
) *ListBucketReviewersUseCase {
	return &ListBucketReviewersUseCase{
		reviewerRepo: reviewerRepo,
		logger:       logger,
	}
}

func (uc *ListBucketReviewersUseCase) Execute(ctx context.Context) ([]dto.BucketReviewerDTO, error) {
	reviewers, err := uc.reviewerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list bucket reviewers", "error", err)
		return nil, err
	}
	return dto.ToBucketReviewerDTOs(reviewers), nil
}
