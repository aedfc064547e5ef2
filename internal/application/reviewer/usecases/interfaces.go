package usecases

import (
	"context"

	"testertalk/internal/application/reviewer/dto"
)

type UpsertBucketReviewerExecutor interface {
	Execute(ctx context.Context, cmd UpsertBucketReviewerCommand) (*dto.BucketReviewerDTO, error)
}

type ListBucketReviewersExecutor interface {
	Execute(ctx context.Context) ([]dto.BucketReviewerDTO, error)
}

type DeleteBucketReviewerExecutor interface {
	Execute(ctx context.Context, cmd DeleteBucketReviewerCommand) error
}
