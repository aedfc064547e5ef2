package services

import (
	"context"
	"strings"

	"testertalk/internal/domain/reviewer"
	"testertalk/internal/shared/constants"
	apperrors "testertalk/internal/shared/errors"
)

// BucketReviewerResolver resolves the reviewer mapped to a bucket. Buckets
// without a mapping fall back to the default reviewer with no email, so
// issue creation never fails on a missing assignment.
type BucketReviewerResolver struct {
	reviewers reviewer.Repository
}

func NewBucketReviewerResolver(reviewers reviewer.Repository) *BucketReviewerResolver {
	return &BucketReviewerResolver{reviewers: reviewers}
}

func (r *BucketReviewerResolver) Resolve(ctx context.Context, bucketName string) (string, string, error) {
	if bucketName == "" {
		return constants.DefaultReviewer, "", nil
	}

	mapping, err := r.reviewers.GetByBucketName(ctx, strings.ToUpper(bucketName))
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return constants.DefaultReviewer, "", nil
		}
		return "", "", err
	}

	return mapping.ReviewerName(), mapping.Email(), nil
}
