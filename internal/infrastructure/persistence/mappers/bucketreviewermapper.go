package mappers

import (
	"testertalk/internal/domain/reviewer"
	"testertalk/internal/infrastructure/persistence/models"
)

type BucketReviewerMapper interface {
	ToModel(br *reviewer.BucketReviewer) *models.BucketReviewerModel
	ToDomain(model *models.BucketReviewerModel) (*reviewer.BucketReviewer, error)
}

type BucketReviewerMapperImpl struct{}

func NewBucketReviewerMapper() BucketReviewerMapper {
	return &BucketReviewerMapperImpl{}
}

func (m *BucketReviewerMapperImpl) ToModel(br *reviewer.BucketReviewer) *models.BucketReviewerModel {
	return &models.BucketReviewerModel{
		ID:           br.ID(),
		BucketName:   br.BucketName(),
		ReviewerName: br.ReviewerName(),
		Email:        br.Email(),
		CreatedAt:    br.CreatedAt().UnixMilli(),
		UpdatedAt:    br.UpdatedAt().UnixMilli(),
	}
}

func (m *BucketReviewerMapperImpl) ToDomain(model *models.BucketReviewerModel) (*reviewer.BucketReviewer, error) {
	return reviewer.ReconstructBucketReviewer(
		model.ID,
		model.BucketName,
		model.ReviewerName,
		model.Email,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
