package dto

import (
	"time"

	"testertalk/internal/domain/reviewer"
)

type BucketReviewerDTO struct {
	ID           uint      `json:"id"`
	BucketName   string    `json:"bucket_name"`
	ReviewerName string    `json:"reviewer_name"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToBucketReviewerDTO(br *reviewer.BucketReviewer) BucketReviewerDTO {
	return BucketReviewerDTO{
		ID:           br.ID(),
		BucketName:   br.BucketName(),
		ReviewerName: br.ReviewerName(),
		Email:        br.Email(),
		CreatedAt:    br.CreatedAt(),
		UpdatedAt:    br.UpdatedAt(),
	}
}

func ToBucketReviewerDTOs(brs []*reviewer.BucketReviewer) []BucketReviewerDTO {
	dtos := make([]BucketReviewerDTO, 0, len(brs))
	for _, br := range brs {
		dtos = append(dtos, ToBucketReviewerDTO(br))
	}
	return dtos
}
