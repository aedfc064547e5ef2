package reviewer

import (
	"fmt"
	"strings"
	"time"

	"testertalk/internal/shared/biztime"
)

// BucketReviewer maps a test bucket to the reviewer responsible for it.
// Bucket names are stored uppercased so lookups derived from testcase paths
// are case-insensitive.
type BucketReviewer struct {
	id           uint
	bucketName   string
	reviewerName string
	email        string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBucketReviewer(bucketName, reviewerName, email string) (*BucketReviewer, error) {
	bucketName = strings.ToUpper(strings.TrimSpace(bucketName))
	if len(bucketName) == 0 {
		return nil, fmt.Errorf("bucket name is required")
	}
	if len(reviewerName) == 0 {
		return nil, fmt.Errorf("reviewer name is required")
	}

	now := biztime.NowUTC()
	return &BucketReviewer{
		bucketName:   bucketName,
		reviewerName: reviewerName,
		email:        email,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructBucketReviewer(
	id uint,
	bucketName, reviewerName, email string,
	createdAt, updatedAt time.Time,
) (*BucketReviewer, error) {
	if id == 0 {
		return nil, fmt.Errorf("bucket reviewer ID cannot be zero")
	}
	if len(bucketName) == 0 {
		return nil, fmt.Errorf("bucket name is required")
	}
	if len(reviewerName) == 0 {
		return nil, fmt.Errorf("reviewer name is required")
	}

	return &BucketReviewer{
		id:           id,
		bucketName:   bucketName,
		reviewerName: reviewerName,
		email:        email,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (b *BucketReviewer) ID() uint {
	return b.id
}

func (b *BucketReviewer) BucketName() string {
	return b.bucketName
}

func (b *BucketReviewer) ReviewerName() string {
	return b.reviewerName
}

func (b *BucketReviewer) Email() string {
	return b.email
}

func (b *BucketReviewer) CreatedAt() time.Time {
	return b.createdAt
}

func (b *BucketReviewer) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *BucketReviewer) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bucket reviewer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bucket reviewer ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *BucketReviewer) SetReviewer(reviewerName, email string) error {
	if len(reviewerName) == 0 {
		return fmt.Errorf("reviewer name is required")
	}
	b.reviewerName = reviewerName
	b.email = email
	b.updatedAt = biztime.NowUTC()
	return nil
}
