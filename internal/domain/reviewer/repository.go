package reviewer

import "context"

type Repository interface {
	Save(ctx context.Context, br *BucketReviewer) error
	Update(ctx context.Context, br *BucketReviewer) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*BucketReviewer, error)
	GetByBucketName(ctx context.Context, bucketName string) (*BucketReviewer, error)
	List(ctx context.Context) ([]*BucketReviewer, error)
}
