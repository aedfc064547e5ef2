package reviewer

import (
	"context"

	"testertalk/internal/shared/constants"
	"testertalk/internal/shared/errors"
)

// Directory resolves the reviewer responsible for a bucket, falling back to
// the default reviewer when the bucket is unknown or empty.
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

// Resolve returns the reviewer for the bucket. An empty bucket or a bucket
// without a mapping resolves to the default reviewer with no email.
func (d *Directory) Resolve(ctx context.Context, bucketName string) (name, email string, err error) {
	if bucketName == "" {
		return constants.DefaultReviewer, "", nil
	}

	br, err := d.repo.GetByBucketName(ctx, bucketName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return constants.DefaultReviewer, "", nil
		}
		return "", "", err
	}
	return br.ReviewerName(), br.Email(), nil
}
