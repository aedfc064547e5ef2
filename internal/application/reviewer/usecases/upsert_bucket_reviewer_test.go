package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testertalk/internal/domain/reviewer"
	apperrors "testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type mockReviewerRepository struct {
	SaveFunc            func(ctx context.Context, br *reviewer.BucketReviewer) error
	UpdateFunc          func(ctx context.Context, br *reviewer.BucketReviewer) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*reviewer.BucketReviewer, error)
	GetByBucketNameFunc func(ctx context.Context, bucketName string) (*reviewer.BucketReviewer, error)
	ListFunc            func(ctx context.Context) ([]*reviewer.BucketReviewer, error)
}

func (m *mockReviewerRepository) Save(ctx context.Context, br *reviewer.BucketReviewer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, br)
	}
	return nil
}

func (m *mockReviewerRepository) Update(ctx context.Context, br *reviewer.BucketReviewer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, br)
	}
	return nil
}

func (m *mockReviewerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewerRepository) GetByID(ctx context.Context, id uint) (*reviewer.BucketReviewer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewerRepository) GetByBucketName(ctx context.Context, bucketName string) (*reviewer.BucketReviewer, error) {
	if m.GetByBucketNameFunc != nil {
		return m.GetByBucketNameFunc(ctx, bucketName)
	}
	return nil, apperrors.NewNotFoundError("bucket reviewer not found")
}

func (m *mockReviewerRepository) List(ctx context.Context) ([]*reviewer.BucketReviewer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestUpsertBucketReviewerUseCase_Execute_CreatesMapping(t *testing.T) {
	var saved *reviewer.BucketReviewer
	repo := &mockReviewerRepository{
		SaveFunc: func(ctx context.Context, br *reviewer.BucketReviewer) error {
			if err := br.SetID(3); err != nil {
				return err
			}
			saved = br
			return nil
		},
	}

	uc := NewUpsertBucketReviewerUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), UpsertBucketReviewerCommand{
		BucketName:   "timing",
		ReviewerName: "Morgan",
		Email:        "morgan@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// Bucket names are normalized to uppercase on the way in.
	assert.Equal(t, "TIMING", result.BucketName)
	assert.Equal(t, "Morgan", result.ReviewerName)

	require.NotNil(t, saved)
	assert.Equal(t, "TIMING", saved.BucketName())
}

func TestUpsertBucketReviewerUseCase_Execute_ReplacesExisting(t *testing.T) {
	existing, err := reviewer.ReconstructBucketReviewer(
		3, "TIMING", "Morgan", "morgan@example.com", time.Now(), time.Now(),
	)
	require.NoError(t, err)

	var updated *reviewer.BucketReviewer
	repo := &mockReviewerRepository{
		GetByBucketNameFunc: func(ctx context.Context, bucketName string) (*reviewer.BucketReviewer, error) {
			assert.Equal(t, "TIMING", bucketName)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, br *reviewer.BucketReviewer) error {
			updated = br
			return nil
		},
		SaveFunc: func(ctx context.Context, br *reviewer.BucketReviewer) error {
			t.Fatal("Save should not be called when the mapping exists")
			return nil
		},
	}

	uc := NewUpsertBucketReviewerUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), UpsertBucketReviewerCommand{
		BucketName:   "Timing",
		ReviewerName: "Priya",
		Email:        "priya@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya", result.ReviewerName)
	require.NotNil(t, updated)
	assert.Equal(t, uint(3), updated.ID())
	assert.Equal(t, "Priya", updated.ReviewerName())
}

func TestUpsertBucketReviewerUseCase_Execute_Validation(t *testing.T) {
	uc := NewUpsertBucketReviewerUseCase(&mockReviewerRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), UpsertBucketReviewerCommand{ReviewerName: "Morgan"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), UpsertBucketReviewerCommand{BucketName: "TIMING"})
	require.Error(t, err)
}
