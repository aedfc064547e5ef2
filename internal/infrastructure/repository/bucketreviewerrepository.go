package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"testertalk/internal/domain/reviewer"
	"testertalk/internal/infrastructure/persistence/mappers"
	"testertalk/internal/infrastructure/persistence/models"
	"testertalk/internal/shared/db"
	apperrors "testertalk/internal/shared/errors"
)

type BucketReviewerRepository struct {
	db     *gorm.DB
	mapper mappers.BucketReviewerMapper
}

func NewBucketReviewerRepository(database *gorm.DB) *BucketReviewerRepository {
	return &BucketReviewerRepository{
		db:     database,
		mapper: mappers.NewBucketReviewerMapper(),
	}
}

func (r *BucketReviewerRepository) Save(ctx context.Context, br *reviewer.BucketReviewer) error {
	model := r.mapper.ToModel(br)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("bucket already has a reviewer mapping")
		}
		return fmt.Errorf("failed to save bucket reviewer: %w", err)
	}

	return br.SetID(model.ID)
}

func (r *BucketReviewerRepository) Update(ctx context.Context, br *reviewer.BucketReviewer) error {
	model := r.mapper.ToModel(br)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BucketReviewerModel{}).
		Where("id = ?", model.ID).
		Select("reviewer_name", "email", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update bucket reviewer: %w", result.Error)
	}
	return nil
}

func (r *BucketReviewerRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.BucketReviewerModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bucket reviewer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("bucket reviewer not found")
	}
	return nil
}

func (r *BucketReviewerRepository) GetByID(ctx context.Context, id uint) (*reviewer.BucketReviewer, error) {
	var model models.BucketReviewerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("bucket reviewer not found")
		}
		return nil, fmt.Errorf("failed to find bucket reviewer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BucketReviewerRepository) GetByBucketName(ctx context.Context, bucketName string) (*reviewer.BucketReviewer, error) {
	var model models.BucketReviewerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("bucket_name = ?", strings.ToUpper(bucketName)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("bucket reviewer not found")
		}
		return nil, fmt.Errorf("failed to find bucket reviewer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BucketReviewerRepository) List(ctx context.Context) ([]*reviewer.BucketReviewer, error) {
	var rows []models.BucketReviewerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("bucket_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bucket reviewers: %w", err)
	}

	reviewers := make([]*reviewer.BucketReviewer, 0, len(rows))
	for i := range rows {
		br, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		reviewers = append(reviewers, br)
	}
	return reviewers, nil
}
