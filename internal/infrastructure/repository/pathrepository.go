package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"testertalk/internal/domain/issue"
	"testertalk/internal/infrastructure/persistence/mappers"
	"testertalk/internal/infrastructure/persistence/models"
	"testertalk/internal/shared/db"
	apperrors "testertalk/internal/shared/errors"
)

type PathRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewPathRepository(database *gorm.DB) *PathRepository {
	return &PathRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *PathRepository) Save(ctx context.Context, path *issue.TestcasePath) error {
	model := r.mapper.PathToModel(path)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("testcase path already exists for this target")
		}
		return fmt.Errorf("failed to save testcase path: %w", err)
	}

	return path.SetID(model.ID)
}

func (r *PathRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TestcasePathModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete testcase path: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("testcase path not found")
	}
	return nil
}

func (r *PathRepository) GetByID(ctx context.Context, id uint) (*issue.TestcasePath, error) {
	var model models.TestcasePathModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("testcase path not found")
		}
		return nil, fmt.Errorf("failed to find testcase path: %w", err)
	}

	return r.mapper.PathToDomain(&model)
}

func (r *PathRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error) {
	var rows []models.TestcasePathModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list testcase paths: %w", err)
	}

	paths := make([]*issue.TestcasePath, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.PathToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (r *PathRepository) ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.TestcasePath, error) {
	result := make(map[uint][]*issue.TestcasePath, len(issueIDs))
	if len(issueIDs) == 0 {
		return result, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TestcasePathModel
	if err := tx.
		Where("issue_id IN ?", issueIDs).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list testcase paths: %w", err)
	}

	for i := range rows {
		p, err := r.mapper.PathToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[p.IssueID()] = append(result[p.IssueID()], p)
	}
	return result, nil
}

func (r *PathRepository) SyncTarget(ctx context.Context, issueID uint, target string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var value interface{}
	if target != "" {
		value = target
	}

	if err := tx.
		Model(&models.TestcasePathModel{}).
		Where("issue_id = ?", issueID).
		Update("target", value).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("testcase path already exists for this target")
		}
		return fmt.Errorf("failed to sync path targets: %w", err)
	}
	return nil
}
