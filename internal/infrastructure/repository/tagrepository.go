package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"testertalk/internal/domain/tag"
	"testertalk/internal/infrastructure/persistence/models"
	"testertalk/internal/shared/db"
	apperrors "testertalk/internal/shared/errors"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(database *gorm.DB) *TagRepository {
	return &TagRepository{db: database}
}

func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*tag.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	existing, err := r.getByName(tx, name)
	if err == nil {
		return existing, nil
	}
	if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	created, err := tag.NewTag(name)
	if err != nil {
		return nil, err
	}

	model := &models.TagModel{
		Name:      created.Name(),
		CreatedAt: created.CreatedAt().UnixMilli(),
	}
	if err := tx.Create(model).Error; err != nil {
		// Concurrent creation of the same tag loses the race on the
		// unique index; re-read instead of failing.
		if apperrors.IsDuplicateError(err) {
			return r.getByName(tx, name)
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	if err := created.SetID(model.ID); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (*tag.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.getByName(tx, name)
}

func (r *TagRepository) getByName(tx *gorm.DB, name string) (*tag.Tag, error) {
	var model models.TagModel
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("tag not found")
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return tag.ReconstructTag(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	var rows []models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*tag.Tag, 0, len(rows))
	for _, row := range rows {
		t, err := tag.ReconstructTag(row.ID, row.Name, time.UnixMilli(row.CreatedAt).UTC())
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (r *TagRepository) ReplaceForIssue(ctx context.Context, issueID uint, names []string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_id = ?", issueID).Delete(&models.IssueTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear issue tags: %w", err)
	}

	for _, name := range names {
		if err := r.link(ctx, tx, issueID, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *TagRepository) AddToIssue(ctx context.Context, issueID uint, name string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.link(ctx, tx, issueID, name)
}

func (r *TagRepository) link(ctx context.Context, tx *gorm.DB, issueID uint, name string) error {
	t, err := r.GetOrCreate(ctx, name)
	if err != nil {
		return err
	}

	link := &models.IssueTagModel{IssueID: issueID, TagID: t.ID()}
	if err := tx.Create(link).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to link tag: %w", err)
	}
	return nil
}

func (r *TagRepository) NamesByIssueID(ctx context.Context, issueID uint) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var names []string
	if err := tx.
		Table("issue_tags").
		Joins("JOIN tags ON tags.id = issue_tags.tag_id").
		Where("issue_tags.issue_id = ?", issueID).
		Order("tags.name").
		Pluck("tags.name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to load tag names: %w", err)
	}
	return names, nil
}

func (r *TagRepository) NamesByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string, len(issueIDs))
	if len(issueIDs) == 0 {
		return result, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		IssueID uint
		Name    string
	}
	if err := tx.
		Table("issue_tags").
		Select("issue_tags.issue_id", "tags.name").
		Joins("JOIN tags ON tags.id = issue_tags.tag_id").
		Where("issue_tags.issue_id IN ?", issueIDs).
		Order("tags.name").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load tag names: %w", err)
	}

	for _, row := range rows {
		result[row.IssueID] = append(result[row.IssueID], row.Name)
	}
	return result, nil
}
