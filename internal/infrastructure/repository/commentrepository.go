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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *issue.Comment) error {
	model := r.mapper.ToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, comment *issue.Comment) error {
	model := r.mapper.ToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", model.ID).
		Select("content", "verified", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*issue.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CommentRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	var rows []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*issue.Comment, 0, len(rows))
	for i := range rows {
		comment, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (r *CommentRepository) UnverifyAllForIssue(ctx context.Context, issueID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.CommentModel{}).
		Where("issue_id = ?", issueID).
		Update("verified", false).Error; err != nil {
		return fmt.Errorf("failed to unverify comments: %w", err)
	}
	return nil
}

func (r *CommentRepository) MarkVerified(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", commentID).
		Update("verified", true)
	if result.Error != nil {
		return fmt.Errorf("failed to verify comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) IncrementVote(ctx context.Context, id uint, up bool) (*issue.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	column := "downvotes"
	if up {
		column = "upvotes"
	}

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("comment not found")
	}

	return r.GetByID(ctx, id)
}

func (r *CommentRepository) StatsByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]issue.CommentStats, error) {
	stats := make(map[uint]issue.CommentStats, len(issueIDs))
	if len(issueIDs) == 0 {
		return stats, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		IssueID  uint
		Count    int
		Verified int
	}
	if err := tx.
		Model(&models.CommentModel{}).
		Select("issue_id", "COUNT(*) AS count", "SUM(CASE WHEN verified THEN 1 ELSE 0 END) AS verified").
		Where("issue_id IN ?", issueIDs).
		Group("issue_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load comment stats: %w", err)
	}

	for _, row := range rows {
		stats[row.IssueID] = issue.CommentStats{
			Count:       row.Count,
			HasVerified: row.Verified > 0,
		}
	}
	return stats, nil
}
