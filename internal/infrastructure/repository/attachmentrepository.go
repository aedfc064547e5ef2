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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *issue.Attachment) error {
	model := r.mapper.ToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment.SetID(model.ID)
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("attachment not found")
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*issue.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AttachmentRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Attachment, error) {
	var rows []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*issue.Attachment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *AttachmentRepository) ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Attachment, error) {
	result := make(map[uint][]*issue.Attachment, len(issueIDs))
	if len(issueIDs) == 0 {
		return result, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AttachmentModel
	if err := tx.
		Where("issue_id IN ?", issueIDs).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[a.IssueID()] = append(result[a.IssueID()], a)
	}
	return result, nil
}
