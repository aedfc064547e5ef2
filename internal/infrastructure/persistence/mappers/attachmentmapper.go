package mappers

import (
	"testertalk/internal/domain/issue"
	"testertalk/internal/infrastructure/persistence/models"
)

type AttachmentMapper interface {
	ToModel(a *issue.Attachment) *models.AttachmentModel
	ToDomain(model *models.AttachmentModel) (*issue.Attachment, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToModel(a *issue.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		IssueID:      a.IssueID(),
		OriginalName: a.OriginalName(),
		StoredName:   a.StoredName(),
		ContentType:  a.ContentType(),
		Size:         a.Size(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *AttachmentMapperImpl) ToDomain(model *models.AttachmentModel) (*issue.Attachment, error) {
	return issue.ReconstructAttachment(
		model.ID,
		model.IssueID,
		model.OriginalName,
		model.StoredName,
		model.ContentType,
		model.Size,
		millisToTime(model.CreatedAt),
	)
}
