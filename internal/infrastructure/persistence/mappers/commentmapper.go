package mappers

import (
	"testertalk/internal/domain/issue"
	"testertalk/internal/infrastructure/persistence/models"
)

type CommentMapper interface {
	ToModel(c *issue.Comment) *models.CommentModel
	ToDomain(model *models.CommentModel) (*issue.Comment, error)
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToModel(c *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		IssueID:    c.IssueID(),
		Content:    c.Content(),
		AuthorName: c.AuthorName(),
		Verified:   c.Verified(),
		Upvotes:    c.Upvotes(),
		Downvotes:  c.Downvotes(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *CommentMapperImpl) ToDomain(model *models.CommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.Content,
		model.AuthorName,
		model.Verified,
		model.Upvotes,
		model.Downvotes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
