package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type ListCommentsQuery struct {
	IssueID uint
}

type ListCommentsUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	if _, err := uc.issueRepo.GetByID(ctx, query.IssueID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByIssueID(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	dtos := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, dto.ToCommentDTO(c))
	}
	return dtos, nil
}
