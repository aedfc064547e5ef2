package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type AddCommentCommand struct {
	IssueID    uint
	Content    string
	AuthorName string
}

type AddCommentUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("content is required")
	}
	if len(cmd.AuthorName) == 0 {
		return nil, errors.NewValidationError("author name is required")
	}

	// fail fast when the issue does not exist
	if _, err := uc.issueRepo.GetByID(ctx, cmd.IssueID); err != nil {
		return nil, err
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.Content, cmd.AuthorName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "issue_id", cmd.IssueID, "comment_id", comment.ID())

	result := dto.ToCommentDTO(comment)
	return &result, nil
}
