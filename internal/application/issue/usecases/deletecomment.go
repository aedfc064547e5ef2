package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	IssueID   uint
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}
	if comment.IssueID() != cmd.IssueID {
		return errors.NewNotFoundError("comment not found on this issue")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	uc.logger.Infow("comment deleted", "issue_id", cmd.IssueID, "comment_id", cmd.CommentID)
	return nil
}
