package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type VoteCommentCommand struct {
	IssueID   uint
	CommentID uint
	Up        bool
}

type VoteCommentUseCase struct {
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewVoteCommentUseCase(commentRepo issue.CommentRepository, logger logger.Interface) *VoteCommentUseCase {
	return &VoteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *VoteCommentUseCase) Execute(ctx context.Context, cmd VoteCommentCommand) (*VoteResult, error) {
	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.IssueID() != cmd.IssueID {
		return nil, errors.NewNotFoundError("comment not found on this issue")
	}

	voted, err := uc.commentRepo.IncrementVote(ctx, cmd.CommentID, cmd.Up)
	if err != nil {
		uc.logger.Errorw("failed to vote on comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	return &VoteResult{
		Upvotes:   voted.Upvotes(),
		Downvotes: voted.Downvotes(),
		Score:     voted.Score(),
	}, nil
}
