package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type VerifySolutionCommand struct {
	IssueID   uint
	CommentID uint
}

type VerifySolutionResult struct {
	IssueID     uint
	CommentID   uint
	IssueStatus string
}

// VerifySolutionUseCase marks one comment as the issue's verified solution.
// Any previously verified comment loses the flag and the issue resolves,
// all inside one transaction.
type VerifySolutionUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewVerifySolutionUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *VerifySolutionUseCase {
	return &VerifySolutionUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *VerifySolutionUseCase) Execute(ctx context.Context, cmd VerifySolutionCommand) (*VerifySolutionResult, error) {
	if cmd.IssueID == 0 || cmd.CommentID == 0 {
		return nil, errors.NewValidationError("issue ID and comment ID are required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.IssueID() != cmd.IssueID {
		return nil, errors.NewNotFoundError("comment not found on this issue")
	}

	if _, err := uc.issueRepo.GetByID(ctx, cmd.IssueID); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.UnverifyAllForIssue(txCtx, cmd.IssueID); err != nil {
			return err
		}
		if err := uc.commentRepo.MarkVerified(txCtx, cmd.CommentID); err != nil {
			return err
		}
		return uc.issueRepo.UpdateStatus(txCtx, cmd.IssueID, vo.StatusResolved)
	})
	if err != nil {
		uc.logger.Errorw("failed to verify solution",
			"issue_id", cmd.IssueID, "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("solution verified", "issue_id", cmd.IssueID, "comment_id", cmd.CommentID)

	return &VerifySolutionResult{
		IssueID:     cmd.IssueID,
		CommentID:   cmd.CommentID,
		IssueStatus: vo.StatusResolved.String(),
	}, nil
}
