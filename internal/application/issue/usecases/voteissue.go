package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type VoteIssueCommand struct {
	IssueID uint
	Up      bool
}

type VoteResult struct {
	Upvotes   int
	Downvotes int
	Score     int
}

type VoteIssueUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewVoteIssueUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *VoteIssueUseCase {
	return &VoteIssueUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *VoteIssueUseCase) Execute(ctx context.Context, cmd VoteIssueCommand) (*VoteResult, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.IncrementVote(ctx, cmd.IssueID, cmd.Up)
	if err != nil {
		uc.logger.Errorw("failed to vote on issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	return &VoteResult{
		Upvotes:   iss.Upvotes(),
		Downvotes: iss.Downvotes(),
		Score:     iss.Score(),
	}, nil
}
