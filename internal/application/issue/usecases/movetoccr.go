package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type MoveToCCRCommand struct {
	IssueID   uint
	CCRNumber string
}

type MoveToCCRUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewMoveToCCRUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *MoveToCCRUseCase {
	return &MoveToCCRUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *MoveToCCRUseCase) Execute(ctx context.Context, cmd MoveToCCRCommand) (*dto.IssueDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if len(cmd.CCRNumber) == 0 {
		return nil, errors.NewValidationError("CCR number is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	if err := iss.MoveToCCR(cmd.CCRNumber); err != nil {
		return nil, errors.NewStateError(err.Error())
	}

	if err := uc.issueRepo.Update(ctx, iss); err != nil {
		uc.logger.Errorw("failed to move issue to CCR", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue moved to CCR", "issue_id", cmd.IssueID, "ccr_number", cmd.CCRNumber)

	stats, err := uc.commentRepo.StatsByIssueIDs(ctx, []uint{iss.ID()})
	if err != nil {
		return nil, err
	}
	return dto.ToIssueDTO(iss, stats[iss.ID()]), nil
}
