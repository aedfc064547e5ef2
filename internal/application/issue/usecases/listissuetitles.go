package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	apperrors "testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type ListIssueTitlesQuery struct {
	IssueIDs []uint
}

// IssueTitleDTO is the identity projection the bulk-delete confirmation
// screen shows.
type IssueTitleDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ListIssueTitlesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewListIssueTitlesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *ListIssueTitlesUseCase {
	return &ListIssueTitlesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListIssueTitlesUseCase) Execute(ctx context.Context, query ListIssueTitlesQuery) ([]IssueTitleDTO, error) {
	if len(query.IssueIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one issue id is required")
	}

	rows, err := uc.issueRepo.ListIDTitles(ctx, query.IssueIDs)
	if err != nil {
		uc.logger.Errorw("failed to list issue titles", "error", err)
		return nil, err
	}

	titles := make([]IssueTitleDTO, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, IssueTitleDTO{ID: row.ID, Title: row.Title})
	}
	return titles, nil
}
