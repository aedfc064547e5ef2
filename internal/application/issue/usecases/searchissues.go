package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/shared/constants"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type SearchIssuesQuery struct {
	Query      string
	Status     *string
	Severity   *string
	Release    *string
	Platform   *string
	Build      *string
	Target     *string
	Reporter   *string
	TestCaseID *string
	Tags       []string
	Size       int
}

type SearchIssuesUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewSearchIssuesUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *SearchIssuesUseCase {
	return &SearchIssuesUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *SearchIssuesUseCase) Execute(ctx context.Context, query SearchIssuesQuery) ([]*dto.IssueDTO, error) {
	filter := issue.SearchFilter{
		Query:      query.Query,
		Release:    query.Release,
		Platform:   query.Platform,
		Build:      query.Build,
		Target:     query.Target,
		Reporter:   query.Reporter,
		TestCaseID: query.TestCaseID,
		Tags:       query.Tags,
		Size:       clampSearchSize(query.Size),
	}

	if query.Status != nil {
		status, err := vo.NewIssueStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Severity != nil {
		severity, err := vo.NewSeverity(*query.Severity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Severity = &severity
	}

	issues, err := uc.issueRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search issues", "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(issues))
	for _, iss := range issues {
		ids = append(ids, iss.ID())
	}
	stats, err := uc.commentRepo.StatsByIssueIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]*dto.IssueDTO, 0, len(issues))
	for _, iss := range issues {
		dtos = append(dtos, dto.ToIssueDTO(iss, stats[iss.ID()]))
	}
	return dtos, nil
}

func clampSearchSize(size int) int {
	if size <= 0 {
		return constants.DefaultSearchSize
	}
	if size > constants.MaxSearchSize {
		return constants.MaxSearchSize
	}
	return size
}
