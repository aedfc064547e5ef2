package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/utils"
)

type ListIssuesQuery struct {
	Status     *string
	Severity   *string
	Release    *string
	Platform   *string
	Build      *string
	Target     *string
	Reporter   *string
	Reviewer   *string
	Tag        *string
	TestCaseID *string
	Page       int
	PageSize   int
}

type ListIssuesResult struct {
	Issues   []*dto.IssueDTO
	Total    int64
	Page     int
	PageSize int
}

type ListIssuesUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewListIssuesUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	issues, total, err := uc.issueRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	stats, err := uc.loadStats(ctx, issues)
	if err != nil {
		return nil, err
	}

	dtos := make([]*dto.IssueDTO, 0, len(issues))
	for _, iss := range issues {
		dtos = append(dtos, dto.ToIssueDTO(iss, stats[iss.ID()]))
	}

	return &ListIssuesResult{
		Issues:   dtos,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func (uc *ListIssuesUseCase) buildFilter(query ListIssuesQuery) (issue.IssueFilter, error) {
	var filter issue.IssueFilter

	if query.Status != nil {
		status, err := vo.NewIssueStatus(*query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Severity != nil {
		severity, err := vo.NewSeverity(*query.Severity)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Severity = &severity
	}
	filter.Release = query.Release
	filter.Platform = query.Platform
	filter.Build = query.Build
	filter.Target = query.Target
	filter.Reporter = query.Reporter
	filter.Reviewer = query.Reviewer
	filter.Tag = query.Tag
	filter.TestCaseID = query.TestCaseID

	return filter, nil
}

func (uc *ListIssuesUseCase) loadStats(ctx context.Context, issues []*issue.Issue) (map[uint]issue.CommentStats, error) {
	ids := make([]uint, 0, len(issues))
	for _, iss := range issues {
		ids = append(ids, iss.ID())
	}
	return uc.commentRepo.StatsByIssueIDs(ctx, ids)
}
