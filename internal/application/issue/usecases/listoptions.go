package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/domain/tag"
	"testertalk/internal/shared/logger"
)

// PlatformOption pairs a platform code with its display name.
type PlatformOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// OptionsResult carries the filter vocabulary the issue list exposes.
// Severities, statuses and builds are fixed; releases, platforms and tags
// reflect what has actually been reported.
type OptionsResult struct {
	Severities []string         `json:"severities"`
	Statuses   []string         `json:"statuses"`
	Builds     []string         `json:"builds"`
	Releases   []string         `json:"releases"`
	Platforms  []PlatformOption `json:"platforms"`
	Tags       []string         `json:"tags"`
}

type ListOptionsUseCase struct {
	issueRepo issue.IssueRepository
	tagRepo   tag.Repository
	logger    logger.Interface
}

func NewListOptionsUseCase(
	issueRepo issue.IssueRepository,
	tagRepo tag.Repository,
	logger logger.Interface,
) *ListOptionsUseCase {
	return &ListOptionsUseCase{
		issueRepo: issueRepo,
		tagRepo:   tagRepo,
		logger:    logger,
	}
}

func (uc *ListOptionsUseCase) Execute(ctx context.Context) (*OptionsResult, error) {
	releases, err := uc.issueRepo.DistinctReleases(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load release options", "error", err)
		return nil, err
	}

	platformCodes, err := uc.issueRepo.DistinctPlatforms(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load platform options", "error", err)
		return nil, err
	}

	platforms := make([]PlatformOption, 0, len(platformCodes))
	for _, code := range platformCodes {
		platforms = append(platforms, PlatformOption{
			Code:  code,
			Label: issue.PlatformDisplayName(code),
		})
	}

	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tag options", "error", err)
		return nil, err
	}

	tagNames := make([]string, 0, len(tags))
	for _, t := range tags {
		tagNames = append(tagNames, t.Name())
	}

	return &OptionsResult{
		Severities: []string{
			vo.SeverityLow.String(),
			vo.SeverityMedium.String(),
			vo.SeverityHigh.String(),
			vo.SeverityCritical.String(),
		},
		Statuses: []string{
			vo.StatusOpen.String(),
			vo.StatusInProgress.String(),
			vo.StatusResolved.String(),
			vo.StatusClosed.String(),
			vo.StatusCCR.String(),
		},
		Builds:    issue.BuildOptions(),
		Releases:  releases,
		Platforms: platforms,
		Tags:      tagNames,
	}, nil
}
