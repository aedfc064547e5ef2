package mappers

import (
	"time"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between Issue domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(iss *issue.Issue) *models.IssueModel

	// ToDomain converts an issue persistence model to a domain entity.
	// Test-case identifiers, tags, secondary paths and comments are loaded
	// separately by the repository.
	ToDomain(model *models.IssueModel) (*issue.Issue, error)

	PathToModel(p *issue.TestcasePath) *models.TestcasePathModel
	PathToDomain(model *models.TestcasePathModel) (*issue.TestcasePath, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(iss *issue.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:                 iss.ID(),
		Title:              iss.Title(),
		TestcasePath:       iss.TestcasePath(),
		Severity:           iss.Severity().String(),
		ReleaseCode:        iss.Release(),
		Platform:           iss.Platform(),
		Build:              iss.Build(),
		Description:        iss.Description(),
		AdditionalComments: iss.AdditionalComments(),
		ReporterName:       iss.ReporterName(),
		ReviewerName:       iss.ReviewerName(),
		Status:             iss.Status().String(),
		CCRNumber:          iss.CCRNumber(),
		Upvotes:            iss.Upvotes(),
		Downvotes:          iss.Downvotes(),
		CreatedAt:          iss.CreatedAt().UnixMilli(),
		UpdatedAt:          iss.UpdatedAt().UnixMilli(),
	}

	// Empty targets are stored as NULL so they stay outside the composite
	// unique index.
	if target := iss.Target(); target != "" {
		model.Target = &target
	}

	return model
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewIssueStatus(model.Status)
	if err != nil {
		return nil, err
	}

	target := ""
	if model.Target != nil {
		target = *model.Target
	}

	return issue.ReconstructIssue(
		model.ID,
		model.Title,
		model.TestcasePath,
		severity,
		nil,
		model.ReleaseCode,
		model.Platform,
		model.Build,
		target,
		model.Description,
		model.AdditionalComments,
		model.ReporterName,
		model.ReviewerName,
		status,
		model.CCRNumber,
		model.Upvotes,
		model.Downvotes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *IssueMapperImpl) PathToModel(p *issue.TestcasePath) *models.TestcasePathModel {
	model := &models.TestcasePathModel{
		ID:          p.ID(),
		IssueID:     p.IssueID(),
		Path:        p.Path(),
		ReleaseCode: p.Release(),
		Platform:    p.Platform(),
		AddedBy:     p.AddedBy(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
	}

	if target := p.Target(); target != "" {
		model.Target = &target
	}

	return model
}

func (m *IssueMapperImpl) PathToDomain(model *models.TestcasePathModel) (*issue.TestcasePath, error) {
	target := ""
	if model.Target != nil {
		target = *model.Target
	}

	return issue.ReconstructTestcasePath(
		model.ID,
		model.IssueID,
		model.Path,
		target,
		model.ReleaseCode,
		model.Platform,
		model.AddedBy,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
