package admin

import (
	"errors"

	"testertalk/internal/application/issue/usecases"
)

var (
	errMissingIDs = errors.New("ids query parameter is required")
	errInvalidIDs = errors.New("ids must be positive integers")
)

type EditIssueRequest struct {
	Title              *string  `json:"title" binding:"omitempty,max=200"`
	TestcasePath       *string  `json:"testcase_path" binding:"omitempty,max=500"`
	Severity           *string  `json:"severity"`
	Build              *string  `json:"build"`
	Target             *string  `json:"target"`
	Description        *string  `json:"description"`
	AdditionalComments *string  `json:"additional_comments"`
	Status             *string  `json:"status"`
	Tags               []string `json:"tags"`
}

func (r *EditIssueRequest) ToCommand(issueID uint) usecases.UpdateIssueCommand {
	return usecases.UpdateIssueCommand{
		IssueID:            issueID,
		Title:              r.Title,
		TestcasePath:       r.TestcasePath,
		Severity:           r.Severity,
		Build:              r.Build,
		Target:             r.Target,
		Description:        r.Description,
		AdditionalComments: r.AdditionalComments,
		Status:             r.Status,
		Tags:               r.Tags,
	}
}
