package issue

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"testertalk/internal/application/issue/usecases"
)

type CreateIssueRequest struct {
	Title              string   `json:"title" form:"title" binding:"required,max=200"`
	TestcasePath       string   `json:"testcase_path" form:"testcase_path" binding:"required,max=500"`
	Severity           string   `json:"severity" form:"severity" binding:"required"`
	Build              string   `json:"build" form:"build"`
	Target             string   `json:"target" form:"target"`
	Description        string   `json:"description" form:"description" binding:"required"`
	AdditionalComments string   `json:"additional_comments" form:"additional_comments"`
	Tags               []string `json:"tags" form:"tags"`
}

func (r *CreateIssueRequest) ToCommand(reporterName string) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Title:              r.Title,
		TestcasePath:       r.TestcasePath,
		Severity:           r.Severity,
		Build:              r.Build,
		Target:             r.Target,
		Description:        r.Description,
		AdditionalComments: r.AdditionalComments,
		ReporterName:       reporterName,
		Tags:               r.Tags,
	}
}

type UpdateIssueRequest struct {
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

func (r *UpdateIssueRequest) ToCommand(issueID uint) usecases.UpdateIssueCommand {
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

type AddCommentRequest struct {
	Content string `json:"content" form:"content" binding:"required,max=10000"`
}

type AddPathRequest struct {
	Path string `json:"path" binding:"required,max=500"`
}

type MoveToCCRRequest struct {
	CCRNumber string `json:"ccr_number" binding:"required,max=50"`
}

type SearchRequest struct {
	Query      string   `json:"query" validate:"max=500"`
	Status     *string  `json:"status"`
	Severity   *string  `json:"severity"`
	Release    *string  `json:"release"`
	Platform   *string  `json:"platform"`
	Build      *string  `json:"build"`
	Target     *string  `json:"target"`
	Reporter   *string  `json:"reporter_name"`
	TestCaseID *string  `json:"test_case_id"`
	Tags       []string `json:"tags"`
	Size       int      `json:"size" validate:"gte=0,lte=100"`
}

func (r *SearchRequest) ToQuery() usecases.SearchIssuesQuery {
	return usecases.SearchIssuesQuery{
		Query:      r.Query,
		Status:     r.Status,
		Severity:   r.Severity,
		Release:    r.Release,
		Platform:   r.Platform,
		Build:      r.Build,
		Target:     r.Target,
		Reporter:   r.Reporter,
		TestCaseID: r.TestCaseID,
		Tags:       r.Tags,
		Size:       r.Size,
	}
}

func parseSearchRequest(c *gin.Context) SearchRequest {
	req := SearchRequest{
		Query: c.Query("query"),
	}
	if req.Query == "" {
		req.Query = c.Query("q")
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil {
		req.Size = size
	}
	req.Status = optionalQuery(c, "status")
	req.Severity = optionalQuery(c, "severity")
	req.Release = optionalQuery(c, "release")
	req.Platform = optionalQuery(c, "platform")
	req.Build = optionalQuery(c, "build")
	req.Target = optionalQuery(c, "target")
	req.Reporter = optionalQuery(c, "reporter_name")
	req.TestCaseID = optionalQuery(c, "test_case_id")
	if tags := c.QueryArray("tags"); len(tags) > 0 {
		req.Tags = tags
	}
	return req
}

func parseListIssuesQuery(c *gin.Context, page, pageSize int) usecases.ListIssuesQuery {
	return usecases.ListIssuesQuery{
		Status:     optionalQuery(c, "status"),
		Severity:   optionalQuery(c, "severity"),
		Release:    optionalQuery(c, "release"),
		Platform:   optionalQuery(c, "platform"),
		Build:      optionalQuery(c, "build"),
		Target:     optionalQuery(c, "target"),
		Reporter:   optionalQuery(c, "reporter_name"),
		Reviewer:   optionalQuery(c, "reviewer"),
		Tag:        optionalQuery(c, "tag"),
		TestCaseID: optionalQuery(c, "test_case_id"),
		Page:       page,
		PageSize:   pageSize,
	}
}

func optionalQuery(c *gin.Context, key string) *string {
	if val := c.Query(key); val != "" {
		return &val
	}
	return nil
}
