package dto

import (
	"time"

	"testertalk/internal/domain/issue"
)

type IssueDTO struct {
	ID                  uint            `json:"id"`
	Title               string          `json:"title"`
	TestcasePath        string          `json:"testcase_path"`
	Severity            string          `json:"severity"`
	TestCaseIDs         []string        `json:"test_case_ids"`
	Release             string          `json:"release"`
	Platform            string          `json:"platform"`
	PlatformDisplay     string          `json:"platform_display"`
	Build               string          `json:"build"`
	Target              string          `json:"target"`
	Description         string          `json:"description"`
	DescriptionHTML     string          `json:"description_html,omitempty"`
	AdditionalComments  string          `json:"additional_comments"`
	ReporterName        string          `json:"reporter_name"`
	ReviewerName        string          `json:"reviewer_name"`
	Status              string          `json:"status"`
	CCRNumber           string          `json:"ccr_number,omitempty"`
	Upvotes             int             `json:"upvotes"`
	Downvotes           int             `json:"downvotes"`
	Score               int             `json:"score"`
	Tags                []string        `json:"tags"`
	TestcaseCount       int             `json:"testcase_count"`
	CommentCount        int             `json:"comment_count"`
	HasVerifiedSolution bool            `json:"has_verified_solution"`
	Paths               []PathDTO       `json:"additional_paths"`
	Comments            []CommentDTO    `json:"comments,omitempty"`
	Attachments         []AttachmentDTO `json:"attachments,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	IssueID     uint      `json:"issue_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	AuthorName  string    `json:"author_name"`
	Verified    bool      `json:"verified"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	IssueID      uint      `json:"issue_id"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

type PathDTO struct {
	ID        uint      `json:"id"`
	Path      string    `json:"path"`
	Release   string    `json:"release"`
	Platform  string    `json:"platform"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ToIssueDTO converts an issue aggregate to its transport shape. Comment
// figures come in separately because lists compute them in one batched
// query.
func ToIssueDTO(iss *issue.Issue, stats issue.CommentStats) *IssueDTO {
	if iss == nil {
		return nil
	}

	paths := iss.Paths()
	pathDTOs := make([]PathDTO, 0, len(paths))
	for _, p := range paths {
		pathDTOs = append(pathDTOs, PathDTO{
			ID:        p.ID(),
			Path:      p.Path(),
			Release:   p.Release(),
			Platform:  p.Platform(),
			AddedBy:   p.AddedBy(),
			CreatedAt: p.CreatedAt(),
		})
	}

	return &IssueDTO{
		ID:                  iss.ID(),
		Title:               iss.Title(),
		TestcasePath:        iss.TestcasePath(),
		Severity:            iss.Severity().String(),
		TestCaseIDs:         iss.TestCaseIDs(),
		Release:             iss.Release(),
		Platform:            iss.Platform(),
		PlatformDisplay:     iss.PlatformDisplay(),
		Build:               iss.Build(),
		Target:              iss.Target(),
		Description:         iss.Description(),
		AdditionalComments:  iss.AdditionalComments(),
		ReporterName:        iss.ReporterName(),
		ReviewerName:        iss.ReviewerName(),
		Status:              iss.Status().String(),
		CCRNumber:           iss.CCRNumber(),
		Upvotes:             iss.Upvotes(),
		Downvotes:           iss.Downvotes(),
		Score:               iss.Score(),
		Tags:                iss.Tags(),
		TestcaseCount:       iss.TestcaseCount(),
		CommentCount:        stats.Count,
		HasVerifiedSolution: stats.HasVerified,
		Paths:               pathDTOs,
		CreatedAt:           iss.CreatedAt(),
		UpdatedAt:           iss.UpdatedAt(),
	}
}

func ToCommentDTO(c *issue.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		IssueID:    c.IssueID(),
		Content:    c.Content(),
		AuthorName: c.AuthorName(),
		Verified:   c.Verified(),
		Upvotes:    c.Upvotes(),
		Downvotes:  c.Downvotes(),
		Score:      c.Score(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *issue.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		IssueID:      a.IssueID(),
		OriginalName: a.OriginalName(),
		ContentType:  a.ContentType(),
		Size:         a.Size(),
		CreatedAt:    a.CreatedAt(),
	}
}
