package issue

import (
	"context"

	vo "testertalk/internal/domain/issue/valueobjects"
)

// IssueFilter narrows the paginated issue list. TestCaseID matches issues
// carrying the identifier among any of their test-case identifiers.
type IssueFilter struct {
	Status     *vo.IssueStatus
	Severity   *vo.Severity
	Release    *string
	Platform   *string
	Build      *string
	Target     *string
	Reporter   *string
	Reviewer   *string
	Tag        *string
	TestCaseID *string
}

// SearchFilter composes the free-text search. Query matches title,
// description and test-case identifiers case-insensitively; the remaining
// fields are equality filters. Tags is accepted but not applied.
type SearchFilter struct {
	Query      string
	Status     *vo.IssueStatus
	Severity   *vo.Severity
	Release    *string
	Platform   *string
	Build      *string
	Target     *string
	Reporter   *string
	TestCaseID *string
	Tags       []string
	Size       int
}

// PathConflict identifies the issue already claiming a testcase path for a
// build target, and whether the claim is the issue's primary path or one of
// its secondary paths.
type PathConflict struct {
	IssueID   uint
	Title     string
	Secondary bool
}

// IssueIDTitle is the projection used by bulk listings that only need
// identity.
type IssueIDTitle struct {
	ID    uint
	Title string
}

// CommentStats aggregates per-issue comment figures for list rendering.
type CommentStats struct {
	Count       int
	HasVerified bool
}

type IssueRepository interface {
	Save(ctx context.Context, iss *Issue) error
	Update(ctx context.Context, iss *Issue) error
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
	GetByID(ctx context.Context, id uint) (*Issue, error)
	List(ctx context.Context, filter IssueFilter, offset, limit int) ([]*Issue, int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Issue, error)
	ListIDTitles(ctx context.Context, ids []uint) ([]IssueIDTitle, error)

	// FindPathConflict reports which issue, if any, already holds path for
	// target across primary and secondary paths. Issues with an empty
	// target never conflict. excludeIssueID skips an issue's own rows
	// during updates; pass zero to check all issues.
	FindPathConflict(ctx context.Context, target, path string, excludeIssueID uint) (*PathConflict, error)

	// TestCaseIDExists reports whether any issue already carries the
	// candidate identifier.
	TestCaseIDExists(ctx context.Context, candidate string) (bool, error)

	DistinctReleases(ctx context.Context) ([]string, error)
	DistinctPlatforms(ctx context.Context) ([]string, error)
	IncrementVote(ctx context.Context, id uint, up bool) (*Issue, error)
	UpdateStatus(ctx context.Context, id uint, status vo.IssueStatus) error
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	ListByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)

	// UnverifyAllForIssue clears the verified flag on every comment of the
	// issue. Run inside the same transaction as MarkVerified so exactly one
	// comment ends up verified.
	UnverifyAllForIssue(ctx context.Context, issueID uint) error
	MarkVerified(ctx context.Context, commentID uint) error

	IncrementVote(ctx context.Context, id uint, up bool) (*Comment, error)
	StatsByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]CommentStats, error)
}

type PathRepository interface {
	Save(ctx context.Context, path *TestcasePath) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*TestcasePath, error)
	ListByIssueID(ctx context.Context, issueID uint) ([]*TestcasePath, error)
	ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*TestcasePath, error)

	// SyncTarget rewrites the denormalized target on every secondary path
	// of the issue. Run inside the issue-update transaction whenever the
	// issue's target changes.
	SyncTarget(ctx context.Context, issueID uint, target string) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByIssueID(ctx context.Context, issueID uint) ([]*Attachment, error)
	ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*Attachment, error)
}
