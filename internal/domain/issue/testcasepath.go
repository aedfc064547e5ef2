package issue

import (
	"fmt"
	"time"

	"testertalk/internal/shared/biztime"
)

// TestcasePath is a secondary testcase path attached to an issue beyond its
// primary path. The owning issue's build target is denormalized onto each
// row so the storage layer can enforce per-target path uniqueness across
// primary and secondary paths with one composite index. Release and
// platform are derived from the path itself, not inherited from the issue.
type TestcasePath struct {
	id        uint
	issueID   uint
	path      string
	target    string
	release   string
	platform  string
	addedBy   string
	createdAt time.Time
}

func NewTestcasePath(issueID uint, path string, target string, addedBy string) (*TestcasePath, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("path is required")
	}
	if len(addedBy) == 0 {
		return nil, fmt.Errorf("added by is required")
	}

	release, platform := ParseTestcasePath(path)

	return &TestcasePath{
		issueID:   issueID,
		path:      path,
		target:    target,
		release:   release,
		platform:  platform,
		addedBy:   addedBy,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructTestcasePath(
	id uint,
	issueID uint,
	path string,
	target string,
	release string,
	platform string,
	addedBy string,
	createdAt time.Time,
) (*TestcasePath, error) {
	if id == 0 {
		return nil, fmt.Errorf("testcase path ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("path is required")
	}

	return &TestcasePath{
		id:        id,
		issueID:   issueID,
		path:      path,
		target:    target,
		release:   release,
		platform:  platform,
		addedBy:   addedBy,
		createdAt: createdAt,
	}, nil
}

func (p *TestcasePath) ID() uint {
	return p.id
}

func (p *TestcasePath) IssueID() uint {
	return p.issueID
}

func (p *TestcasePath) Path() string {
	return p.path
}

func (p *TestcasePath) Target() string {
	return p.target
}

func (p *TestcasePath) Release() string {
	return p.release
}

func (p *TestcasePath) Platform() string {
	return p.platform
}

func (p *TestcasePath) AddedBy() string {
	return p.addedBy
}

func (p *TestcasePath) CreatedAt() time.Time {
	return p.createdAt
}

func (p *TestcasePath) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("testcase path ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("testcase path ID cannot be zero")
	}
	p.id = id
	return nil
}
