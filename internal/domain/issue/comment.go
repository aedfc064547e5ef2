package issue

import (
	"fmt"
	"time"

	"testertalk/internal/shared/biztime"
)

// Comment is a reply on an issue. At most one comment per issue can carry
// the verified flag; enforcing that exclusivity is the verify-solution use
// case's responsibility, the entity only tracks its own flag.
type Comment struct {
	id         uint
	issueID    uint
	content    string
	authorName string
	verified   bool
	upvotes    int
	downvotes  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComment(issueID uint, content string, authorName string) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}

	now := biztime.NowUTC()
	return &Comment{
		issueID:    issueID,
		content:    content,
		authorName: authorName,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id uint,
	issueID uint,
	content string,
	authorName string,
	verified bool,
	upvotes int,
	downvotes int,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if upvotes < 0 || downvotes < 0 {
		return nil, fmt.Errorf("vote counters cannot be negative")
	}

	return &Comment{
		id:         id,
		issueID:    issueID,
		content:    content,
		authorName: authorName,
		verified:   verified,
		upvotes:    upvotes,
		downvotes:  downvotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Verified() bool {
	return c.verified
}

func (c *Comment) Upvotes() int {
	return c.upvotes
}

func (c *Comment) Downvotes() int {
	return c.downvotes
}

func (c *Comment) Score() int {
	return c.upvotes - c.downvotes
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) SetContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	c.content = content
	c.touch()
	return nil
}

func (c *Comment) Verify() {
	if c.verified {
		return
	}
	c.verified = true
	c.touch()
}

func (c *Comment) Unverify() {
	if !c.verified {
		return
	}
	c.verified = false
	c.touch()
}

func (c *Comment) Upvote() {
	c.upvotes++
	c.touch()
}

func (c *Comment) Downvote() {
	c.downvotes++
	c.touch()
}

func (c *Comment) touch() {
	c.updatedAt = biztime.NowUTC()
}
