package issue

import (
	"fmt"
	"time"

	"testertalk/internal/shared/biztime"
)

// Attachment records a file uploaded alongside an issue. The stored name is
// the opaque name under the upload directory; the original name is what the
// reporter uploaded and what downloads are served as.
type Attachment struct {
	id           uint
	issueID      uint
	originalName string
	storedName   string
	contentType  string
	size         int64
	createdAt    time.Time
}

func NewAttachment(issueID uint, originalName, storedName, contentType string, size int64) (*Attachment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("original name is required")
	}
	if len(storedName) == 0 {
		return nil, fmt.Errorf("stored name is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		issueID:      issueID,
		originalName: originalName,
		storedName:   storedName,
		contentType:  contentType,
		size:         size,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	issueID uint,
	originalName, storedName, contentType string,
	size int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(storedName) == 0 {
		return nil, fmt.Errorf("stored name is required")
	}

	return &Attachment{
		id:           id,
		issueID:      issueID,
		originalName: originalName,
		storedName:   storedName,
		contentType:  contentType,
		size:         size,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) IssueID() uint {
	return a.issueID
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
