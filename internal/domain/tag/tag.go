package tag

import (
	"fmt"
	"strings"
	"time"

	"testertalk/internal/shared/biztime"
)

// Tag is a reusable label attached to issues. Names are stored trimmed and
// compared case-sensitively; bucket auto-tags arrive already uppercased.
type Tag struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewTag(name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 64 {
		return nil, fmt.Errorf("tag name cannot exceed 64 characters")
	}

	return &Tag{
		name:      name,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructTag(id uint, name string, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}

	return &Tag{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}
