package tag

import "context"

type Repository interface {
	// GetOrCreate returns the tag with the given name, creating it when
	// missing.
	GetOrCreate(ctx context.Context, name string) (*Tag, error)
	GetByName(ctx context.Context, name string) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)

	// ReplaceForIssue replaces the issue's tag associations with exactly
	// the named tags, creating missing tags along the way.
	ReplaceForIssue(ctx context.Context, issueID uint, names []string) error

	// AddToIssue associates a tag with an issue if not already linked.
	AddToIssue(ctx context.Context, issueID uint, name string) error

	NamesByIssueID(ctx context.Context, issueID uint) ([]string, error)
	NamesByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]string, error)
}
