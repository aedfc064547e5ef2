package issue

import "context"

// TestCaseIDGenerator produces unique test-case identifiers of the form
// TC-YYYYMMDD-XXXX, retrying until the candidate collides with no
// identifier already stored on any issue.
type TestCaseIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}
