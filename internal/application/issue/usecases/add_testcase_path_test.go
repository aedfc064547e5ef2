package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	apperrors "testertalk/internal/shared/errors"
)

const secondaryPath = "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc002"

// reconstructUntargetedIssue mirrors reconstructTestIssue but with no build
// target, the shape issues take before triage picks one.
func reconstructUntargetedIssue(t *testing.T, id uint) *issue.Issue {
	t.Helper()
	iss, err := issue.ReconstructIssue(
		id,
		"spurious timing failure",
		testPath,
		vo.SeverityHigh,
		[]string{"TC-20250101-0001"},
		"251",
		"lnx86",
		"1530",
		"",
		"fails on every nightly run",
		"",
		"kchen",
		"Morgan",
		vo.StatusOpen,
		"",
		0,
		0,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return iss
}

func TestAddTestcasePathUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTestIssue(t, 42)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
		FindPathConflictFunc: func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
			// Same-issue duplicates are checked before this point, so the
			// issue excludes itself from the target-wide lookup.
			assert.Equal(t, "tgt-a", target)
			assert.Equal(t, secondaryPath, path)
			assert.Equal(t, uint(42), excludeIssueID)
			return nil, nil
		},
	}
	var savedPath *issue.TestcasePath
	pathRepo := &mockPathRepository{
		ListByIssueIDFunc: func(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, path *issue.TestcasePath) error {
			if err := path.SetID(5); err != nil {
				return err
			}
			savedPath = path
			return nil
		},
	}
	var taggedIssue uint
	var taggedName string
	tagRepo := &mockTagRepository{
		AddToIssueFunc: func(ctx context.Context, issueID uint, name string) error {
			taggedIssue = issueID
			taggedName = name
			return nil
		},
	}

	uc := NewAddTestcasePathUseCase(issueRepo, pathRepo, tagRepo, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddTestcasePathCommand{
		IssueID: 42,
		Path:    secondaryPath,
		AddedBy: "kchen",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, uint(5), result.PathID)

	require.NotNil(t, savedPath)
	assert.Equal(t, "tgt-a", savedPath.Target())
	assert.Equal(t, "kchen", savedPath.AddedBy())
	assert.Equal(t, "251", savedPath.Release())
	assert.Equal(t, "lnx86", savedPath.Platform())

	assert.Equal(t, uint(42), taggedIssue)
	assert.Equal(t, "TIMING", taggedName)
}

func TestAddTestcasePathUseCase_Execute_PrimaryPathRejected(t *testing.T) {
	// No target on the issue: the primary path must still be rejected
	// without consulting the target-scoped conflict lookup.
	existing := reconstructUntargetedIssue(t, 42)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
		FindPathConflictFunc: func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
			t.Fatal("FindPathConflict should not be called for the issue's own primary path")
			return nil, nil
		},
	}
	pathRepo := &mockPathRepository{
		SaveFunc: func(ctx context.Context, path *issue.TestcasePath) error {
			t.Fatal("Save should not be called on conflict")
			return nil
		},
	}

	uc := NewAddTestcasePathUseCase(issueRepo, pathRepo, &mockTagRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddTestcasePathCommand{
		IssueID: 42,
		Path:    testPath,
		AddedBy: "kchen",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestAddTestcasePathUseCase_Execute_DuplicateSecondaryRejected(t *testing.T) {
	existing := reconstructUntargetedIssue(t, 42)
	attached, err := issue.NewTestcasePath(42, secondaryPath, "", "kchen")
	require.NoError(t, err)

	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
		FindPathConflictFunc: func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
			t.Fatal("FindPathConflict should not be called for a path the issue already tracks")
			return nil, nil
		},
	}
	pathRepo := &mockPathRepository{
		ListByIssueIDFunc: func(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error) {
			return []*issue.TestcasePath{attached}, nil
		},
		SaveFunc: func(ctx context.Context, path *issue.TestcasePath) error {
			t.Fatal("Save should not be called on conflict")
			return nil
		},
	}

	uc := NewAddTestcasePathUseCase(issueRepo, pathRepo, &mockTagRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddTestcasePathCommand{
		IssueID: 42,
		Path:    secondaryPath,
		AddedBy: "kchen",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestAddTestcasePathUseCase_Execute_ConflictWithOtherIssue(t *testing.T) {
	existing := reconstructTestIssue(t, 42)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
		FindPathConflictFunc: func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
			return &issue.PathConflict{IssueID: 77, Title: "known flow regression"}, nil
		},
	}
	pathRepo := &mockPathRepository{
		ListByIssueIDFunc: func(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, path *issue.TestcasePath) error {
			t.Fatal("Save should not be called on conflict")
			return nil
		},
	}

	uc := NewAddTestcasePathUseCase(issueRepo, pathRepo, &mockTagRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddTestcasePathCommand{
		IssueID: 42,
		Path:    secondaryPath,
		AddedBy: "kchen",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Contains(t, appErr.Message, "#77")
}

func TestAddTestcasePathUseCase_Execute_Validation(t *testing.T) {
	uc := NewAddTestcasePathUseCase(
		&mockIssueRepository{}, &mockPathRepository{}, &mockTagRepository{},
		&mockTransactionManager{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), AddTestcasePathCommand{Path: secondaryPath, AddedBy: "kchen"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), AddTestcasePathCommand{IssueID: 42, AddedBy: "kchen"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), AddTestcasePathCommand{IssueID: 42, Path: secondaryPath})
	require.Error(t, err)
}
