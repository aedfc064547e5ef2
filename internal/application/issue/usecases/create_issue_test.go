package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	apperrors "testertalk/internal/shared/errors"
)

const testPath = "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001"

func reconstructTestIssue(t *testing.T, id uint) *issue.Issue {
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
		"tgt-a",
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

func validCreateCommand() CreateIssueCommand {
	return CreateIssueCommand{
		Title:        "spurious timing failure",
		TestcasePath: testPath,
		Severity:     "High",
		Build:        "1530",
		Target:       "tgt-a",
		Description:  "fails on every nightly run",
		ReporterName: "kchen",
		Tags:         []string{"nightly"},
	}
}

func TestCreateIssueUseCase_Execute_Success(t *testing.T) {
	var savedIssue *issue.Issue
	issueRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, iss *issue.Issue) error {
			if err := iss.SetID(42); err != nil {
				return err
			}
			savedIssue = iss
			return nil
		},
	}
	var replacedTags []string
	tagRepo := &mockTagRepository{
		ReplaceForIssueFunc: func(ctx context.Context, issueID uint, names []string) error {
			replacedTags = names
			return nil
		},
	}
	idGen := &mockIDGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "TC-20250901-0042", nil
		},
	}
	var resolvedBucket string
	reviewers := &mockReviewerResolver{
		ResolveFunc: func(ctx context.Context, bucketName string) (string, string, error) {
			resolvedBucket = bucketName
			return "Morgan", "", nil
		},
	}

	uc := NewCreateIssueUseCase(
		issueRepo, tagRepo, idGen, reviewers,
		&mockReviewerNotifier{}, &mockTransactionManager{}, "http://localhost:8080", &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, uint(42), result.IssueID)
	assert.Equal(t, "TC-20250901-0042", result.TestCaseID)
	assert.Equal(t, "Morgan", result.ReviewerName)
	assert.Equal(t, "open", result.Status)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, savedIssue)
	assert.Equal(t, "251", savedIssue.Release())
	assert.Equal(t, "lnx86", savedIssue.Platform())
	assert.Equal(t, "Morgan", savedIssue.ReviewerName())
	assert.Equal(t, []string{"TC-20250901-0042"}, savedIssue.TestCaseIDs())

	// Bucket comes from the path segment after the automation root.
	assert.Equal(t, "TIMING", resolvedBucket)
	assert.Equal(t, []string{"nightly", "TIMING"}, replacedTags)
}

func TestCreateIssueUseCase_Execute_PathConflict(t *testing.T) {
	issueRepo := &mockIssueRepository{
		FindPathConflictFunc: func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
			assert.Equal(t, "tgt-a", target)
			assert.Equal(t, testPath, path)
			assert.Zero(t, excludeIssueID)
			return &issue.PathConflict{IssueID: 7, Title: "existing issue"}, nil
		},
		SaveFunc: func(ctx context.Context, iss *issue.Issue) error {
			t.Fatal("Save should not be called on conflict")
			return nil
		},
	}

	uc := NewCreateIssueUseCase(
		issueRepo, &mockTagRepository{}, &mockIDGenerator{}, &mockReviewerResolver{},
		&mockReviewerNotifier{}, &mockTransactionManager{}, "", &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Contains(t, appErr.Message, "issue #7")
}

func TestCreateIssueUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cmd *CreateIssueCommand)
	}{
		{"missing title", func(cmd *CreateIssueCommand) { cmd.Title = "" }},
		{"missing path", func(cmd *CreateIssueCommand) { cmd.TestcasePath = "" }},
		{"invalid severity", func(cmd *CreateIssueCommand) { cmd.Severity = "urgent" }},
		{"missing description", func(cmd *CreateIssueCommand) { cmd.Description = "" }},
		{"missing reporter", func(cmd *CreateIssueCommand) { cmd.ReporterName = "" }},
	}

	uc := NewCreateIssueUseCase(
		&mockIssueRepository{}, &mockTagRepository{}, &mockIDGenerator{}, &mockReviewerResolver{},
		&mockReviewerNotifier{}, &mockTransactionManager{}, "", &mockLogger{},
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tt.modify(&cmd)

			result, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.Nil(t, result)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateIssueUseCase_Execute_UnparsablePathSkipsBucketTag(t *testing.T) {
	var savedIssue *issue.Issue
	issueRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, iss *issue.Issue) error {
			if err := iss.SetID(1); err != nil {
				return err
			}
			savedIssue = iss
			return nil
		},
	}
	reviewers := &mockReviewerResolver{
		ResolveFunc: func(ctx context.Context, bucketName string) (string, string, error) {
			assert.Empty(t, bucketName)
			return "Admin", "", nil
		},
	}

	uc := NewCreateIssueUseCase(
		issueRepo, &mockTagRepository{}, &mockIDGenerator{}, reviewers,
		&mockReviewerNotifier{}, &mockTransactionManager{}, "", &mockLogger{},
	)

	cmd := validCreateCommand()
	cmd.TestcasePath = "/custom/suite/tc001"
	cmd.Tags = nil

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "Admin", result.ReviewerName)
	require.NotNil(t, savedIssue)
	assert.Empty(t, savedIssue.Release())
	assert.Empty(t, savedIssue.Platform())
	assert.Empty(t, savedIssue.Tags())
}

func TestCreateIssueUseCase_Execute_SaveFailure(t *testing.T) {
	issueRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, iss *issue.Issue) error {
			return errors.New("connection lost")
		},
	}

	uc := NewCreateIssueUseCase(
		issueRepo, &mockTagRepository{}, &mockIDGenerator{}, &mockReviewerResolver{},
		&mockReviewerNotifier{}, &mockTransactionManager{}, "", &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.Nil(t, result)
}
