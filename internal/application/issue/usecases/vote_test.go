package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testertalk/internal/domain/issue"
	apperrors "testertalk/internal/shared/errors"
)

func TestVoteIssueUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		up        bool
		upvotes   int
		downvotes int
		wantScore int
	}{
		{"upvote", true, 3, 1, 2},
		{"downvote", false, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issueRepo := &mockIssueRepository{
				IncrementVoteFunc: func(ctx context.Context, id uint, up bool) (*issue.Issue, error) {
					assert.Equal(t, uint(42), id)
					assert.Equal(t, tt.up, up)
					iss, err := issue.ReconstructIssue(
						id, "t", testPath, "High", nil, "251", "lnx86", "", "",
						"d", "", "kchen", "", "open", "",
						tt.upvotes, tt.downvotes, time.Now(), time.Now(),
					)
					require.NoError(t, err)
					return iss, nil
				},
			}

			uc := NewVoteIssueUseCase(issueRepo, &mockLogger{})

			result, err := uc.Execute(context.Background(), VoteIssueCommand{IssueID: 42, Up: tt.up})
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.upvotes, result.Upvotes)
			assert.Equal(t, tt.downvotes, result.Downvotes)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestVoteIssueUseCase_Execute_MissingID(t *testing.T) {
	uc := NewVoteIssueUseCase(&mockIssueRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), VoteIssueCommand{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestVoteCommentUseCase_Execute_Success(t *testing.T) {
	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Comment, error) {
			return reconstructTestComment(t, id, 42), nil
		},
		IncrementVoteFunc: func(ctx context.Context, id uint, up bool) (*issue.Comment, error) {
			comment, err := issue.ReconstructComment(
				id, 42, "c", "Morgan", false, 4, 1, time.Now(), time.Now(),
			)
			require.NoError(t, err)
			return comment, nil
		},
	}

	uc := NewVoteCommentUseCase(commentRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VoteCommentCommand{IssueID: 42, CommentID: 7, Up: true})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 4, result.Upvotes)
	assert.Equal(t, 1, result.Downvotes)
	assert.Equal(t, 3, result.Score)
}

func TestVoteCommentUseCase_Execute_CommentOnOtherIssue(t *testing.T) {
	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Comment, error) {
			return reconstructTestComment(t, id, 99), nil
		},
		IncrementVoteFunc: func(ctx context.Context, id uint, up bool) (*issue.Comment, error) {
			t.Fatal("vote should not land on a comment from another issue")
			return nil, nil
		},
	}

	uc := NewVoteCommentUseCase(commentRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VoteCommentCommand{IssueID: 42, CommentID: 7, Up: true})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
