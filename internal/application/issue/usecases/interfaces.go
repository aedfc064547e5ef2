package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReviewerResolver resolves the reviewer responsible for a bucket.
type ReviewerResolver interface {
	Resolve(ctx context.Context, bucketName string) (name, email string, err error)
}

// ReviewerNotifier emails a reviewer about a newly assigned issue.
type ReviewerNotifier interface {
	NotifyIssueAssigned(to, reviewerName, issueTitle, issueURL string) error
}

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type UpdateIssueExecutor interface {
	Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type SearchIssuesExecutor interface {
	Execute(ctx context.Context, query SearchIssuesQuery) ([]*dto.IssueDTO, error)
}

type DeleteIssueExecutor interface {
	Execute(ctx context.Context, cmd DeleteIssueCommand) error
}

type BulkDeleteIssuesExecutor interface {
	Execute(ctx context.Context, cmd BulkDeleteIssuesCommand) (*BulkDeleteIssuesResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListIssueTitlesExecutor interface {
	Execute(ctx context.Context, query ListIssueTitlesQuery) ([]IssueTitleDTO, error)
}

type ListOptionsExecutor interface {
	Execute(ctx context.Context) (*OptionsResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type VerifySolutionExecutor interface {
	Execute(ctx context.Context, cmd VerifySolutionCommand) (*VerifySolutionResult, error)
}

type VoteIssueExecutor interface {
	Execute(ctx context.Context, cmd VoteIssueCommand) (*VoteResult, error)
}

type VoteCommentExecutor interface {
	Execute(ctx context.Context, cmd VoteCommentCommand) (*VoteResult, error)
}

type AddTestcasePathExecutor interface {
	Execute(ctx context.Context, cmd AddTestcasePathCommand) (*AddTestcasePathResult, error)
}

type RemoveTestcasePathExecutor interface {
	Execute(ctx context.Context, cmd RemoveTestcasePathCommand) error
}

type MoveToCCRExecutor interface {
	Execute(ctx context.Context, cmd MoveToCCRCommand) (*dto.IssueDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentContent, error)
}
