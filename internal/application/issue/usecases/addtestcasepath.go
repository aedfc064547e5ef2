package usecases

import (
	"context"
	"fmt"

	"testertalk/internal/domain/issue"
	"testertalk/internal/domain/tag"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type AddTestcasePathCommand struct {
	IssueID uint
	Path    string
	AddedBy string
}

type AddTestcasePathResult struct {
	PathID uint
}

// AddTestcasePathUseCase attaches another failing testcase path to an
// existing issue. The path takes the issue's build target, and the bucket
// segment of the new path is linked to the issue as a tag.
type AddTestcasePathUseCase struct {
	issueRepo issue.IssueRepository
	pathRepo  issue.PathRepository
	tagRepo   tag.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewAddTestcasePathUseCase(
	issueRepo issue.IssueRepository,
	pathRepo issue.PathRepository,
	tagRepo tag.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddTestcasePathUseCase {
	return &AddTestcasePathUseCase{
		issueRepo: issueRepo,
		pathRepo:  pathRepo,
		tagRepo:   tagRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *AddTestcasePathUseCase) Execute(ctx context.Context, cmd AddTestcasePathCommand) (*AddTestcasePathResult, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if len(cmd.Path) == 0 {
		return nil, errors.NewValidationError("path is required")
	}
	if len(cmd.AddedBy) == 0 {
		return nil, errors.NewValidationError("added by is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	// A path the issue already tracks is rejected outright, target or not.
	if cmd.Path == iss.TestcasePath() {
		return nil, errors.NewConflictError("path is already the primary testcase path of this issue")
	}
	existing, err := uc.pathRepo.ListByIssueID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Path() == cmd.Path {
			return nil, errors.NewConflictError("path is already attached to this issue")
		}
	}

	// Cross-issue duplicates only matter within the same target, and the
	// issue's own rows were already covered above.
	conflict, err := uc.issueRepo.FindPathConflict(ctx, iss.Target(), cmd.Path, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, errors.NewConflictError(
			fmt.Sprintf("testcase path already reported in issue #%d: %s", conflict.IssueID, conflict.Title))
	}

	path, err := issue.NewTestcasePath(cmd.IssueID, cmd.Path, iss.Target(), cmd.AddedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	bucket := issue.ExtractBucketName(cmd.Path)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.pathRepo.Save(txCtx, path); err != nil {
			return err
		}
		if bucket != "" {
			return uc.tagRepo.AddToIssue(txCtx, cmd.IssueID, bucket)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add testcase path", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("testcase path added",
		"issue_id", cmd.IssueID, "path_id", path.ID(), "bucket", bucket)

	return &AddTestcasePathResult{PathID: path.ID()}, nil
}
