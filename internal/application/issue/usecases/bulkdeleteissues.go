package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type BulkDeleteIssuesCommand struct {
	IssueIDs []uint
}

type BulkDeleteIssuesResult struct {
	Deleted int64
}

type BulkDeleteIssuesUseCase struct {
	issueRepo      issue.IssueRepository
	attachmentRepo issue.AttachmentRepository
	blobs          BlobRemover
	txManager      TransactionManager
	logger         logger.Interface
}

func NewBulkDeleteIssuesUseCase(
	issueRepo issue.IssueRepository,
	attachmentRepo issue.AttachmentRepository,
	blobs BlobRemover,
	txManager TransactionManager,
	logger logger.Interface,
) *BulkDeleteIssuesUseCase {
	return &BulkDeleteIssuesUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *BulkDeleteIssuesUseCase) Execute(ctx context.Context, cmd BulkDeleteIssuesCommand) (*BulkDeleteIssuesResult, error) {
	if len(cmd.IssueIDs) == 0 {
		return nil, errors.NewValidationError("at least one issue ID is required")
	}

	attachments, err := uc.attachmentRepo.ListByIssueIDs(ctx, cmd.IssueIDs)
	if err != nil {
		return nil, err
	}

	var deleted int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		deleted, err = uc.issueRepo.DeleteMany(txCtx, cmd.IssueIDs)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to bulk delete issues", "error", err)
		return nil, err
	}

	for _, issueAttachments := range attachments {
		for _, a := range issueAttachments {
			if err := uc.blobs.Remove(a.StoredName()); err != nil {
				uc.logger.Warnw("failed to remove attachment blob",
					"stored_name", a.StoredName(), "error", err)
			}
		}
	}

	uc.logger.Infow("issues bulk deleted", "requested", len(cmd.IssueIDs), "deleted", deleted)
	return &BulkDeleteIssuesResult{Deleted: deleted}, nil
}
