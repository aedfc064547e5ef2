package usecases

import (
	"context"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type DeleteIssueCommand struct {
	IssueID uint
}

// BlobRemover deletes stored attachment blobs.
type BlobRemover interface {
	Remove(storedName string) error
}

type DeleteIssueUseCase struct {
	issueRepo      issue.IssueRepository
	attachmentRepo issue.AttachmentRepository
	blobs          BlobRemover
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteIssueUseCase(
	issueRepo issue.IssueRepository,
	attachmentRepo issue.AttachmentRepository,
	blobs BlobRemover,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteIssueUseCase {
	return &DeleteIssueUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteIssueUseCase) Execute(ctx context.Context, cmd DeleteIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}

	attachments, err := uc.attachmentRepo.ListByIssueID(ctx, cmd.IssueID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.issueRepo.Delete(txCtx, cmd.IssueID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete issue", "issue_id", cmd.IssueID, "error", err)
		return err
	}

	// Blob removal happens after the rows are gone; a leftover file is
	// recoverable garbage, a dangling row is not.
	for _, a := range attachments {
		if err := uc.blobs.Remove(a.StoredName()); err != nil {
			uc.logger.Warnw("failed to remove attachment blob",
				"issue_id", cmd.IssueID, "stored_name", a.StoredName(), "error", err)
		}
	}

	uc.logger.Infow("issue deleted", "issue_id", cmd.IssueID)
	return nil
}
