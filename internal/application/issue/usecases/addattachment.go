package usecases

import (
	"context"
	"io"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	IssueID      uint
	OriginalName string
	ContentType  string
	Content      io.Reader
}

// BlobStore persists attachment content and serves it back.
type BlobStore interface {
	Store(r io.Reader, originalName string) (storedName string, size int64, err error)
	Open(storedName string) (io.ReadSeekCloser, error)
	Remove(storedName string) error
}

type AddAttachmentUseCase struct {
	issueRepo      issue.IssueRepository
	attachmentRepo issue.AttachmentRepository
	blobs          BlobStore
	maxFileSize    int64
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	issueRepo issue.IssueRepository,
	attachmentRepo issue.AttachmentRepository,
	blobs BlobStore,
	maxFileSize int64,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if len(cmd.OriginalName) == 0 {
		return nil, errors.NewValidationError("file name is required")
	}
	if cmd.Content == nil {
		return nil, errors.NewValidationError("file content is required")
	}

	if _, err := uc.issueRepo.GetByID(ctx, cmd.IssueID); err != nil {
		return nil, err
	}

	// The blob lands on disk before the row exists; an orphaned blob is
	// cleaned up on any later failure.
	reader := cmd.Content
	if uc.maxFileSize > 0 {
		reader = io.LimitReader(reader, uc.maxFileSize+1)
	}
	storedName, size, err := uc.blobs.Store(reader, cmd.OriginalName)
	if err != nil {
		uc.logger.Errorw("failed to store attachment blob", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}
	if uc.maxFileSize > 0 && size > uc.maxFileSize {
		_ = uc.blobs.Remove(storedName)
		return nil, errors.NewValidationError("file exceeds maximum allowed size")
	}

	attachment, err := issue.NewAttachment(cmd.IssueID, cmd.OriginalName, storedName, cmd.ContentType, size)
	if err != nil {
		_ = uc.blobs.Remove(storedName)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		_ = uc.blobs.Remove(storedName)
		uc.logger.Errorw("failed to save attachment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added",
		"issue_id", cmd.IssueID, "attachment_id", attachment.ID(), "size", size)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
