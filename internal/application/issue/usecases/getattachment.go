package usecases

import (
	"context"
	"io"

	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type GetAttachmentQuery struct {
	IssueID      uint
	AttachmentID uint
}

// AttachmentContent carries attachment bytes and download metadata.
// Callers own the reader and must close it.
type AttachmentContent struct {
	Reader       io.ReadSeekCloser
	OriginalName string
	ContentType  string
	Size         int64
}

type GetAttachmentUseCase struct {
	attachmentRepo issue.AttachmentRepository
	blobs          BlobStore
	logger         logger.Interface
}

func NewGetAttachmentUseCase(
	attachmentRepo issue.AttachmentRepository,
	blobs BlobStore,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentContent, error) {
	if query.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}
	if query.IssueID != 0 && attachment.IssueID() != query.IssueID {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	reader, err := uc.blobs.Open(attachment.StoredName())
	if err != nil {
		uc.logger.Errorw("failed to open attachment blob",
			"attachment_id", attachment.ID(), "stored_name", attachment.StoredName(), "error", err)
		return nil, errors.NewInternalError("attachment content unavailable", err.Error())
	}

	return &AttachmentContent{
		Reader:       reader,
		OriginalName: attachment.OriginalName(),
		ContentType:  attachment.ContentType(),
		Size:         attachment.Size(),
	}, nil
}
