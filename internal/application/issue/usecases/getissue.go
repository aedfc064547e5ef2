package usecases

import (
	"context"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/services/markdown"
)

type GetIssueQuery struct {
	IssueID uint

	// RenderMarkdown adds sanitized HTML renderings of the description and
	// comment bodies to the response.
	RenderMarkdown bool
}

type GetIssueUseCase struct {
	issueRepo      issue.IssueRepository
	commentRepo    issue.CommentRepository
	attachmentRepo issue.AttachmentRepository
	markdown       markdown.Service
	logger         logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	attachmentRepo issue.AttachmentRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:      issueRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		markdown:       markdownSvc,
		logger:         logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByIssueID(ctx, iss.ID())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByIssueID(ctx, iss.ID())
	if err != nil {
		return nil, err
	}

	stats := issue.CommentStats{Count: len(comments)}
	for _, c := range comments {
		if c.Verified() {
			stats.HasVerified = true
			break
		}
	}

	result := dto.ToIssueDTO(iss, stats)

	result.Comments = make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTO := dto.ToCommentDTO(c)
		if query.RenderMarkdown {
			if html, err := uc.markdown.ToHTMLSanitized(c.Content()); err == nil {
				commentDTO.ContentHTML = html
			}
		}
		result.Comments = append(result.Comments, commentDTO)
	}

	result.Attachments = make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result.Attachments = append(result.Attachments, dto.ToAttachmentDTO(a))
	}

	if query.RenderMarkdown {
		if html, err := uc.markdown.ToHTMLSanitized(iss.Description()); err == nil {
			result.DescriptionHTML = html
		}
	}

	return result, nil
}
