package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	issueusecases "testertalk/internal/application/issue/usecases"
	revusecases "testertalk/internal/application/reviewer/usecases"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/utils"
)

// Handler groups the admin-only operations: destructive issue maintenance
// and bucket-reviewer administration.
type Handler struct {
	updateIssue     issueusecases.UpdateIssueExecutor
	deleteIssue     issueusecases.DeleteIssueExecutor
	bulkDelete      issueusecases.BulkDeleteIssuesExecutor
	listTitles      issueusecases.ListIssueTitlesExecutor
	deleteComment   issueusecases.DeleteCommentExecutor
	upsertReviewer  revusecases.UpsertBucketReviewerExecutor
	listReviewers   revusecases.ListBucketReviewersExecutor
	deleteReviewer  revusecases.DeleteBucketReviewerExecutor
	logger          logger.Interface
}

type HandlerConfig struct {
	UpdateIssue    issueusecases.UpdateIssueExecutor
	DeleteIssue    issueusecases.DeleteIssueExecutor
	BulkDelete     issueusecases.BulkDeleteIssuesExecutor
	ListTitles     issueusecases.ListIssueTitlesExecutor
	DeleteComment  issueusecases.DeleteCommentExecutor
	UpsertReviewer revusecases.UpsertBucketReviewerExecutor
	ListReviewers  revusecases.ListBucketReviewersExecutor
	DeleteReviewer revusecases.DeleteBucketReviewerExecutor
	Logger         logger.Interface
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		updateIssue:    cfg.UpdateIssue,
		deleteIssue:    cfg.DeleteIssue,
		bulkDelete:     cfg.BulkDelete,
		listTitles:     cfg.ListTitles,
		deleteComment:  cfg.DeleteComment,
		upsertReviewer: cfg.UpsertReviewer,
		listReviewers:  cfg.ListReviewers,
		deleteReviewer: cfg.DeleteReviewer,
		logger:         cfg.Logger,
	}
}

// DeleteIssue removes an issue together with its paths, comments, tags and
// stored attachments.
func (h *Handler) DeleteIssue(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteIssue.Execute(c.Request.Context(), issueusecases.DeleteIssueCommand{IssueID: issueID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue deleted successfully", nil)
}

type BulkDeleteRequest struct {
	IssueIDs []uint `json:"issue_ids" binding:"required,min=1"`
}

func (h *Handler) BulkDeleteIssues(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.bulkDelete.Execute(c.Request.Context(), issueusecases.BulkDeleteIssuesCommand{IssueIDs: req.IssueIDs})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issues deleted successfully", gin.H{
		"deleted": result.Deleted,
	})
}

// ListIssueTitles resolves ids to titles so the bulk-delete confirmation can
// show what is about to go. IDs arrive comma separated: ?ids=1,2,3.
func (h *Handler) ListIssueTitles(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	titles, err := h.listTitles.Execute(c.Request.Context(), issueusecases.ListIssueTitlesQuery{IssueIDs: ids})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issues retrieved successfully", titles)
}

// EditIssue is the admin variant of issue update. It shares the partial
// update semantics of the user-facing endpoint, including status changes.
func (h *Handler) EditIssue(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req EditIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.updateIssue.Execute(c.Request.Context(), req.ToCommand(issueID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", result)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	commentID, err := utils.ParseIDParam(c, "commentID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteComment.Execute(c.Request.Context(), issueusecases.DeleteCommentCommand{
		IssueID:   issueID,
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}

type UpsertBucketReviewerRequest struct {
	BucketName   string `json:"bucket_name" binding:"required,max=100"`
	ReviewerName string `json:"reviewer_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
}

func (h *Handler) UpsertBucketReviewer(c *gin.Context) {
	var req UpsertBucketReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.upsertReviewer.Execute(c.Request.Context(), revusecases.UpsertBucketReviewerCommand{
		BucketName:   req.BucketName,
		ReviewerName: req.ReviewerName,
		Email:        req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bucket reviewer saved", result)
}

func (h *Handler) ListBucketReviewers(c *gin.Context) {
	reviewers, err := h.listReviewers.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bucket reviewers retrieved successfully", reviewers)
}

func (h *Handler) DeleteBucketReviewer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteReviewer.Execute(c.Request.Context(), revusecases.DeleteBucketReviewerCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bucket reviewer deleted", nil)
}

func parseIDList(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errMissingIDs
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			return nil, errInvalidIDs
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, errMissingIDs
	}
	return ids, nil
}
