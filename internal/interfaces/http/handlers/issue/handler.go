package issue

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"testertalk/internal/application/issue/usecases"
	"testertalk/internal/shared/constants"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/utils"
)

// Handler exposes the issue lifecycle over HTTP.
type Handler struct {
	createIssue    usecases.CreateIssueExecutor
	updateIssue    usecases.UpdateIssueExecutor
	getIssue       usecases.GetIssueExecutor
	listIssues     usecases.ListIssuesExecutor
	searchIssues   usecases.SearchIssuesExecutor
	moveToCCR      usecases.MoveToCCRExecutor
	voteIssue      usecases.VoteIssueExecutor
	addPath        usecases.AddTestcasePathExecutor
	removePath     usecases.RemoveTestcasePathExecutor
	addComment     usecases.AddCommentExecutor
	listComments   usecases.ListCommentsExecutor
	verifySolution usecases.VerifySolutionExecutor
	voteComment    usecases.VoteCommentExecutor
	addAttachment  usecases.AddAttachmentExecutor
	getAttachment  usecases.GetAttachmentExecutor
	logger         logger.Interface
}

type HandlerConfig struct {
	CreateIssue    usecases.CreateIssueExecutor
	UpdateIssue    usecases.UpdateIssueExecutor
	GetIssue       usecases.GetIssueExecutor
	ListIssues     usecases.ListIssuesExecutor
	SearchIssues   usecases.SearchIssuesExecutor
	MoveToCCR      usecases.MoveToCCRExecutor
	VoteIssue      usecases.VoteIssueExecutor
	AddPath        usecases.AddTestcasePathExecutor
	RemovePath     usecases.RemoveTestcasePathExecutor
	AddComment     usecases.AddCommentExecutor
	ListComments   usecases.ListCommentsExecutor
	VerifySolution usecases.VerifySolutionExecutor
	VoteComment    usecases.VoteCommentExecutor
	AddAttachment  usecases.AddAttachmentExecutor
	GetAttachment  usecases.GetAttachmentExecutor
	Logger         logger.Interface
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		createIssue:    cfg.CreateIssue,
		updateIssue:    cfg.UpdateIssue,
		getIssue:       cfg.GetIssue,
		listIssues:     cfg.ListIssues,
		searchIssues:   cfg.SearchIssues,
		moveToCCR:      cfg.MoveToCCR,
		voteIssue:      cfg.VoteIssue,
		addPath:        cfg.AddPath,
		removePath:     cfg.RemovePath,
		addComment:     cfg.AddComment,
		listComments:   cfg.ListComments,
		verifySolution: cfg.VerifySolution,
		voteComment:    cfg.VoteComment,
		addAttachment:  cfg.AddAttachment,
		getAttachment:  cfg.GetAttachment,
		logger:         cfg.Logger,
	}
}

// Create reports a new failure. Accepts JSON or multipart form; files
// uploaded alongside a multipart request become attachments on the new issue.
func (h *Handler) Create(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.createIssue.Execute(c.Request.Context(), req.ToCommand(currentUsername(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.storeUploadedFiles(c, result.IssueID)

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// Get returns one issue with its paths, comments and attachments.
// Pass render=true to include sanitized HTML for markdown bodies.
func (h *Handler) Get(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	query := usecases.GetIssueQuery{
		IssueID:        issueID,
		RenderMarkdown: c.Query("render") == "true",
	}

	result, err := h.getIssue.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue retrieved successfully", result)
}

// List returns a filtered page of issues.
func (h *Handler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := parseListIssuesQuery(c, pagination.Page, pagination.PageSize)

	result, err := h.listIssues.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, result.PageSize)
}

// Update applies a partial edit to an issue.
func (h *Handler) Update(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateIssueRequest
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

// MoveToCCR escalates an issue into the external change-request flow.
func (h *Handler) MoveToCCR(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req MoveToCCRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.moveToCCR.Execute(c.Request.Context(), usecases.MoveToCCRCommand{
		IssueID:   issueID,
		CCRNumber: req.CCRNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue moved to CCR", result)
}

func (h *Handler) Upvote(c *gin.Context) {
	h.vote(c, true)
}

func (h *Handler) Downvote(c *gin.Context) {
	h.vote(c, false)
}

func (h *Handler) vote(c *gin.Context, up bool) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.voteIssue.Execute(c.Request.Context(), usecases.VoteIssueCommand{
		IssueID: issueID,
		Up:      up,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote recorded", result)
}

// AddPath attaches another failing testcase path to an issue.
func (h *Handler) AddPath(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req AddPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.addPath.Execute(c.Request.Context(), usecases.AddTestcasePathCommand{
		IssueID: issueID,
		Path:    req.Path,
		AddedBy: currentUsername(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Testcase path added")
}

func (h *Handler) RemovePath(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pathID, err := utils.ParseIDParam(c, "pathID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.removePath.Execute(c.Request.Context(), usecases.RemoveTestcasePathCommand{
		IssueID: issueID,
		PathID:  pathID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Testcase path removed", nil)
}

// Search runs a keyword search from query-string parameters.
func (h *Handler) Search(c *gin.Context) {
	req := parseSearchRequest(c)
	h.executeSearch(c, req)
}

// SearchPost runs a keyword search from a JSON body, for filter sets too
// unwieldy for a query string.
func (h *Handler) SearchPost(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	h.executeSearch(c, req)
}

func (h *Handler) executeSearch(c *gin.Context, req SearchRequest) {
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.searchIssues.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Search completed", gin.H{
		"results": results,
		"count":   len(results),
	})
}

// AddComment posts a comment on an issue. Multipart uploads sent with the
// comment are stored as issue attachments.
func (h *Handler) AddComment(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.addComment.Execute(c.Request.Context(), usecases.AddCommentCommand{
		IssueID:    issueID,
		Content:    req.Content,
		AuthorName: currentUsername(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.storeUploadedFiles(c, issueID)

	utils.CreatedResponse(c, result, "Comment added successfully")
}

func (h *Handler) ListComments(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := h.listComments.Execute(c.Request.Context(), usecases.ListCommentsQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comments retrieved successfully", comments)
}

// VerifySolution marks a comment as the accepted fix and resolves the issue.
func (h *Handler) VerifySolution(c *gin.Context) {
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

	result, err := h.verifySolution.Execute(c.Request.Context(), usecases.VerifySolutionCommand{
		IssueID:   issueID,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution verified", result)
}

func (h *Handler) UpvoteComment(c *gin.Context) {
	h.voteOnComment(c, true)
}

func (h *Handler) DownvoteComment(c *gin.Context) {
	h.voteOnComment(c, false)
}

func (h *Handler) voteOnComment(c *gin.Context, up bool) {
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

	result, err := h.voteComment.Execute(c.Request.Context(), usecases.VoteCommentCommand{
		IssueID:   issueID,
		CommentID: commentID,
		Up:        up,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote recorded", result)
}

// UploadAttachment stores a single uploaded file against an issue.
func (h *Handler) UploadAttachment(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.addAttachment.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		IssueID:      issueID,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded")
}

// DownloadAttachment streams attachment content. Images render inline so
// browsers can embed them; everything else downloads.
func (h *Handler) DownloadAttachment(c *gin.Context) {
	issueID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	attachmentID, err := utils.ParseIDParam(c, "attachmentID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.getAttachment.Execute(c.Request.Context(), usecases.GetAttachmentQuery{
		IssueID:      issueID,
		AttachmentID: attachmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer content.Reader.Close()

	disposition := "attachment"
	if strings.HasPrefix(content.ContentType, "image/") {
		disposition = "inline"
	}

	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, content.OriginalName))
	c.DataFromReader(http.StatusOK, content.Size, content.ContentType, content.Reader, nil)
}

// storeUploadedFiles saves any multipart files on the request as attachments.
// Failures are logged and skipped so the primary operation still succeeds.
func (h *Handler) storeUploadedFiles(c *gin.Context, issueID uint) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return
	}

	for _, fileHeader := range form.File["files"] {
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Warnw("skipping unreadable upload", "issue_id", issueID, "filename", fileHeader.Filename, "error", err)
			continue
		}

		_, err = h.addAttachment.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
			IssueID:      issueID,
			OriginalName: fileHeader.Filename,
			ContentType:  fileHeader.Header.Get("Content-Type"),
			Content:      file,
		})
		file.Close()
		if err != nil {
			h.logger.Warnw("failed to store upload", "issue_id", issueID, "filename", fileHeader.Filename, "error", err)
		}
	}
}

// currentUsername reads the authenticated username set by the auth
// middleware, falling back to the system identity on anonymous requests.
func currentUsername(c *gin.Context) string {
	if username, exists := c.Get(constants.ContextKeyUsername); exists {
		if name, ok := username.(string); ok && name != "" {
			return name
		}
	}
	return constants.SystemUser
}
