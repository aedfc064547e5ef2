package meta

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"testertalk/internal/application/issue/usecases"
	"testertalk/internal/domain/issue"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/utils"
)

// Handler serves the filter vocabulary the issue list and report form use.
type Handler struct {
	listOptions usecases.ListOptionsExecutor
	logger      logger.Interface
}

func NewHandler(listOptions usecases.ListOptionsExecutor, logger logger.Interface) *Handler {
	return &Handler{
		listOptions: listOptions,
		logger:      logger,
	}
}

func (h *Handler) Tags(c *gin.Context) {
	options, err := h.options(c)
	if err != nil {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tags retrieved successfully", options.Tags)
}

func (h *Handler) Releases(c *gin.Context) {
	options, err := h.options(c)
	if err != nil {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Releases retrieved successfully", options.Releases)
}

func (h *Handler) Platforms(c *gin.Context) {
	options, err := h.options(c)
	if err != nil {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Platforms retrieved successfully", options.Platforms)
}

func (h *Handler) Builds(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Builds retrieved successfully", issue.BuildOptions())
}

// Targets returns the known build targets for one release code. Unknown
// releases get an empty list rather than an error.
func (h *Handler) Targets(c *gin.Context) {
	release := c.Param("release")
	utils.SuccessResponse(c, http.StatusOK, "Targets retrieved successfully", issue.TargetOptions(release))
}

// Options returns the full filter vocabulary in one response.
func (h *Handler) Options(c *gin.Context) {
	options, err := h.options(c)
	if err != nil {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Options retrieved successfully", options)
}

func (h *Handler) options(c *gin.Context) (*usecases.OptionsResult, error) {
	options, err := h.listOptions.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, err
	}
	return options, nil
}
