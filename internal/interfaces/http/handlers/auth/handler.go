package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"testertalk/internal/application/user/usecases"
	"testertalk/internal/shared/constants"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/utils"
)

// Handler serves account registration and session endpoints.
type Handler struct {
	register       usecases.RegisterExecutor
	login          usecases.LoginExecutor
	getCurrentUser usecases.GetCurrentUserExecutor
	logger         logger.Interface
}

func NewHandler(
	register usecases.RegisterExecutor,
	login usecases.LoginExecutor,
	getCurrentUser usecases.GetCurrentUserExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		register:       register,
		login:          login,
		getCurrentUser: getCurrentUser,
		logger:         logger,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.register.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout acknowledges the request. Tokens are stateless, so the client
// discards its copy; nothing is invalidated server side.
func (h *Handler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := userID.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	result, err := h.getCurrentUser.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", result)
}
