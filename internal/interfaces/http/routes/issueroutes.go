package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "testertalk/internal/interfaces/http/handlers/issue"
	"testertalk/internal/interfaces/http/middleware"
)

// IssueRouteConfig holds dependencies for the issue lifecycle routes.
type IssueRouteConfig struct {
	IssueHandler   *issuehandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware

	// VoteRateLimit throttles vote spamming. Nil disables it.
	VoteRateLimit gin.HandlerFunc
}

// SetupIssueRoutes configures issue, comment and attachment routes. Reads
// are public; everything that writes requires authentication.
func SetupIssueRoutes(engine *gin.Engine, cfg *IssueRouteConfig) {
	issues := engine.Group("/api/issues")
	{
		// Register specific paths before parameterized ones to avoid
		// route conflicts.
		issues.GET("", cfg.IssueHandler.List)
		issues.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.Create)

		issues.POST("/:id/move-to-ccr", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.MoveToCCR)
		issues.POST("/:id/upvote", voteChain(cfg, cfg.IssueHandler.Upvote)...)
		issues.POST("/:id/downvote", voteChain(cfg, cfg.IssueHandler.Downvote)...)

		issues.GET("/:id/comments", cfg.IssueHandler.ListComments)
		issues.POST("/:id/comments", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.AddComment)
		issues.POST("/:id/comments/:commentID/verify", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.VerifySolution)
		issues.POST("/:id/comments/:commentID/upvote", voteChain(cfg, cfg.IssueHandler.UpvoteComment)...)
		issues.POST("/:id/comments/:commentID/downvote", voteChain(cfg, cfg.IssueHandler.DownvoteComment)...)

		issues.POST("/:id/paths", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.AddPath)
		issues.DELETE("/:id/paths/:pathID", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.RemovePath)

		issues.POST("/:id/attachments", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.UploadAttachment)
		issues.GET("/:id/attachments/:attachmentID", cfg.IssueHandler.DownloadAttachment)

		issues.GET("/:id", cfg.IssueHandler.Get)
		issues.PUT("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.IssueHandler.Update)
	}

	engine.GET("/api/search", cfg.IssueHandler.Search)
	engine.POST("/api/search", cfg.IssueHandler.SearchPost)
}

func voteChain(cfg *IssueRouteConfig, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{cfg.AuthMiddleware.RequireAuth()}
	if cfg.VoteRateLimit != nil {
		chain = append(chain, cfg.VoteRateLimit)
	}
	return append(chain, handler)
}
