package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "testertalk/internal/interfaces/http/handlers/admin"
	"testertalk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures destructive maintenance and bucket-reviewer
// administration. Every route requires an admin token.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/issues/bulk-delete", cfg.AdminHandler.BulkDeleteIssues)
		admin.GET("/issues/ids", cfg.AdminHandler.ListIssueTitles)
		admin.PUT("/issues/:id/edit", cfg.AdminHandler.EditIssue)
		admin.DELETE("/issues/:id/comments/:commentID", cfg.AdminHandler.DeleteComment)
		admin.DELETE("/issues/:id", cfg.AdminHandler.DeleteIssue)

		admin.GET("/bucket-reviewers", cfg.AdminHandler.ListBucketReviewers)
		admin.POST("/bucket-reviewers", cfg.AdminHandler.UpsertBucketReviewer)
		admin.DELETE("/bucket-reviewers/:id", cfg.AdminHandler.DeleteBucketReviewer)
	}
}
