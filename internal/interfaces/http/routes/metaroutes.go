package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	metahandlers "testertalk/internal/interfaces/http/handlers/meta"
)

// MetaRouteConfig holds dependencies for the filter vocabulary routes.
type MetaRouteConfig struct {
	MetaHandler *metahandlers.Handler
}

// SetupMetaRoutes configures the public option and health endpoints.
func SetupMetaRoutes(engine *gin.Engine, cfg *MetaRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/tags", cfg.MetaHandler.Tags)
		api.GET("/releases", cfg.MetaHandler.Releases)
		api.GET("/platforms", cfg.MetaHandler.Platforms)
		api.GET("/builds", cfg.MetaHandler.Builds)
		api.GET("/targets/:release", cfg.MetaHandler.Targets)
		api.GET("/options", cfg.MetaHandler.Options)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
