package http

import (
	"github.com/gin-gonic/gin"

	"testertalk/internal/interfaces/http/middleware"
	"testertalk/internal/interfaces/http/routes"
	"testertalk/internal/shared/constants"
)

// buildEngine assembles the gin engine: global middleware first, then every
// route group.
func (c *Container) buildEngine() *gin.Engine {
	switch c.cfg.Server.Mode {
	case constants.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case constants.EnvTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginRateLimit: c.authRateLimit,
	})

	routes.SetupIssueRoutes(engine, &routes.IssueRouteConfig{
		IssueHandler:   c.issueHandler,
		AuthMiddleware: c.authMiddleware,
		VoteRateLimit:  c.voteRateLimit,
	})

	routes.SetupMetaRoutes(engine, &routes.MetaRouteConfig{
		MetaHandler: c.metaHandler,
	})

	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:   c.adminHandler,
		AuthMiddleware: c.authMiddleware,
	})

	return engine
}
