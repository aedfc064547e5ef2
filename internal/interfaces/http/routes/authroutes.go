package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "testertalk/internal/interfaces/http/handlers/auth"
	"testertalk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware

	// LoginRateLimit throttles credential guessing. Nil disables it.
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		if cfg.LoginRateLimit != nil {
			auth.POST("/register", cfg.LoginRateLimit, cfg.AuthHandler.Register)
			auth.POST("/login", cfg.LoginRateLimit, cfg.AuthHandler.Login)
		} else {
			auth.POST("/register", cfg.AuthHandler.Register)
			auth.POST("/login", cfg.AuthHandler.Login)
		}

		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
