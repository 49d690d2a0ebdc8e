package auth

import (
	"github.com/sampita/companytree/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(0.1, 3), h.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(0.2, 5), h.Login)
		authGroup.POST("/refresh", h.RefreshToken)
		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ContextLogger(logger), h.Me)
	}

	// aliases kept for clients of the original API surface
	r.POST("/register", middleware.RateLimitByIP(0.1, 3), h.Register)
	r.POST("/login", middleware.RateLimitByIP(0.2, 5), h.Login)
	r.POST("/api-token-auth", middleware.RateLimitByIP(0.2, 5), h.Login)
}
