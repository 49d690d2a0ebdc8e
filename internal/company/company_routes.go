package company

import (
	"github.com/sampita/companytree/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, logger *zap.Logger) {
	companies := r.Group("/companies")

	// ContextLogger after auth so the scoped logger carries the account id
	companies.Use(middleware.AuthMiddleware(), middleware.ContextLogger(logger))

	{
		companies.GET("", h.GetAll)
		companies.POST("", middleware.RateLimitByAccount(1, 5), middleware.Idempotency(rdb), h.Create)
		companies.GET("/:id", h.GetById)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}
