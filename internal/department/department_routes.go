package department

import (
	"github.com/sampita/companytree/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, logger *zap.Logger) {
	departments := r.Group("/departments")

	// ContextLogger after auth so the scoped logger carries the account id
	departments.Use(middleware.AuthMiddleware(), middleware.ContextLogger(logger))

	{
		departments.GET("", h.GetAll)
		departments.POST("", middleware.RateLimitByAccount(1, 5), middleware.Idempotency(rdb), h.Create)
		departments.GET("/:id", h.GetById)
		departments.PUT("/:id", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}
