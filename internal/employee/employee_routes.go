package employee

import (
	"github.com/sampita/companytree/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, logger *zap.Logger) {
	employees := r.Group("/employees")

	// ContextLogger after auth so the scoped logger carries the account id
	employees.Use(middleware.AuthMiddleware(), middleware.ContextLogger(logger))

	{
		employees.GET("", h.GetAll)
		// directory must register before :id so gin does not treat it as an id
		employees.GET("/directory", h.Directory)
		employees.POST("", middleware.RateLimitByAccount(1, 5), middleware.Idempotency(rdb), h.Create)
		employees.GET("/:id", h.GetById)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
