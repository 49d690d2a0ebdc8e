package middleware

import (
	"github.com/sampita/companytree/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger decorates the request context with a scoped logger plus the
// request and account ids so services can log without knowing about gin.
// It reuses the id minted by RequestID and runs after AuthMiddleware on
// authenticated groups so the account id is populated.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = uuid.New().String()
		}

		accountID := c.GetString("account_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("account_id", accountID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithAccountID(ctx, accountID)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
