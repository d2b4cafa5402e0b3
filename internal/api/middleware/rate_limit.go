package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"hr-hierarchy/pkg/errors"
	"hr-hierarchy/pkg/utils"
)

// RateLimitMiddleware 按客户端IP限流，rate 格式如 100-M（每分钟100次）
func RateLimitMiddleware(rate string) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("解析限流配置失败: %w", err)
	}

	instance := limiter.New(memory.NewStore(), r)
	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			utils.Error(c, errors.ErrTooManyRequests)
			c.Abort()
		}),
	), nil
}
