package middleware

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
)

const defaultRequestTimeout = 30 * time.Second

// TimeoutMiddleware 给请求挂上截止时间，下游的 DB / Redis / MQ 调用
// 都经由这个 ctx，请求超时后统一被取消
func TimeoutMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		defer cancel()

		c.Next(tctx)
	}
}
