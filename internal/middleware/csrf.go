package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/csrf"
	"github.com/hertz-contrib/sessions"
	"github.com/hertz-contrib/sessions/cookie"

	"ContainerIQ/config"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/response"
)

// SessionMiddleware 基于 cookie 的会话，csrf 中间件依赖它保存 token
func SessionMiddleware() app.HandlerFunc {
	store := cookie.NewStore([]byte(config.Cfg.SessionSecret))
	return sessions.New("ciq-session", store)
}

// CSRFMiddleware 必须挂在 SessionMiddleware 之后
func CSRFMiddleware() app.HandlerFunc {
	return csrf.New(
		csrf.WithSecret(config.Cfg.CSRFSecret),
		csrf.WithKeyLookUp("header:X-CSRF-Token"),
		csrf.WithErrorFunc(func(ctx context.Context, c *app.RequestContext) {
			response.Error(ctx, c, errors.Unauthorized.WithMessage("CSRF token invalid"))
			c.Abort()
		}),
	)
}
