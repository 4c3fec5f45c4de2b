package middleware

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"ContainerIQ/internal/onboarding"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/response"
)

// OnboardingGuardMiddleware 保护业务路由：每次请求都重新加载用户并复核引导状态，
// 避免基于过期快照放行。未完成引导时返回 403 并附带前端应跳转的路径。
func OnboardingGuardMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		uid, exists := GetUserID(ctx, c)
		if !exists {
			c.Abort()
			response.Error(ctx, c, errors.Unauthorized)
			return
		}

		publicID, err := strconv.ParseInt(uid, 10, 64)
		if err != nil {
			c.Abort()
			response.Error(ctx, c, errors.InvalidUserID)
			return
		}

		user, err := service.GetUserByPublicID(ctx, publicID)
		if err != nil {
			logger.Logger.Warn("Guard failed to load user",
				zap.String("public_id", uid),
				zap.Error(err))
			c.Abort()
			response.Error(ctx, c, err)
			return
		}

		access := onboarding.ResolveAccess(onboarding.Session{
			Token: GetAccessToken(c),
			User:  user,
		})
		if !access.Allowed {
			c.Abort()
			response.ErrorWithDetails(ctx, c, errors.OnboardingIncomplete, map[string]interface{}{
				"redirect": access.RedirectPath,
			})
			return
		}

		c.Next(ctx)
	}
}
