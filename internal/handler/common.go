package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/middleware"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/response"
)

// currentUserID 从认证上下文取 public_id，取不到时已写好错误响应
func currentUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	uid, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return 0, false
	}

	publicID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.InvalidUserID)
		return 0, false
	}

	return publicID, true
}

// currentUser 加载当前登录用户的最新一行，取不到时已写好错误响应
func currentUser(ctx context.Context, c *app.RequestContext) (*model.User, bool) {
	publicID, ok := currentUserID(ctx, c)
	if !ok {
		return nil, false
	}

	user, err := service.GetUserByPublicID(ctx, publicID)
	if err != nil {
		response.Error(ctx, c, err)
		return nil, false
	}

	return user, true
}
