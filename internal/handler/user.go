package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/middleware"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// GetMe 返回当前用户快照和前端路由裁决
// GET /api/users/me
func GetMe(ctx context.Context, c *app.RequestContext) {
	publicID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	result, err := service.User().Me(ctx, publicID, middleware.GetAccessToken(c))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitProfile 注册向导第二步：个人资料
// PUT /api/users/me/profile
func SubmitProfile(ctx context.Context, c *app.RequestContext) {
	publicID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.User().SubmitProfile(ctx, publicID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitOrganization 注册向导第三步：企业信息与合规同意
// PUT /api/users/me/organization
func SubmitOrganization(ctx context.Context, c *app.RequestContext) {
	publicID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.OrganizationRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.User().SubmitOrganization(ctx, publicID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
