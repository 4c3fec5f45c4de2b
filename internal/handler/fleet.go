package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// GetFleetMe 拉取车队运营方已填资料和续填位置
// GET /api/onboarding/fleet/me
func GetFleetMe(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.Fleet().Me(ctx, user)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitFleetProfile profile 步骤
// POST /api/onboarding/fleet/profile
func SubmitFleetProfile(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.FleetProfileRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Fleet().SubmitStep(ctx, user, "profile", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitFleetCompliance compliance 步骤
// POST /api/onboarding/fleet/compliance
func SubmitFleetCompliance(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.FleetComplianceRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Fleet().SubmitStep(ctx, user, "compliance", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitFleetDocuments documents 步骤，达到阈值后解锁平台
// POST /api/onboarding/fleet/documents
func SubmitFleetDocuments(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.FleetDocumentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Fleet().SubmitStep(ctx, user, "documents", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
