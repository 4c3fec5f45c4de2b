package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// GetShipperMe 拉取货主已填资料和续填位置
// GET /api/onboarding/shipper/me
func GetShipperMe(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.Shipper().Me(ctx, user)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitShipperBusiness business 步骤
// POST /api/onboarding/shipper/business
func SubmitShipperBusiness(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.ShipperBusinessRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Shipper().SubmitStep(ctx, user, "business", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitShipperCargo cargo 步骤
// POST /api/onboarding/shipper/cargo
func SubmitShipperCargo(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.ShipperCargoRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Shipper().SubmitStep(ctx, user, "cargo", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitShipperConsents consents 步骤，三项同意缺一不可
// POST /api/onboarding/shipper/consents
func SubmitShipperConsents(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.ShipperConsentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Shipper().SubmitStep(ctx, user, "consents", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitShipperDocuments documents 步骤，达到阈值后解锁平台
// POST /api/onboarding/shipper/documents
func SubmitShipperDocuments(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.ShipperDocumentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Shipper().SubmitStep(ctx, user, "documents", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
