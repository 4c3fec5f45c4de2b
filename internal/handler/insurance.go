package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// GetInsuranceMe 拉取保险公司已填资料和续填位置
// GET /api/onboarding/insurance/me
func GetInsuranceMe(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.Insurance().Me(ctx, user)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitInsuranceLicense license 步骤
// POST /api/onboarding/insurance/license
func SubmitInsuranceLicense(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.InsuranceLicenseRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Insurance().SubmitStep(ctx, user, "license", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitInsuranceCoverage coverage 步骤
// POST /api/onboarding/insurance/coverage
func SubmitInsuranceCoverage(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.InsuranceCoverageRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Insurance().SubmitStep(ctx, user, "coverage", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitInsurancePolicy policy 步骤
// POST /api/onboarding/insurance/policy
func SubmitInsurancePolicy(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.InsurancePolicyRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Insurance().SubmitStep(ctx, user, "policy", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitInsuranceClaims claims 步骤，达到阈值后解锁平台
// POST /api/onboarding/insurance/claims
func SubmitInsuranceClaims(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.InsuranceClaimsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Insurance().SubmitStep(ctx, user, "claims", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitInsuranceDocuments documents 步骤，阈值后的补充材料，不再推进计数器
// POST /api/onboarding/insurance/documents
func SubmitInsuranceDocuments(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.InsuranceDocumentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Insurance().SubmitStep(ctx, user, "documents", req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
