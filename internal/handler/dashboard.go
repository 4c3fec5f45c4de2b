package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// GetDashboardKPIs 集装箱风险看板的四个汇总指标
// GET /api/dashboard/kpis
func GetDashboardKPIs(ctx context.Context, c *app.RequestContext) {
	result, err := service.Dashboard().KPIs(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListContainers 地图用的集装箱列表，按编号排序
// GET /api/dashboard/containers
func ListContainers(ctx context.Context, c *app.RequestContext) {
	result, err := service.Dashboard().Containers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
