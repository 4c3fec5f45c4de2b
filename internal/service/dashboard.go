package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"ContainerIQ/internal/cache"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
)

var (
	dashboardService *DashboardService
	dashboardOnce    sync.Once
)

func Dashboard() *DashboardService {
	dashboardOnce.Do(func() {
		dashboardService = &DashboardService{}
	})
	return dashboardService
}

type DashboardService struct{}

// KPIs 聚合集装箱状态，结果走保护缓存，缓存故障时直接回源
func (s *DashboardService) KPIs(ctx context.Context) (*dto.DashboardKPIData, error) {
	if snapshot, err := cache.GetKPISnapshot(ctx); err == nil && snapshot != nil {
		return &dto.DashboardKPIData{
			TotalVessels: snapshot.TotalVessels,
			ActiveSafe:   snapshot.ActiveSafe,
			Watchlist:    snapshot.Watchlist,
			Critical:     snapshot.Critical,
		}, nil
	}

	db := database.DB().WithContext(ctx)

	var total, active, warning, danger int64
	if err := db.Model(&model.Container{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count containers: %w", err)
	}
	if err := db.Model(&model.Container{}).Where("status = ?", model.ContainerStatusActive).Count(&active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active containers: %w", err)
	}
	if err := db.Model(&model.Container{}).Where("status = ?", model.ContainerStatusWarning).Count(&warning).Error; err != nil {
		return nil, fmt.Errorf("failed to count watchlist containers: %w", err)
	}
	if err := db.Model(&model.Container{}).Where("status = ?", model.ContainerStatusDanger).Count(&danger).Error; err != nil {
		return nil, fmt.Errorf("failed to count critical containers: %w", err)
	}

	snapshot := &cache.KPISnapshot{
		TotalVessels: total,
		ActiveSafe:   active,
		Watchlist:    warning,
		Critical:     danger,
		UpdatedAt:    time.Now().Unix(),
	}

	if err := cache.SetKPISnapshot(ctx, snapshot); err != nil {
		logger.Logger.Warn("Failed to cache KPI snapshot", zap.Error(err))
	}

	return &dto.DashboardKPIData{
		TotalVessels: total,
		ActiveSafe:   active,
		Watchlist:    warning,
		Critical:     danger,
	}, nil
}

// Containers 返回地图用的集装箱列表
func (s *DashboardService) Containers(ctx context.Context) (*dto.ContainerListResponse, error) {
	db := database.DB().WithContext(ctx)

	var containers []model.Container
	if err := db.Order("code").Find(&containers).Error; err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	out := make([]dto.ContainerData, 0, len(containers))
	for _, c := range containers {
		out = append(out, dto.ContainerData{
			ID:             c.Code,
			Position:       []float64{c.Lat, c.Lng},
			Status:         string(c.Status),
			Location:       c.Location,
			Company:        c.Company,
			IMO:            c.IMO,
			OfficialNum:    c.OfficialNum,
			MMSI:           c.MMSI,
			PortOfRegistry: c.PortOfRegistry,
			RiskScore:      c.RiskScore,
		})
	}

	return &dto.ContainerListResponse{Containers: out}, nil
}
