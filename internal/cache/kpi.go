package cache

import (
	"context"
)

// 缓存 dashboard KPI 聚合，避免每次刷新都扫 containers 表
// 用户完成计数不在此列，见 protected.go 的说明

// KPISnapshot 仪表盘 KPI 缓存结构
type KPISnapshot struct {
	TotalVessels int64 `json:"total_vessels"`
	ActiveSafe   int64 `json:"active_safe"`
	Watchlist    int64 `json:"watchlist"`
	Critical     int64 `json:"critical"`

	UpdatedAt int64 `json:"updated_at"` // 这里本身就是一个版本号
}

const kpiKey = "summary"

func SetKPISnapshot(ctx context.Context, snapshot *KPISnapshot) error {
	return KPIBreaker.Call(ctx, func() error {
		return DashboardKPIProtectedCache.Set(ctx, kpiKey, snapshot)
	})
}

// GetKPISnapshot 获取 KPI 缓存，未命中或熔断时返回 nil，由调用方回源数据库
func GetKPISnapshot(ctx context.Context) (*KPISnapshot, error) {
	var snapshot KPISnapshot
	var hit bool

	err := KPIBreaker.Call(ctx, func() error {
		var innerErr error
		hit, innerErr = DashboardKPIProtectedCache.Get(ctx, kpiKey, &snapshot)
		return innerErr
	})
	if err != nil {
		return nil, err
	}

	if !hit {
		return nil, nil
	}
	return &snapshot, nil
}
