package dto

// ========== 仪表盘相关 DTO ==========

// DashboardKPIData KPI 卡片数据，由集装箱状态聚合而来
type DashboardKPIData struct {
	TotalVessels int64 `json:"totalVessels"`
	ActiveSafe   int64 `json:"activeSafe"`
	Watchlist    int64 `json:"watchlist"`
	Critical     int64 `json:"critical"`
}

// ContainerData 地图上的单个集装箱
type ContainerData struct {
	ID             string    `json:"id"`
	Position       []float64 `json:"position"` // [lat, lng]
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	Company        string    `json:"company"`
	IMO            string    `json:"imo,omitempty"`
	OfficialNum    string    `json:"officialNum,omitempty"`
	MMSI           string    `json:"mmsi,omitempty"`
	PortOfRegistry string    `json:"portOfRegistry,omitempty"`
	RiskScore      int       `json:"riskScore"`
}

// ContainerListResponse GET /dashboard/containers 响应
type ContainerListResponse struct {
	Containers []ContainerData `json:"containers"`
}
