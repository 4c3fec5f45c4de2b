package model

// ContainerStatus 集装箱风险状态枚举
type ContainerStatus string

const (
	ContainerStatusActive  ContainerStatus = "active"  // 正常在途
	ContainerStatusWarning ContainerStatus = "warning" // 风险观察
	ContainerStatusDanger  ContainerStatus = "danger"  // 高危
)

// Container 集装箱 / 船舶当前位置与风险画像
type Container struct {
	BaseModel
	Code           string          `gorm:"uniqueIndex;type:varchar(16);not null" json:"code"`
	Status         ContainerStatus `gorm:"type:varchar(16);not null;default:'active';index:idx_containers_status" json:"status"`
	Lat            float64         `gorm:"not null" json:"lat"`
	Lng            float64         `gorm:"not null" json:"lng"`
	Location       string          `gorm:"type:varchar(128);not null;default:''" json:"location"`
	Company        string          `gorm:"type:varchar(128);not null;default:''" json:"company"`
	IMO            string          `gorm:"type:varchar(16);not null;default:''" json:"imo"`
	OfficialNum    string          `gorm:"type:varchar(16);not null;default:''" json:"official_num"`
	MMSI           string          `gorm:"type:varchar(16);not null;default:''" json:"mmsi"`
	PortOfRegistry string          `gorm:"type:varchar(128);not null;default:''" json:"port_of_registry"`
	RiskScore      int             `gorm:"not null;default:0" json:"risk_score"`
}

func (Container) TableName() string {
	return "containers"
}
