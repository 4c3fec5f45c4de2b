package model

// ShipperProfile 货主引导资料
type ShipperProfile struct {
	BaseModel
	UserID int64 `gorm:"uniqueIndex;not null" json:"user_id"`

	// business step
	BusinessType             string   `gorm:"type:varchar(64);not null;default:''" json:"business_type"`
	ProductCategories        []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"product_categories"`
	HSCode                   string   `gorm:"type:varchar(32);not null;default:''" json:"hs_code"`
	AverageMonthlyContainers string   `gorm:"type:varchar(32);not null;default:''" json:"average_monthly_containers"`
	PrimaryPorts             []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"primary_ports"`

	// cargo step
	CargoInsuranceProvider string `gorm:"type:varchar(128);not null;default:''" json:"cargo_insurance_provider"`
	PreferredInsuranceMode string `gorm:"type:varchar(32);not null;default:''" json:"preferred_insurance_mode"`
	UseContainerIQInsurers bool   `gorm:"not null;default:false" json:"use_containeriq_insurers"`

	// consents step
	ConsentContainerTracking bool `gorm:"not null;default:false" json:"consent_container_tracking"`
	ConsentCargoRiskScoring  bool `gorm:"not null;default:false" json:"consent_cargo_risk_scoring"`
	ConsentDataSharing       bool `gorm:"not null;default:false" json:"consent_data_sharing"`

	// documents step，文件字段存 file_assets 的 public_id
	CACCertificateFileID   string `gorm:"type:varchar(64);not null;default:''" json:"cac_certificate_file_id"`
	ExportLicenseFileID    string `gorm:"type:varchar(64);not null;default:''" json:"export_license_file_id"`
	InsuranceSummaryFileID string `gorm:"type:varchar(64);not null;default:''" json:"insurance_summary_file_id"`

	CompletedSteps []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"completed_steps"`
}

func (ShipperProfile) TableName() string {
	return "shipper_profiles"
}
