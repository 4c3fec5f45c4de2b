package model

// FleetProfile 车队运营商引导资料
type FleetProfile struct {
	BaseModel
	UserID int64 `gorm:"uniqueIndex;not null" json:"user_id"`

	// profile step
	NumberOfTrucks       string   `gorm:"type:varchar(32);not null;default:''" json:"number_of_trucks"`
	TruckTypes           []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"truck_types"`
	OwnershipModel       string   `gorm:"type:varchar(32);not null;default:''" json:"ownership_model"`
	OperationalCorridors []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"operational_corridors"`

	// compliance step
	HasDriverVerification    bool   `gorm:"not null;default:false" json:"has_driver_verification"`
	FRSCComplianceStatus     string `gorm:"type:varchar(32);not null;default:''" json:"frsc_compliance_status"`
	VehicleInsuranceProvider string `gorm:"type:varchar(128);not null;default:''" json:"vehicle_insurance_provider"`
	HasGpsInstalled          bool   `gorm:"not null;default:false" json:"has_gps_installed"`
	HasElockInstalled        bool   `gorm:"not null;default:false" json:"has_elock_installed"`
	WillingToInstallDevices  bool   `gorm:"not null;default:false" json:"willing_to_install_devices"`

	// documents step，文件字段存 file_assets 的 public_id
	FleetInsuranceFileID      string `gorm:"type:varchar(64);not null;default:''" json:"fleet_insurance_file_id"`
	VehicleLicensesFileID     string `gorm:"type:varchar(64);not null;default:''" json:"vehicle_licenses_file_id"`
	DriverAccreditationFileID string `gorm:"type:varchar(64);not null;default:''" json:"driver_accreditation_file_id"`

	CompletedSteps []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"completed_steps"`
}

func (FleetProfile) TableName() string {
	return "fleet_profiles"
}
