package model

// InsuranceProfile 保险公司引导资料，数组字段以 jsonb 存储
type InsuranceProfile struct {
	BaseModel
	UserID int64 `gorm:"uniqueIndex;not null" json:"user_id"`

	// license step
	InsuranceLicenseNumber string   `gorm:"type:varchar(64);not null;default:''" json:"insurance_license_number"`
	ClassOfInsurance       string   `gorm:"type:varchar(64);not null;default:''" json:"class_of_insurance"`
	ReinsurancePartners    []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"reinsurance_partners"`
	NaicomReportingCode    string   `gorm:"type:varchar(64);not null;default:''" json:"naicom_reporting_code"`

	// coverage step
	CoverageGeographyType string   `gorm:"type:varchar(32);not null;default:''" json:"coverage_geography_type"`
	SelectedPorts         []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"selected_ports"`
	SelectedStates        []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"selected_states"`
	CorridorDetails       string   `gorm:"type:text;not null;default:''" json:"corridor_details"`
	InternationalCoverage bool     `gorm:"not null;default:false" json:"international_coverage"`

	// policy step
	PolicyTypes []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"policy_types"`

	// claims step
	ClaimsProcessingModel         string `gorm:"type:varchar(32);not null;default:''" json:"claims_processing_model"`
	AcceptTelematicsRiskScoring   bool   `gorm:"not null;default:false" json:"accept_telematics_risk_scoring"`
	AcceptAutomatedClaimsEvidence bool   `gorm:"not null;default:false" json:"accept_automated_claims_evidence"`
	APIIntegrationMode            string `gorm:"type:varchar(32);not null;default:''" json:"api_integration_mode"`

	// documents step，文件字段存 file_assets 的 public_id
	ClaimsContactProtocol      string `gorm:"type:varchar(64);not null;default:''" json:"claims_contact_protocol"`
	InsuranceLicenseFileID     string `gorm:"type:varchar(64);not null;default:''" json:"insurance_license_file_id"`
	NaicomApprovalLetterFileID string `gorm:"type:varchar(64);not null;default:''" json:"naicom_approval_letter_file_id"`

	CompletedSteps []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"completed_steps"`
}

func (InsuranceProfile) TableName() string {
	return "insurance_profiles"
}
