package dto

// ========== 货主引导 DTO ==========

// ShipperBusinessRequest business 步骤
type ShipperBusinessRequest struct {
	BusinessType             string   `json:"businessType" binding:"required"`
	ProductCategories        []string `json:"productCategories"`
	HSCode                   string   `json:"hsCode"`
	AverageMonthlyContainers string   `json:"averageMonthlyContainers"`
	PrimaryPorts             []string `json:"primaryPorts"`
}

// ShipperCargoRequest cargo 步骤
type ShipperCargoRequest struct {
	CargoInsuranceProvider string `json:"cargoInsuranceProvider"`
	PreferredInsuranceMode string `json:"preferredInsuranceMode" binding:"required"`
	UseContainerIQInsurers bool   `json:"useContainerIQInsurers"`
}

// ShipperConsentsRequest consents 步骤，三项同意缺一不可
type ShipperConsentsRequest struct {
	ConsentContainerTracking bool `json:"consentContainerTracking"`
	ConsentCargoRiskScoring  bool `json:"consentCargoRiskScoring"`
	ConsentDataSharing       bool `json:"consentDataSharing"`
}

// ShipperDocumentsRequest documents 步骤
type ShipperDocumentsRequest struct {
	CACCertificateFileID     string `json:"cacCertificateFileId"`
	ExportLicenseFileID      string `json:"exportLicenseFileId"`
	InsuranceSummaryFileID   string `json:"insuranceSummaryFileId"`
}

// ShipperProfileResponse GET /shipper/me 响应
type ShipperProfileResponse struct {
	BusinessType             string   `json:"businessType"`
	ProductCategories        []string `json:"productCategories"`
	HSCode                   string   `json:"hsCode"`
	AverageMonthlyContainers string   `json:"averageMonthlyContainers"`
	PrimaryPorts             []string `json:"primaryPorts"`

	CargoInsuranceProvider string `json:"cargoInsuranceProvider"`
	PreferredInsuranceMode string `json:"preferredInsuranceMode"`
	UseContainerIQInsurers bool   `json:"useContainerIQInsurers"`

	ConsentContainerTracking bool `json:"consentContainerTracking"`
	ConsentCargoRiskScoring  bool `json:"consentCargoRiskScoring"`
	ConsentDataSharing       bool `json:"consentDataSharing"`

	CACCertificateFileID   string `json:"cacCertificateFileId"`
	ExportLicenseFileID    string `json:"exportLicenseFileId"`
	InsuranceSummaryFileID string `json:"insuranceSummaryFileId"`

	CompletedSteps []string `json:"completedSteps"`
	ResumeStep     int      `json:"resumeStep"`
}
