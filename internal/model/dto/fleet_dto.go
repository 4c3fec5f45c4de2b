package dto

// ========== 车队引导 DTO ==========

// FleetProfileRequest profile 步骤
type FleetProfileRequest struct {
	NumberOfTrucks       string   `json:"numberOfTrucks" binding:"required"`
	TruckTypes           []string `json:"truckTypes"`
	OwnershipModel       string   `json:"ownershipModel"`
	OperationalCorridors []string `json:"operationalCorridors"`
}

// FleetComplianceRequest compliance 步骤
type FleetComplianceRequest struct {
	HasDriverVerification    bool   `json:"hasDriverVerification"`
	FRSCComplianceStatus     string `json:"frscComplianceStatus"`
	VehicleInsuranceProvider string `json:"vehicleInsuranceProvider"`
	HasGpsInstalled          bool   `json:"hasGpsInstalled"`
	HasElockInstalled        bool   `json:"hasElockInstalled"`
	WillingToInstallDevices  bool   `json:"willingToInstallDevices"`
}

// FleetDocumentsRequest documents 步骤
type FleetDocumentsRequest struct {
	FleetInsuranceFileID      string `json:"fleetInsuranceFileId"`
	VehicleLicensesFileID     string `json:"vehicleLicensesFileId"`
	DriverAccreditationFileID string `json:"driverAccreditationFileId"`
}

// FleetStateResponse GET /fleet/me 响应
type FleetStateResponse struct {
	NumberOfTrucks       string   `json:"numberOfTrucks"`
	TruckTypes           []string `json:"truckTypes"`
	OwnershipModel       string   `json:"ownershipModel"`
	OperationalCorridors []string `json:"operationalCorridors"`

	HasDriverVerification    bool   `json:"hasDriverVerification"`
	FRSCComplianceStatus     string `json:"frscComplianceStatus"`
	VehicleInsuranceProvider string `json:"vehicleInsuranceProvider"`
	HasGpsInstalled          bool   `json:"hasGpsInstalled"`
	HasElockInstalled        bool   `json:"hasElockInstalled"`
	WillingToInstallDevices  bool   `json:"willingToInstallDevices"`

	FleetInsuranceFileID      string `json:"fleetInsuranceFileId"`
	VehicleLicensesFileID     string `json:"vehicleLicensesFileId"`
	DriverAccreditationFileID string `json:"driverAccreditationFileId"`

	CompletedSteps []string `json:"completedSteps"`
	ResumeStep     int      `json:"resumeStep"`
}

// WizardStepResponse 角色引导步骤提交的统一响应
type WizardStepResponse struct {
	Step               string       `json:"step"`
	CompletedSteps     []string     `json:"completedSteps"`
	OnboardingComplete bool         `json:"onboardingComplete"`
	User               UserSnapshot `json:"user"`
}
