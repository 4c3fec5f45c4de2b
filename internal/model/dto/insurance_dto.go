package dto

// ========== 保险公司引导 DTO，字段名与前端表单保持一致 ==========

// InsuranceLicenseRequest license 步骤
type InsuranceLicenseRequest struct {
	InsuranceLicenseNumber string   `json:"insuranceLicenseNumber" binding:"required"`
	ClassOfInsurance       string   `json:"classOfInsurance" binding:"required"`
	ReinsurancePartners    []string `json:"reinsurancePartners"`
	NaicomReportingCode    string   `json:"naicomReportingCode"`
}

// InsuranceCoverageRequest coverage 步骤
type InsuranceCoverageRequest struct {
	CoverageGeographyType string   `json:"coverageGeographyType" binding:"required"`
	SelectedPorts         []string `json:"selectedPorts"`
	SelectedStates        []string `json:"selectedStates"`
	CorridorDetails       string   `json:"corridorDetails"`
	InternationalCoverage bool     `json:"internationalCoverage"`
}

// InsurancePolicyRequest policy 步骤
type InsurancePolicyRequest struct {
	PolicyTypes []string `json:"policyTypes" binding:"required"`
}

// InsuranceClaimsRequest claims 步骤
type InsuranceClaimsRequest struct {
	ClaimsProcessingModel         string `json:"claimsProcessingModel" binding:"required"`
	AcceptTelematicsRiskScoring   bool   `json:"acceptTelematicsRiskScoring"`
	AcceptAutomatedClaimsEvidence bool   `json:"acceptAutomatedClaimsEvidence"`
	APIIntegrationMode            string `json:"apiIntegrationMode"`
}

// InsuranceDocumentsRequest documents 步骤，阈值后的补充材料
type InsuranceDocumentsRequest struct {
	ClaimsContactProtocol     string `json:"claimsContactProtocol"`
	InsuranceLicenseFileID    string `json:"insuranceLicenseFileId"`
	NaicomApprovalLetterFileID string `json:"naicomApprovalLetterFileId"`
}

// InsuranceProfileResponse GET /insurance/me 响应
type InsuranceProfileResponse struct {
	InsuranceLicenseNumber string   `json:"insuranceLicenseNumber"`
	ClassOfInsurance       string   `json:"classOfInsurance"`
	ReinsurancePartners    []string `json:"reinsurancePartners"`
	NaicomReportingCode    string   `json:"naicomReportingCode"`

	CoverageGeographyType string   `json:"coverageGeographyType"`
	SelectedPorts         []string `json:"selectedPorts"`
	SelectedStates        []string `json:"selectedStates"`
	CorridorDetails       string   `json:"corridorDetails"`
	InternationalCoverage bool     `json:"internationalCoverage"`

	PolicyTypes []string `json:"policyTypes"`

	ClaimsProcessingModel         string `json:"claimsProcessingModel"`
	AcceptTelematicsRiskScoring   bool   `json:"acceptTelematicsRiskScoring"`
	AcceptAutomatedClaimsEvidence bool   `json:"acceptAutomatedClaimsEvidence"`
	APIIntegrationMode            string `json:"apiIntegrationMode"`

	ClaimsContactProtocol      string `json:"claimsContactProtocol"`
	InsuranceLicenseFileID     string `json:"insuranceLicenseFileId"`
	NaicomApprovalLetterFileID string `json:"naicomApprovalLetterFileId"`

	CompletedSteps []string `json:"completedSteps"`
	ResumeStep     int      `json:"resumeStep"`
}
