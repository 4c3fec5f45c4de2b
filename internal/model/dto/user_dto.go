package dto

import (
	"strconv"

	"ContainerIQ/internal/model"
	"ContainerIQ/internal/onboarding"
)

// ========== User 相关 DTO ==========

// UserSnapshot 客户端可见的用户快照，计数器以服务端为准
type UserSnapshot struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	UserType      string `json:"userType"`
	EmailVerified bool   `json:"emailVerified"`

	FormCompleted          int `json:"formCompleted"`
	InsuranceFormCompleted int `json:"insuranceFormCompleted"`
	ShipperFormCompleted   int `json:"shipperFormCompleted"`
	FleetFormCompleted     int `json:"fleetFormCompleted"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`

	CompanyName string `json:"companyName,omitempty"`
}

// NewUserSnapshot 由用户模型构建快照，对外 ID 使用 public_id
func NewUserSnapshot(u *model.User) UserSnapshot {
	return UserSnapshot{
		ID:                     strconv.FormatInt(u.PublicID, 10),
		Email:                  u.Email,
		UserType:               string(u.UserType),
		EmailVerified:          u.EmailVerified,
		FormCompleted:          u.FormCompleted,
		InsuranceFormCompleted: u.InsuranceFormCompleted,
		ShipperFormCompleted:   u.ShipperFormCompleted,
		FleetFormCompleted:     u.FleetFormCompleted,
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		Phone:                  u.Phone,
		JobTitle:               u.JobTitle,
		CompanyName:            u.CompanyName,
	}
}

// MeResponse GET /users/me 响应，带门控判定，SPA 一次往返拿到跳转目标
type MeResponse struct {
	User   UserSnapshot      `json:"user"`
	Access onboarding.Access `json:"access"`
}

// ProfileRequest 基础注册 step 2，联系人信息
type ProfileRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	JobTitle     string `json:"jobTitle"`
	GovID        string `json:"govId"`
	GovIDType    string `json:"govIdType"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
}

// OrganizationRequest 基础注册 step 3，公司信息，三项同意缺一不可
type OrganizationRequest struct {
	LegalEntityName          string   `json:"legalEntityName" binding:"required"`
	RegisteredBusinessName   string   `json:"registeredBusinessName"`
	CACRegistrationNumber    string   `json:"cacRegistrationNumber"`
	YearOfIncorporation      string   `json:"yearOfIncorporation"`
	BusinessAddressHQ        string   `json:"businessAddressHq"`
	OperationalAddresses     []string `json:"operationalAddresses"`
	CountryOfOperation       string   `json:"countryOfOperation"`
	TaxIdentificationNumber  string   `json:"taxIdentificationNumber"`
	AcceptTermsOfService     bool     `json:"acceptTermsOfService"`
	AcceptDataSharingConsent bool     `json:"acceptDataSharingConsent"`
	AcceptNiiraCompliance    bool     `json:"acceptNiiraCompliance"`
	DigitalSignatureName     string   `json:"digitalSignatureName"`
}

// SignupStepResponse 基础注册步骤提交响应
type SignupStepResponse struct {
	FormCompleted int          `json:"formCompleted"`
	User          UserSnapshot `json:"user"`
}
