package model

// UserType 用户注册时选择的角色枚举
type UserType string

const (
	UserTypeInsuranceCompany UserType = "insurance_company" // 保险公司
	UserTypeShipper          UserType = "shipper"           // 货主
	UserTypeFleetOperator    UserType = "fleet_operator"    // 车队运营商
	UserTypeShippingCompany  UserType = "shipping_company"  // 航运公司
	UserTypeTerminalOperator UserType = "terminal_operator" // 码头运营商
	UserTypeOther            UserType = "other"
)

// 完成度阈值，form_completed 到达 SignupThreshold 代表基础注册完成，
// 角色计数器到达各自阈值代表角色引导完成
const (
	SignupThreshold        = 3
	InsuranceFormThreshold = 4
	ShipperFormThreshold   = 4
	FleetFormThreshold     = 3
)

// User 用户模型，完成度计数器只增不减，更新走 GREATEST 保证单调
type User struct {
	BaseModel
	PublicID     int64    `gorm:"uniqueIndex;not null" json:"public_id"`
	Email        string   `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(128);not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(32);not null;index:idx_users_user_type" json:"user_type"`

	EmailVerified bool `gorm:"not null;default:false" json:"email_verified"`

	// 注册引导计数器
	FormCompleted          int `gorm:"not null;default:0" json:"form_completed"`
	InsuranceFormCompleted int `gorm:"not null;default:0" json:"insurance_form_completed"`
	ShipperFormCompleted   int `gorm:"not null;default:0" json:"shipper_form_completed"`
	FleetFormCompleted     int `gorm:"not null;default:0" json:"fleet_form_completed"`

	// 个人信息（基础注册 step 2）
	FirstName    string `gorm:"type:varchar(64);not null;default:''" json:"first_name"`
	LastName     string `gorm:"type:varchar(64);not null;default:''" json:"last_name"`
	Phone        string `gorm:"type:varchar(32);not null;default:''" json:"phone"`
	JobTitle     string `gorm:"type:varchar(64);not null;default:''" json:"job_title"`
	GovID        string `gorm:"type:varchar(64);not null;default:''" json:"-"`
	GovIDType    string `gorm:"type:varchar(32);not null;default:''" json:"gov_id_type"`
	ContactEmail string `gorm:"type:varchar(255);not null;default:''" json:"contact_email"`

	// 公司信息（基础注册 step 3）
	CompanyName             string   `gorm:"type:varchar(128);not null;default:''" json:"company_name"`
	RegisteredBusinessName  string   `gorm:"type:varchar(128);not null;default:''" json:"registered_business_name"`
	CACRegistrationNumber   string   `gorm:"type:varchar(64);not null;default:''" json:"cac_registration_number"`
	YearOfIncorporation     string   `gorm:"type:varchar(8);not null;default:''" json:"year_of_incorporation"`
	BusinessAddressHQ       string   `gorm:"type:varchar(255);not null;default:''" json:"business_address_hq"`
	OperationalAddresses    []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"operational_addresses"`
	CountryOfOperation      string   `gorm:"type:varchar(64);not null;default:''" json:"country_of_operation"`
	// AES-GCM 密文带 nonce 和 tag 再 base64，长度远超明文，不能用定长列
	TaxIdentificationNumber string   `gorm:"type:text;not null;default:''" json:"-"`
	DigitalSignatureName    string   `gorm:"type:varchar(128);not null;default:''" json:"digital_signature_name"`
	TermsAccepted           bool     `gorm:"not null;default:false" json:"terms_accepted"`
	DataSharingAccepted     bool     `gorm:"not null;default:false" json:"data_sharing_accepted"`
	NiiraComplianceAccepted bool     `gorm:"not null;default:false" json:"niira_compliance_accepted"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// SignupComplete 基础注册是否完成
func (u *User) SignupComplete() bool {
	return u.FormCompleted >= SignupThreshold
}

// RoleCounter 返回当前角色对应的计数器值与阈值，
// 没有引导流程的角色返回 ok=false
func (u *User) RoleCounter() (current, threshold int, ok bool) {
	switch u.UserType {
	case UserTypeInsuranceCompany:
		return u.InsuranceFormCompleted, InsuranceFormThreshold, true
	case UserTypeShipper:
		return u.ShipperFormCompleted, ShipperFormThreshold, true
	case UserTypeFleetOperator:
		return u.FleetFormCompleted, FleetFormThreshold, true
	default:
		return 0, 0, false
	}
}

// OnboardingComplete 角色引导是否完成，无引导流程的角色视为已完成
func (u *User) OnboardingComplete() bool {
	current, threshold, ok := u.RoleCounter()
	if !ok {
		return true
	}
	return current >= threshold
}
