package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// WithMessage 保留错误码，替换为服务端的具体信息（原样透传给前端）。
func (d Definition) WithMessage(message string) Definition {
	if message == "" {
		return d
	}
	return Definition{Code: d.Code, Message: message}
}

// 认证相关错误。
var (
	InvalidCredentials     = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	InvalidEmail           = Definition{Code: "INVALID_EMAIL", Message: "Invalid email address"}
	WeakPassword           = Definition{Code: "WEAK_PASSWORD", Message: "Password must be at least 8 characters"}
	RefreshTokenInvalid    = Definition{Code: "REFRESH_TOKEN_INVALID", Message: "Refresh token invalid"}
	Unauthorized           = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID          = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	UserNotFound           = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// 邮箱验证码错误。
var (
	OTPInvalid     = Definition{Code: "OTP_INVALID", Message: "Verification code invalid"}
	OTPExpired     = Definition{Code: "OTP_EXPIRED", Message: "Verification code expired"}
	OTPMalformed   = Definition{Code: "OTP_MALFORMED", Message: "Verification code must be 6 digits"}
	OTPRateLimited = Definition{Code: "OTP_RATE_LIMITED", Message: "Too many verification mails today"}
	EmailVerified  = Definition{Code: "EMAIL_ALREADY_VERIFIED", Message: "Email already verified"}
)

// 引导流程错误。
var (
	OnboardingStepInvalid = Definition{Code: "ONBOARDING_STEP_INVALID", Message: "Onboarding step out of order"}
	OnboardingIncomplete  = Definition{Code: "ONBOARDING_INCOMPLETE", Message: "Onboarding incomplete"}
	SignupIncomplete      = Definition{Code: "SIGNUP_INCOMPLETE", Message: "Base signup incomplete"}
	RoleMismatch          = Definition{Code: "ROLE_MISMATCH", Message: "Onboarding flow does not match account role"}
	RoleUnsupported       = Definition{Code: "ROLE_UNSUPPORTED", Message: "No onboarding flow for this role"}
	ConsentRequired       = Definition{Code: "CONSENT_REQUIRED", Message: "All consents must be accepted"}
	ProfileNotFound       = Definition{Code: "PROFILE_NOT_FOUND", Message: "Onboarding record not found"}
)

// 文件模块错误。
var (
	FileNotFound  = Definition{Code: "FILE_NOT_FOUND", Message: "File not found"}
	FileTooLarge  = Definition{Code: "FILE_TOO_LARGE", Message: "File exceeds size limit"}
	FileForbidden = Definition{Code: "FILE_FORBIDDEN", Message: "File belongs to another account"}
)

// 通用错误。
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, please try again later"}
	InternalError   = Definition{Code: "INTERNAL_ERROR", Message: "Internal server error"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidCredentials.Code:     InvalidCredentials,
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	InvalidEmail.Code:           InvalidEmail,
	WeakPassword.Code:           WeakPassword,
	RefreshTokenInvalid.Code:    RefreshTokenInvalid,
	Unauthorized.Code:           Unauthorized,
	InvalidUserID.Code:          InvalidUserID,
	UserNotFound.Code:           UserNotFound,
	OTPInvalid.Code:             OTPInvalid,
	OTPExpired.Code:             OTPExpired,
	OTPMalformed.Code:           OTPMalformed,
	OTPRateLimited.Code:         OTPRateLimited,
	EmailVerified.Code:          EmailVerified,
	OnboardingStepInvalid.Code:  OnboardingStepInvalid,
	OnboardingIncomplete.Code:   OnboardingIncomplete,
	SignupIncomplete.Code:       SignupIncomplete,
	RoleMismatch.Code:           RoleMismatch,
	RoleUnsupported.Code:        RoleUnsupported,
	ConsentRequired.Code:        ConsentRequired,
	ProfileNotFound.Code:        ProfileNotFound,
	FileNotFound.Code:           FileNotFound,
	FileTooLarge.Code:           FileTooLarge,
	FileForbidden.Code:          FileForbidden,
	TooManyRequests.Code:        TooManyRequests,
	InternalError.Code:          InternalError,
}

// Get 根据错误码返回 Definition，若不存在则返回兜底 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// 存储层哨兵错误。
var (
	ErrDatabaseConnectionNil = errors.New("database connection is nil")
)

// token 包内部使用的哨兵错误。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in claims")
)
