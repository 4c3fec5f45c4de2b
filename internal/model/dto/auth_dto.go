package dto

// ========== Auth 相关 DTO ==========

// SignupRequest 注册请求
type SignupRequest struct {
	UserType string `json:"userType" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 注册 / 登录 / 刷新的统一响应
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         UserSnapshot `json:"user"`
}

// VerifyEmailRequest 邮箱验证请求，otp 必须是 6 位数字
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   int    `json:"otp" binding:"required"`
}

// ResendOTPRequest 重发验证码请求
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyEmailResponse 邮箱验证响应
type VerifyEmailResponse struct {
	EmailVerified bool         `json:"emailVerified"`
	User          UserSnapshot `json:"user"`
}

// RefreshTokenRequest 刷新 token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
