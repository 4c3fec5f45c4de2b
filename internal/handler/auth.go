package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/csrf"

	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/response"
)

// Signup 注册新账号并下发首个验证码邮件
// POST /api/auth/signup
func Signup(ctx context.Context, c *app.RequestContext) {
	var req dto.SignupRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Signup(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Login 邮箱密码登录
// POST /api/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Login(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// VerifyEmail 校验邮箱验证码
// POST /api/auth/email/verify
func VerifyEmail(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifyEmailRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	user, err := service.Verification().VerifyEmail(ctx, req.Email, req.OTP)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.VerifyEmailResponse{
		EmailVerified: true,
		User:          dto.NewUserSnapshot(user),
	})
}

// ResendOTP 重发邮箱验证码
// POST /api/auth/email/resend
func ResendOTP(ctx context.Context, c *app.RequestContext) {
	var req dto.ResendOTPRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Verification().ResendOTP(ctx, req.Email); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"sent": true,
	})
}

// Logout 注销当前会话，refresh token 即刻失效
// POST /api/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	publicID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	if err := service.Auth().Logout(ctx, publicID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"logged_out": true,
	})
}

// GetCSRFToken 下发 CSRF token，浏览器端在写请求前先取一次
// GET /api/auth/csrf
func GetCSRFToken(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, map[string]interface{}{
		"csrf_token": csrf.GetToken(c),
	})
}

// RefreshToken 用 refresh token 换新的 token 对
// POST /api/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
