package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContainerIQ/internal/cache"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/snowflake"
	"ContainerIQ/pkg/token"
	"ContainerIQ/storage/database"
	"ContainerIQ/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// parseUserType 归一化注册角色，未识别的值落到 other
func parseUserType(raw string) model.UserType {
	switch model.UserType(strings.TrimSpace(strings.ToLower(raw))) {
	case model.UserTypeInsuranceCompany:
		return model.UserTypeInsuranceCompany
	case model.UserTypeShipper:
		return model.UserTypeShipper
	case model.UserTypeFleetOperator:
		return model.UserTypeFleetOperator
	case model.UserTypeShippingCompany:
		return model.UserTypeShippingCompany
	case model.UserTypeTerminalOperator:
		return model.UserTypeTerminalOperator
	default:
		return model.UserTypeOther
	}
}

// Signup 注册新用户，form_completed 置 1，发送验证码邮件
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) {
		return nil, errors.InvalidEmail
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, errors.WeakPassword
	}

	db := database.DB().WithContext(ctx)

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, errors.EmailAlreadyRegistered
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := &model.User{
		PublicID:      publicID,
		Email:         email,
		PasswordHash:  passwordHash,
		UserType:      parseUserType(req.UserType),
		FormCompleted: 1,
	}

	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger.Info("New user created",
		zap.Int64("public_id", publicID),
		zap.String("user_type", string(user.UserType)),
	)

	// 验证码投递失败不影响注册，可以走重发
	if err := Verification().IssueOTP(ctx, email); err != nil {
		logger.Logger.Warn("Failed to issue signup OTP",
			zap.Int64("public_id", publicID),
			zap.Error(err),
		)
	}

	return s.buildAuthResponse(ctx, user)
}

// Login 邮箱密码登录，账号不存在和密码错误统一返回 INVALID_CREDENTIALS
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, errors.InvalidCredentials
	}

	return s.buildAuthResponse(ctx, &user)
}

// RefreshToken 校验并轮换 refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userIDStr, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.RefreshTokenInvalid
	}

	// Redis 里必须还存着同一个 token，登出或轮换过的旧 token 一律拒绝
	if !cache.ValidateRefreshTokenExists(ctx, userIDStr, refreshToken) {
		return nil, errors.RefreshTokenInvalid
	}

	publicID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	user, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(ctx, user)
}

// Logout 删除存储的 refresh token，已签发的 access token 到期自然失效
func (s *AuthService) Logout(ctx context.Context, publicID int64) error {
	userIDStr := strconv.FormatInt(publicID, 10)

	if err := cache.DeleteRefreshToken(ctx, userIDStr); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	logger.Logger.Info("User logged out", zap.String("user_id", userIDStr))
	return nil
}

func (s *AuthService) buildAuthResponse(ctx context.Context, user *model.User) (*dto.AuthResponse, error) {
	userIDStr := strconv.FormatInt(user.PublicID, 10)

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// 存储 refresh token 到 Redis，失败只记日志，token 本身已经有效
	if err := cache.SetRefreshToken(ctx, userIDStr, refreshToken); err != nil {
		logger.Logger.Warn("Failed to store refresh token in Redis",
			zap.String("user_id", userIDStr),
			zap.Error(err),
		)
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         dto.NewUserSnapshot(user),
	}, nil
}

// GetUserByPublicID 按对外 ID 查用户
func GetUserByPublicID(ctx context.Context, publicID int64) (*model.User, error) {
	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
