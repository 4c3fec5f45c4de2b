package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/internal/cache"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/queue"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
	"ContainerIQ/utils"
)

var (
	verificationService *VerificationService
	verificationOnce    sync.Once
)

func Verification() *VerificationService {
	verificationOnce.Do(func() {
		verificationService = &VerificationService{}
	})
	return verificationService
}

type VerificationService struct{}

// generateOTP 生成 6 位数字验证码，crypto/rand 保证不可预测
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueOTP 生成验证码写入 Redis 并投递邮件任务，带每日发送上限
func (s *VerificationService) IssueOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.ValidateEmail(email) {
		return errors.InvalidEmail
	}

	emailHash := utils.HashEmail(email)

	count, err := cache.IncrOTPCount(ctx, emailHash)
	if err != nil {
		return fmt.Errorf("failed to incr otp count: %w", err)
	}
	if count > config.Cfg.OTPMaxDaily {
		return errors.OTPRateLimited
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := cache.SetOTP(ctx, emailHash, code); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	// 邮件走队列异步发送，发送失败不回收验证码
	if err := queue.PublishOTPMail(email, code); err != nil {
		return fmt.Errorf("failed to enqueue otp mail: %w", err)
	}

	logger.Logger.Info("OTP issued",
		zap.String("email_hash", emailHash),
		zap.Int("daily_count", count),
	)

	return nil
}

// VerifyEmail 校验验证码并标记邮箱已验证
// otp 必须恰好 6 位数字，格式不对时不触碰缓存
func (s *VerificationService) VerifyEmail(ctx context.Context, email string, otp int) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.ValidateEmail(email) {
		return nil, errors.InvalidEmail
	}

	code := fmt.Sprintf("%06d", otp)
	if otp < 0 || !utils.ValidateOTP(code) {
		return nil, errors.OTPMalformed
	}

	emailHash := utils.HashEmail(email)

	stored, err := cache.GetOTP(ctx, emailHash)
	if err != nil {
		return nil, fmt.Errorf("failed to read otp: %w", err)
	}
	if stored == "" {
		return nil, errors.OTPExpired
	}
	if stored != code {
		return nil, errors.OTPInvalid
	}

	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.UserNotFound
	}

	if !user.EmailVerified {
		if err := db.Model(&user).Update("email_verified", true).Error; err != nil {
			return nil, fmt.Errorf("failed to mark email verified: %w", err)
		}
		user.EmailVerified = true

		// 欢迎邮件尽力而为
		if err := queue.PublishWelcomeMail(email, user.PublicID); err != nil {
			logger.Logger.Warn("Failed to enqueue welcome mail",
				zap.Int64("public_id", user.PublicID),
				zap.Error(err),
			)
		}
	}

	if err := cache.DeleteOTP(ctx, emailHash); err != nil {
		logger.Logger.Warn("Failed to delete used otp",
			zap.String("email_hash", emailHash),
			zap.Error(err),
		)
	}

	logger.Logger.Info("Email verified",
		zap.Int64("public_id", user.PublicID),
	)

	return &user, nil
}

// ResendOTP 重发验证码，已验证的邮箱直接拒绝
func (s *VerificationService) ResendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.ValidateEmail(email) {
		return errors.InvalidEmail
	}

	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return errors.UserNotFound
	}

	if user.EmailVerified {
		return errors.EmailVerified
	}

	return s.IssueOTP(ctx, email)
}
