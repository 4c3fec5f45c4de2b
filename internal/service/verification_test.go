package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

// 这些用例在 Redis 未初始化的情况下跑：格式不对的 OTP 必须在
// 触碰缓存之前就被拒绝，否则这里会因为 client 未初始化直接 panic
func TestVerifyEmailRejectsMalformedOTPBeforeCache(t *testing.T) {
	ctx := context.Background()

	for _, otp := range []int{1234567, 12345678, -1, -123456} {
		_, err := Verification().VerifyEmail(ctx, "user@example.com", otp)
		assert.ErrorIs(t, err, errors.OTPMalformed, "otp %d", otp)
	}
}

func TestVerifyEmailRejectsInvalidEmailFirst(t *testing.T) {
	_, err := Verification().VerifyEmail(context.Background(), "not-an-email", 123456)
	require.ErrorIs(t, err, errors.InvalidEmail)
}
