package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionError(t *testing.T) {
	var err error = InvalidCredentials
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestWithMessage(t *testing.T) {
	custom := OTPInvalid.WithMessage("code does not match")
	assert.Equal(t, OTPInvalid.Code, custom.Code)
	assert.Equal(t, "code does not match", custom.Message)

	// 空消息保持默认文案
	same := OTPInvalid.WithMessage("")
	assert.Equal(t, OTPInvalid, same)

	// 原值不被修改
	assert.Equal(t, "Verification code invalid", OTPInvalid.Message)
}

func TestGet(t *testing.T) {
	assert.Equal(t, UserNotFound, Get("USER_NOT_FOUND"))
	assert.Equal(t, OnboardingIncomplete, Get("ONBOARDING_INCOMPLETE"))

	unknown := Get("NO_SUCH_CODE")
	assert.Equal(t, "NO_SUCH_CODE", unknown.Code)
	assert.Equal(t, "Unexpected error", unknown.Message)
}

func TestLookupConsistency(t *testing.T) {
	for code, def := range Lookup {
		assert.Equal(t, code, def.Code)
		assert.NotEmpty(t, def.Message, code)
	}
}

func TestSkipMessageError(t *testing.T) {
	err := &SkipMessageError{Reason: "mail task has no recipient"}
	assert.Equal(t, "skip message: mail task has no recipient", err.Error())
	assert.True(t, IsSkipMessageError(err))

	wrapped := fmt.Errorf("handler failed: %w", err)
	assert.True(t, IsSkipMessageError(wrapped))

	require.False(t, IsSkipMessageError(nil))
	assert.False(t, IsSkipMessageError(ErrInvalidToken))
	assert.False(t, IsSkipMessageError(Unauthorized))
}
