package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ContainerIQ/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.InvalidCredentials, http.StatusUnauthorized},
		{errors.Unauthorized, http.StatusUnauthorized},
		{errors.RefreshTokenInvalid, http.StatusUnauthorized},

		{errors.OnboardingIncomplete, http.StatusForbidden},
		{errors.SignupIncomplete, http.StatusForbidden},
		{errors.RoleMismatch, http.StatusForbidden},
		{errors.FileForbidden, http.StatusForbidden},

		{errors.UserNotFound, http.StatusNotFound},
		{errors.ProfileNotFound, http.StatusNotFound},
		{errors.FileNotFound, http.StatusNotFound},

		{errors.EmailAlreadyRegistered, http.StatusConflict},
		{errors.EmailVerified, http.StatusConflict},
		{errors.OnboardingStepInvalid, http.StatusConflict},

		{errors.FileTooLarge, http.StatusRequestEntityTooLarge},

		{errors.OTPRateLimited, http.StatusTooManyRequests},
		{errors.TooManyRequests, http.StatusTooManyRequests},

		{errors.InvalidEmail, http.StatusBadRequest},
		{errors.WeakPassword, http.StatusBadRequest},
		{errors.OTPInvalid, http.StatusBadRequest},
		{errors.OTPExpired, http.StatusBadRequest},
		{errors.OTPMalformed, http.StatusBadRequest},
		{errors.RoleUnsupported, http.StatusBadRequest},
		{errors.ConsentRequired, http.StatusBadRequest},

		{errors.InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusOfCustomMessageKeepsStatus(t *testing.T) {
	// WithMessage 替换文案不改变状态码映射
	custom := errors.OTPInvalid.WithMessage("code does not match")
	assert.Equal(t, http.StatusBadRequest, StatusOf(custom))
}

func TestStatusOfNonDefinition(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(fmt.Errorf("database gone")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.ErrInvalidToken))
}
