package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/config"
	"ContainerIQ/pkg/errors"
)

func TestGenerateTokenPair(t *testing.T) {
	require.NoError(t, Init())

	access, refresh, expiresIn, err := GenerateTokenPair("900001")
	require.NoError(t, err)

	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
	assert.Greater(t, expiresIn, 0)
	assert.LessOrEqual(t, expiresIn, config.Cfg.JWTExpireMinutes*60)
}

func TestValidateRefreshToken(t *testing.T) {
	require.NoError(t, Init())

	_, refresh, _, err := GenerateTokenPair("900001")
	require.NoError(t, err)

	uid, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "900001", uid)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	require.NoError(t, Init())

	access, _, _, err := GenerateTokenPair("900001")
	require.NoError(t, err)

	// access token 没有 type=refresh，不能用来刷新
	_, err = ValidateRefreshToken(access)
	assert.ErrorIs(t, err, errors.ErrInvalidTokenType)
}

func TestValidateRefreshTokenGarbage(t *testing.T) {
	require.NoError(t, Init())

	_, err := ValidateRefreshToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateRefreshToken("")
	assert.Error(t, err)
}
