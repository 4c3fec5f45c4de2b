package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/config"
)

func withEncryptionKey(t *testing.T, key string) {
	t.Helper()
	old := config.Cfg.EncryptionKey
	config.Cfg.EncryptionKey = key
	t.Cleanup(func() {
		config.Cfg.EncryptionKey = old
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	withEncryptionKey(t, strings.Repeat("k", 32))

	for _, plain := range []string{"", "91-1234567", "税号 DE812345678"} {
		encoded, err := EncryptSensitive(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, encoded)

		decoded, err := DecryptSensitive(encoded)
		require.NoError(t, err)
		assert.Equal(t, plain, decoded)
	}
}

func TestEncryptSensitiveRandomNonce(t *testing.T) {
	withEncryptionKey(t, strings.Repeat("k", 32))

	a, err := EncryptSensitive("91-1234567")
	require.NoError(t, err)
	b, err := EncryptSensitive("91-1234567")
	require.NoError(t, err)

	// nonce 随机，同一明文两次加密结果不同
	assert.NotEqual(t, a, b)
}

func TestEncryptSensitiveBadKey(t *testing.T) {
	withEncryptionKey(t, "short")

	_, err := EncryptSensitive("91-1234567")
	assert.Error(t, err)
}

func TestDecryptSensitiveBadInput(t *testing.T) {
	withEncryptionKey(t, strings.Repeat("k", 32))

	_, err := DecryptSensitive("not base64!!!")
	assert.ErrorIs(t, err, errInvalidCipherText)

	// 长度不足放不下 nonce
	_, err = DecryptSensitive("YWJj")
	assert.ErrorIs(t, err, errInvalidCipherText)

	// 密文被篡改
	encoded, err := EncryptSensitive("91-1234567")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	_, err = DecryptSensitive(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)
}

func TestDecryptSensitiveWrongKey(t *testing.T) {
	withEncryptionKey(t, strings.Repeat("k", 32))

	encoded, err := EncryptSensitive("91-1234567")
	require.NoError(t, err)

	config.Cfg.EncryptionKey = strings.Repeat("x", 32)
	_, err = DecryptSensitive(encoded)
	assert.Error(t, err)
}
