package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// bcrypt 每次加盐，两次哈希结果不同
	hash2, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.True(t, CheckPassword("correct horse battery staple", hash2))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}

func TestHashEmail(t *testing.T) {
	base := HashEmail("ops@containeriq.io")

	// 大小写和首尾空白归一化后哈希一致
	assert.Equal(t, base, HashEmail("OPS@ContainerIQ.IO"))
	assert.Equal(t, base, HashEmail("  ops@containeriq.io  "))

	assert.NotEqual(t, base, HashEmail("other@containeriq.io"))
	assert.Len(t, base, 64)
}
