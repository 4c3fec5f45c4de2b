package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/config"
	"ContainerIQ/utils"
)

// 税号密文是 base64(nonce+密文+tag)，32 位明文编码后已超 80 字符，
// 列必须是 text 才装得下
func TestTaxIdentificationNumberColumnHoldsCiphertext(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("TaxIdentificationNumber")
	require.True(t, ok)

	gormTag := field.Tag.Get("gorm")
	assert.Contains(t, gormTag, "type:text")
	assert.NotContains(t, gormTag, "varchar")

	old := config.Cfg.EncryptionKey
	config.Cfg.EncryptionKey = strings.Repeat("k", 32)
	t.Cleanup(func() { config.Cfg.EncryptionKey = old })

	encoded, err := utils.EncryptSensitive(strings.Repeat("9", 32))
	require.NoError(t, err)
	assert.Greater(t, len(encoded), 64)
}
