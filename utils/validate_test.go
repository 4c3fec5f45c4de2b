package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ops@containeriq.io",
		"first.last@example.com",
		"user+tag@sub.domain.org",
		"UPPER@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"no-at-sign.com",
		"user@nodot",
		"user@domain.c",
		"user name@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestValidateOTP(t *testing.T) {
	assert.True(t, ValidateOTP("123456"))
	assert.True(t, ValidateOTP("000000"))

	assert.False(t, ValidateOTP(""))
	assert.False(t, ValidateOTP("12345"))
	assert.False(t, ValidateOTP("1234567"))
	assert.False(t, ValidateOTP("12345a"))
	assert.False(t, ValidateOTP(" 123456"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345678"))
	assert.True(t, ValidatePassword("a much longer passphrase"))

	assert.False(t, ValidatePassword(""))
	assert.False(t, ValidatePassword("1234567"))
}
