package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSQL(t *testing.T) {
	sql := "UPDATE users SET password = 'hunter2', email = 'a@b.com' WHERE id = 1"
	got := sanitizeSQL(sql)
	assert.NotContains(t, got, "hunter2")
	assert.Contains(t, got, "'***'")
	assert.Contains(t, got, "a@b.com")

	sql = "UPDATE shipper_profiles SET tax_identification_number = '91-1234567'"
	got = sanitizeSQL(sql)
	assert.NotContains(t, got, "91-1234567")

	// 无敏感字段原样返回
	sql = "SELECT * FROM containers WHERE status = 'in_transit'"
	assert.Equal(t, sql, sanitizeSQL(sql))
}

func TestNewOTELPluginDefaults(t *testing.T) {
	p := NewOTELPlugin(PluginConfig{})
	assert.Equal(t, "containeriq", p.config.ServiceName)
	assert.Equal(t, 500, p.config.MaxSQLLength)
	assert.Equal(t, "otel_plugin", p.Name())

	p = NewOTELPlugin(PluginConfig{ServiceName: "svc", MaxSQLLength: 100})
	assert.Equal(t, "svc", p.config.ServiceName)
	assert.Equal(t, 100, p.config.MaxSQLLength)
}
