package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeys(t *testing.T) {
	keys := extractKeys([]interface{}{"set", "ciq:kpi:dashboard", "value"})
	assert.Equal(t, []string{"ciq:kpi:dashboard", "value"}, keys)

	// 首位是命令名，被跳过
	assert.Nil(t, extractKeys([]interface{}{"ping"}))
	assert.Nil(t, extractKeys(nil))

	// 非字符串参数被忽略，最多取 3 个
	keys = extractKeys([]interface{}{"mget", "a", 1, "b", "c", "d"})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "ciq:kpi:dashboard", sanitizeKey("ciq:kpi:dashboard"))

	// 敏感键只保留第一段
	assert.Equal(t, "ciq:***", sanitizeKey("ciq:otp:user@example.com"))
	assert.Equal(t, "ciq:***", sanitizeKey("ciq:refresh_token:900001"))
	assert.Equal(t, "ciq:***", sanitizeKey("ciq:session:abc"))
	assert.Equal(t, "***", sanitizeKey("secret"))
}

func TestSanitizeKeyTruncatesLongKeys(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'k'
	}

	got := sanitizeKey(string(long))
	assert.Len(t, got, 103)
	assert.Contains(t, got, "...")
}
