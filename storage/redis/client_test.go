package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ContainerIQ/config"
)

func TestKey(t *testing.T) {
	old := config.Cfg.RedisPrefix
	config.Cfg.RedisPrefix = ""
	t.Cleanup(func() {
		config.Cfg.RedisPrefix = old
	})

	assert.Equal(t, "ciq:otp:abc", Key("otp", "abc"))
	assert.Equal(t, "ciq", Key())

	// 空段被跳过，不产生连续冒号
	assert.Equal(t, "ciq:reminder:sent:900001", Key("reminder", "", "sent", "900001"))

	config.Cfg.RedisPrefix = "staging"
	assert.Equal(t, "staging:otp:abc", Key("otp", "abc"))
}
