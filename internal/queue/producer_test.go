package queue

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/pkg/snowflake"
)

func TestFillMessageID(t *testing.T) {
	require.NoError(t, snowflake.Init(1, 1))

	msg := MailMessage{Kind: MailKindOTP, To: "ops@containeriq.io"}
	require.NoError(t, fillMessageID(&msg))

	assert.True(t, strings.HasPrefix(msg.MessageID, "mail_otp_"))

	// 已有 ID 不覆盖，重投时保持幂等键
	fixed := MailMessage{Kind: MailKindWelcome, MessageID: "mail_welcome_42"}
	require.NoError(t, fillMessageID(&fixed))
	assert.Equal(t, "mail_welcome_42", fixed.MessageID)
}

func TestFillMessageIDUnique(t *testing.T) {
	require.NoError(t, snowflake.Init(1, 1))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := MailMessage{Kind: MailKindReminder}
		require.NoError(t, fillMessageID(&msg))
		assert.False(t, seen[msg.MessageID], msg.MessageID)
		seen[msg.MessageID] = true
	}
}

func TestMailMessageJSON(t *testing.T) {
	msg := MailMessage{
		MessageID:   "mail_otp_1",
		Kind:        MailKindOTP,
		To:          "ops@containeriq.io",
		OTPCode:     "123456",
		ScheduledAt: "2026-08-28T10:00:00Z",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	// welcome / reminder 专用字段不应出现在 otp 消息里
	assert.NotContains(t, string(body), "user_id")

	var decoded MailMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestMailMessageJSONOmitsEmptyOTP(t *testing.T) {
	msg := MailMessage{
		MessageID: "mail_welcome_1",
		Kind:      MailKindWelcome,
		To:        "ops@containeriq.io",
		UserID:    900001,
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "otp_code")
	assert.Contains(t, string(body), `"user_id":900001`)
}
