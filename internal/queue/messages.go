package queue

// 邮件任务种类
const (
	MailKindOTP      = "otp"
	MailKindWelcome  = "welcome"
	MailKindReminder = "reminder"
)

// MailMessage 邮件任务消息
type MailMessage struct {
	MessageID   string `json:"message_id"`
	Kind        string `json:"kind"`
	To          string `json:"to"`
	OTPCode     string `json:"otp_code,omitempty"` // 仅 otp 任务填写
	UserID      int64  `json:"user_id,omitempty"`  // public_id，welcome / reminder 任务填写
	ScheduledAt string `json:"scheduled_at"`
}
