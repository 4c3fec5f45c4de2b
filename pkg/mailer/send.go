package mailer

import (
	"context"
	"fmt"
)

// SendOTPMail 发送验证码邮件
func SendOTPMail(ctx context.Context, to, code string, expireMinutes int) error {
	subject := "Your ContainerIQ verification code"
	body := fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires in %d minutes. If you did not request this code, you can ignore this email.\n\nContainerIQ",
		code, expireMinutes,
	)
	return Send(ctx, to, subject, body)
}

// SendWelcomeMail 邮箱验证完成后发送欢迎邮件
func SendWelcomeMail(ctx context.Context, to string) error {
	subject := "Welcome to ContainerIQ"
	body := "Your email has been verified.\n\nFinish your onboarding to unlock the dashboard and start tracking your containers.\n\nContainerIQ"
	return Send(ctx, to, subject, body)
}

// SendOnboardingReminderMail 发送引导未完成提醒邮件
func SendOnboardingReminderMail(ctx context.Context, to string) error {
	subject := "Finish setting up your ContainerIQ account"
	body := "You are almost there. Your onboarding is still incomplete and the dashboard stays locked until it is done.\n\nLog back in to pick up where you left off.\n\nContainerIQ"
	return Send(ctx, to, subject, body)
}
