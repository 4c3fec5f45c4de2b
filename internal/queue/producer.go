package queue

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/snowflake"
	"ContainerIQ/storage/mq"
)

func fillMessageID(msg *MailMessage) error {
	if msg.MessageID != "" {
		return nil
	}

	id, err := snowflake.NextID()
	if err != nil {
		logger.Logger.Error("Failed to generate message ID",
			zap.String("kind", msg.Kind),
			zap.Error(err),
		)
		return fmt.Errorf("failed to generate message ID: %w", err)
	}
	msg.MessageID = fmt.Sprintf("mail_%s_%d", msg.Kind, id)
	return nil
}

// PublishOTPMail 发布验证码邮件任务
func PublishOTPMail(to, code string) error {
	msg := MailMessage{
		Kind:        MailKindOTP,
		To:          to,
		OTPCode:     code,
		ScheduledAt: time.Now().Format(time.RFC3339),
	}
	if err := fillMessageID(&msg); err != nil {
		return err
	}

	err := mq.PublishMessage(
		"mail.topic",
		"mail.send.otp",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish OTP mail task",
			zap.String("message_id", msg.MessageID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published OTP mail task",
		zap.String("message_id", msg.MessageID),
	)

	return nil
}

// PublishWelcomeMail 发布欢迎邮件任务
func PublishWelcomeMail(to string, publicUserID int64) error {
	msg := MailMessage{
		Kind:        MailKindWelcome,
		To:          to,
		UserID:      publicUserID,
		ScheduledAt: time.Now().Format(time.RFC3339),
	}
	if err := fillMessageID(&msg); err != nil {
		return err
	}

	err := mq.PublishMessage(
		"mail.topic",
		"mail.send.welcome",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish welcome mail task",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", publicUserID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published welcome mail task",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", publicUserID),
	)

	return nil
}

// PublishOnboardingReminder 发布引导提醒邮件任务（延迟消息）
// delay 为 0 时立即投递
func PublishOnboardingReminder(to string, publicUserID int64, delay time.Duration) error {
	msg := MailMessage{
		Kind:        MailKindReminder,
		To:          to,
		UserID:      publicUserID,
		ScheduledAt: time.Now().Format(time.RFC3339),
	}
	if err := fillMessageID(&msg); err != nil {
		return err
	}

	var err error
	if delay > 0 {
		err = mq.PublishDelayedMessage(
			"scheduler.delayed",
			"mail.send.reminder",
			delay,
			msg,
		)
	} else {
		err = mq.PublishMessage(
			"mail.topic",
			"mail.send.reminder",
			msg,
		)
	}

	if err != nil {
		logger.Logger.Error("Failed to publish onboarding reminder task",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", publicUserID),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published onboarding reminder task",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", publicUserID),
		zap.Duration("delay", delay),
	)

	return nil
}
