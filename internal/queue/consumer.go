package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/internal/cache"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/mailer"
	"ContainerIQ/pkg/metrics"
	"ContainerIQ/storage/mq"
)

// StartMailConsumer 启动邮件消费者，阻塞直到通道关闭
// 幂等性依赖 redis SETNX 标记，处理失败取消标记允许重试
func StartMailConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg MailMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			// 解不开的消息重试也没用，直接 ack 跳过
			logger.Logger.Error("Failed to unmarshal mail message, dropping",
				zap.Error(err),
			)
			return nil
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，宁可重复也不丢
		} else if !processed {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.String("kind", msg.Kind),
			)
			return nil
		}

		logger.Logger.Info("Processing mail task",
			zap.String("message_id", msg.MessageID),
			zap.String("kind", msg.Kind),
		)

		sendStart := time.Now()
		if err := sendMail(ctx, msg); err != nil {
			if errors.IsSkipMessageError(err) {
				metrics.RecordMailSkipped(msg.Kind, err.Error())
				// 不可重试的任务标记完成后跳过
				if markErr := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); markErr != nil {
					logger.Logger.Warn("Failed to mark skipped message as processed",
						zap.String("message_id", msg.MessageID),
						zap.Error(markErr),
					)
				}
				logger.Logger.Warn("Mail task skipped",
					zap.String("message_id", msg.MessageID),
					zap.Error(err),
				)
				return nil
			}

			// 其他错误：取消标记，允许重试
			metrics.RecordMailSent(msg.Kind, "failed", time.Since(sendStart).Seconds())
			metrics.RecordMailRetry(msg.Kind)
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to send mail: %w", err)
		}

		metrics.RecordMailSent(msg.Kind, "success", time.Since(sendStart).Seconds())

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "mail.send",
		ConsumerTag:   "mail_consumer",
		PrefetchCount: 20,
		Handler:       handler,
	})
}

func sendMail(ctx context.Context, msg MailMessage) error {
	if msg.To == "" {
		return &errors.SkipMessageError{Reason: fmt.Sprintf("mail task %s has no recipient", msg.MessageID)}
	}

	switch msg.Kind {
	case MailKindOTP:
		if msg.OTPCode == "" {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("otp mail task %s has no code", msg.MessageID)}
		}
		expireMinutes := config.Cfg.OTPExpireSeconds / 60
		return mailer.SendOTPMail(ctx, msg.To, msg.OTPCode, expireMinutes)
	case MailKindWelcome:
		return mailer.SendWelcomeMail(ctx, msg.To)
	case MailKindReminder:
		return mailer.SendOnboardingReminderMail(ctx, msg.To)
	default:
		return &errors.SkipMessageError{Reason: fmt.Sprintf("unknown mail kind %q", msg.Kind)}
	}
}
