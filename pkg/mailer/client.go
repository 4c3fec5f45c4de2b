package mailer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/pkg/logger"
)

// Client 邮件客户端接口
type Client interface {
	// Send 发送单封邮件
	// to: 收件人地址
	// subject: 邮件主题
	// body: 纯文本正文
	Send(ctx context.Context, to, subject, body string) error
}

var (
	mailClient Client
	mailOnce   sync.Once
	mailErr    error
)

// Init 初始化邮件客户端
func Init() error {
	mailOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.MailProvider {
		case "smtp":
			mailClient, mailErr = NewSMTPClient()
		case "mock":
			mailClient = NewMockClient()
		default:
			mailErr = fmt.Errorf("unsupported mail provider: %s", cfg.MailProvider)
		}

		if mailErr != nil {
			logger.Logger.Error("Failed to initialize mail client", zap.Error(mailErr))
			return
		}

		logger.Logger.Info("Mail client initialized successfully",
			zap.String("provider", cfg.MailProvider),
		)
	})

	return mailErr
}

func GetClient() Client {
	if mailClient == nil {
		panic("Mail client not initialized, call mailer.Init() first")
	}
	return mailClient
}

func Send(ctx context.Context, to, subject, body string) error {
	return GetClient().Send(ctx, to, subject, body)
}
