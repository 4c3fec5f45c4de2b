package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"ContainerIQ/config"
)

// SMTPClient 基于 net/smtp 的实现，实现 Client 接口
type SMTPClient struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPClient() (*SMTPClient, error) {
	cfg := config.Cfg

	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is required for smtp provider")
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &SMTPClient{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		from: cfg.MailFrom,
		auth: auth,
	}, nil
}

func (c *SMTPClient) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("From: " + c.from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	if err := smtp.SendMail(c.addr, c.auth, c.from, []string{to}, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to send mail via smtp: %w", err)
	}

	return nil
}
