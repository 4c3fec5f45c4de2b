package mq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"ContainerIQ/config"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()

		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		connErr = declareTopology()
	})

	return connErr
}

func Connection() *amqp.Connection {
	return conn
}

// declareTopology 声明交换机和队列，幂等，worker 和 server 都会调用
// mail.topic 承载即时邮件任务，scheduler.delayed 承载延迟投递
// （x-delayed-message 交换机，依赖 rabbitmq_delayed_message_exchange 插件）
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open topology channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		"mail.topic", "topic",
		true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare mail.topic: %w", err)
	}

	if err := ch.ExchangeDeclare(
		"scheduler.delayed", "x-delayed-message",
		true, false, false, false,
		amqp.Table{"x-delayed-type": "topic"},
	); err != nil {
		return fmt.Errorf("failed to declare scheduler.delayed: %w", err)
	}

	if _, err := ch.QueueDeclare(
		"mail.send",
		true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare mail.send queue: %w", err)
	}

	if err := ch.QueueBind("mail.send", "mail.send.*", "mail.topic", false, nil); err != nil {
		return fmt.Errorf("failed to bind mail.send to mail.topic: %w", err)
	}

	if err := ch.QueueBind("mail.send", "mail.send.*", "scheduler.delayed", false, nil); err != nil {
		return fmt.Errorf("failed to bind mail.send to scheduler.delayed: %w", err)
	}

	return nil
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
