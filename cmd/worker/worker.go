package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/internal/queue"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/mailer"
	"ContainerIQ/pkg/metrics"
	pkgmq "ContainerIQ/pkg/mq"
	pkgotel "ContainerIQ/pkg/otel"
	"ContainerIQ/pkg/snowflake"
	"ContainerIQ/storage"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// worker 是真正发邮件的进程，投递指标在这里上报
	if config.Cfg.TracingEnabled {
		shutdownOTel, err := pkgotel.InitOpenTelemetry(ctx, pkgotel.Config{
			ServiceName:    config.Cfg.ServiceName + "-worker",
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.OTLPEndpoint,
			SampleRatio:    config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry, tracing disabled", zap.Error(err))
		} else {
			defer func() {
				if err := shutdownOTel(context.Background()); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()

			if err := metrics.InitMetrics(); err != nil {
				logger.Logger.Warn("Failed to initialize business metrics", zap.Error(err))
			}
			if err := pkgmq.InitMQMetrics(otel.Meter("containeriq-storage")); err != nil {
				logger.Logger.Warn("Failed to initialize mq metrics", zap.Error(err))
			}
		}
	}

	// 邮件投递客户端，worker 是唯一真正发邮件的进程
	if err := mailer.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	logger.Logger.Info("Worker service starting",
		zap.String("service", "containeriq-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	// 阻塞消费 mail.send 队列，直到通道关闭或 ctx 取消
	if err := queue.StartMailConsumer(ctx); err != nil {
		logger.Logger.Error("Mail consumer exited with error", zap.Error(err))
	}

	logger.Logger.Info("Worker service shutting down gracefully")
}
