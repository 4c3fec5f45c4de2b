package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/internal/schedule"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/snowflake"
	"ContainerIQ/storage"
)

func main() {
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	// 提醒消息也要生成消息 ID，所以 scheduler 同样需要 snowflake
	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", "containeriq-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	// 唤回提醒扫描循环，阻塞直到 ctx 取消
	schedule.GetScheduler().Run(ctx)

	logger.Logger.Info("Scheduler service shutting down gracefully")
}
