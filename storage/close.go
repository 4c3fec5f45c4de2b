package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
	"ContainerIQ/storage/mq"
	"ContainerIQ/storage/redis"
)

// Close 优雅关闭所有存储连接。
// 先停掉 MQ 不再收发消息，再关缓存，数据库放最后等落盘。
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage connections...")

	closers := []struct {
		name  string
		close func(context.Context) error
	}{
		{"message queue", mq.Close},
		{"redis", redis.Close},
		{"database", database.Close},
	}

	for _, c := range closers {
		if err := c.close(ctx); err != nil {
			logger.Logger.Error("Failed to close storage connection",
				zap.String("target", c.name), zap.Error(err))
			continue
		}
		logger.Logger.Info("Storage connection closed", zap.String("target", c.name))
	}
}
