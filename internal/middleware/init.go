package middleware

import (
	"go.uber.org/zap"

	"ContainerIQ/pkg/logger"
)

// Init 构建需要预装配的中间件，目前只有 JWT 认证。
// session / csrf / 限流中间件不依赖启动时状态，在 router 里按需创建。
func Init() error {
	if err := initAuthMiddleware(); err != nil {
		logger.Logger.Error("Failed to initialize auth middleware", zap.Error(err))
		return err
	}

	return nil
}
