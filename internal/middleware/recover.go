package middleware

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/pkg/response"
)

const maxLoggedBodyBytes = 1024

// RecoverMiddleware 捕获 handler panic，记日志并返回统一的 500 响应。
// 生产环境只返回通用错误，panic 内容和调用栈只进日志。
func RecoverMiddleware() app.HandlerFunc {
	exposeDetails := !config.Cfg.IsProduction()

	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				stack := callerStack(3)
				logPanic(ctx, c, r, stack)
				writePanicResponse(c, r, stack, exposeDetails)
			}
		}()

		c.Next(ctx)
	}
}

func writePanicResponse(c *app.RequestContext, r interface{}, stack string, exposeDetails bool) {
	if !exposeDetails {
		response.Error(context.Background(), c, errors.InternalError)
		return
	}

	errDef := errors.InternalError.WithMessage(fmt.Sprintf("Internal error: %v", r))
	response.ErrorWithDetails(context.Background(), c, errDef, map[string]interface{}{
		"panic":     fmt.Sprintf("%v", r),
		"stack":     stack,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// callerStack 收集当前 goroutine 的调用栈，skip 跳过 recover 链自身的帧
func callerStack(skip int) string {
	var b strings.Builder
	b.WriteString("goroutine panic:\n")

	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		fmt.Fprintf(&b, "  %s:%d\n    %s\n", file, line, fn.Name())
	}

	return b.String()
}

func logPanic(ctx context.Context, c *app.RequestContext, r interface{}, stack string) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", r)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_agent", string(c.UserAgent())),
	}

	if requestID := string(c.GetHeader("X-Request-Id")); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID, exists := GetUserID(ctx, c); exists {
		fields = append(fields, zap.String("user_id", userID))
	}

	// 请求体只记小的文本负载，跳过 multipart 上传
	if body := c.Request.Body(); len(body) > 0 && len(body) < maxLoggedBodyBytes {
		if !strings.Contains(string(c.ContentType()), "multipart") {
			fields = append(fields, zap.String("body", string(body)))
		}
	}

	fields = append(fields, zap.String("stack", stack))
	logger.Logger.Error("[PANIC RECOVERED]", fields...)
}
