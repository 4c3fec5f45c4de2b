package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"ContainerIQ/pkg/errors"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

// StatusOf 根据业务错误码映射 HTTP 状态码
func StatusOf(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case "OTP_RATE_LIMITED", "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests // 429
	case "INVALID_CREDENTIALS", "UNAUTHORIZED", "REFRESH_TOKEN_INVALID":
		return http.StatusUnauthorized // 401
	case "ONBOARDING_INCOMPLETE", "SIGNUP_INCOMPLETE", "ROLE_MISMATCH", "FILE_FORBIDDEN":
		return http.StatusForbidden // 403
	case "USER_NOT_FOUND", "PROFILE_NOT_FOUND", "FILE_NOT_FOUND":
		return http.StatusNotFound // 404
	case "EMAIL_ALREADY_REGISTERED", "EMAIL_ALREADY_VERIFIED", "ONBOARDING_STEP_INVALID":
		return http.StatusConflict // 409
	case "FILE_TOO_LARGE":
		return http.StatusRequestEntityTooLarge // 413
	case "INVALID_EMAIL", "WEAK_PASSWORD", "INVALID_USER_ID",
		"OTP_INVALID", "OTP_EXPIRED", "OTP_MALFORMED",
		"ROLE_UNSUPPORTED", "CONSENT_REQUIRED",
		"INVALID_REQUEST", "INVALID_PAYLOAD":
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	ErrorWithDetails(ctx, c, err, nil)
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(StatusOf(err), ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
