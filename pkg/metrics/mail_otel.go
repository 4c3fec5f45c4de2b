package metrics

import (
	"context"
)

// 包级封装，nil 安全：metrics 未初始化时（如 tracing 关闭）直接忽略

// RecordMailSent 记录邮件发送结果
func RecordMailSent(kind, status string, duration float64) {
	ctx := context.Background()
	if m := GetMetrics(); m != nil {
		m.RecordMailSent(ctx, kind, status, duration)
	}
}

// RecordMailRetry 记录邮件重试
func RecordMailRetry(kind string) {
	ctx := context.Background()
	if m := GetMetrics(); m != nil {
		m.RecordMailRetry(ctx, kind)
	}
}

// RecordMailSkipped 记录不可重试被丢弃的邮件任务
func RecordMailSkipped(kind, reason string) {
	ctx := context.Background()
	if m := GetMetrics(); m != nil {
		m.RecordMailSkipped(ctx, kind, reason)
	}
}

// RecordOnboardingStep 记录引导步骤提交
func RecordOnboardingStep(role, step string) {
	ctx := context.Background()
	if m := GetMetrics(); m != nil {
		m.RecordOnboardingStep(ctx, role, step)
	}
}

// RecordOnboardingComplete 记录引导完成
func RecordOnboardingComplete(role string) {
	ctx := context.Background()
	if m := GetMetrics(); m != nil {
		m.RecordOnboardingComplete(ctx, role)
	}
}
