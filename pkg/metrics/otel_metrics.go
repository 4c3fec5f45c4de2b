package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 邮件相关指标
	MailSentTotal    metric.Int64Counter
	MailSendDuration metric.Float64Histogram
	MailRetryTotal   metric.Int64Counter
	MailSkippedTotal metric.Int64Counter

	// 引导完成漏斗指标
	OnboardingStepTotal     metric.Int64Counter
	OnboardingCompleteTotal metric.Int64Counter
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("containeriq")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.MailSentTotal, err = meter.Int64Counter(
		"mail_sent_total",
		metric.WithDescription("Total number of mails sent"),
		metric.WithUnit("{mail}"),
	)
	if err != nil {
		return err
	}

	metrics.MailSendDuration, err = meter.Float64Histogram(
		"mail_send_duration_seconds",
		metric.WithDescription("Time spent sending mail in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.MailRetryTotal, err = meter.Int64Counter(
		"mail_retry_total",
		metric.WithDescription("Total number of mail retry attempts"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return err
	}

	metrics.MailSkippedTotal, err = meter.Int64Counter(
		"mail_skipped_total",
		metric.WithDescription("Total number of mail tasks skipped as non-retryable"),
		metric.WithUnit("{mail}"),
	)
	if err != nil {
		return err
	}

	metrics.OnboardingStepTotal, err = meter.Int64Counter(
		"onboarding_step_total",
		metric.WithDescription("Total number of onboarding step submissions"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	metrics.OnboardingCompleteTotal, err = meter.Int64Counter(
		"onboarding_complete_total",
		metric.WithDescription("Total number of accounts that finished onboarding"),
		metric.WithUnit("{account}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordMailSent 记录邮件发送结果
func (m *OTelMetrics) RecordMailSent(ctx context.Context, kind, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("status", status),
	}

	m.MailSentTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.MailSendDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordMailRetry 记录邮件重试
func (m *OTelMetrics) RecordMailRetry(ctx context.Context, kind string) {
	m.MailRetryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordMailSkipped 记录不可重试被丢弃的邮件任务
func (m *OTelMetrics) RecordMailSkipped(ctx context.Context, kind, reason string) {
	m.MailSkippedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("reason", reason),
	))
}

// RecordOnboardingStep 记录引导步骤提交
func (m *OTelMetrics) RecordOnboardingStep(ctx context.Context, role, step string) {
	m.OnboardingStepTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("step", step),
	))
}

// RecordOnboardingComplete 记录引导完成
func (m *OTelMetrics) RecordOnboardingComplete(ctx context.Context, role string) {
	m.OnboardingCompleteTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
	))
}
