package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	mqMessagesTotal   metric.Int64Counter
	mqMessageDuration metric.Float64Histogram
	mqPublishErrors   metric.Int64Counter
	mqConsumeErrors   metric.Int64Counter
)

// InitMQMetrics 初始化 RabbitMQ 指标，未调用时各埋点为空操作
func InitMQMetrics(meter metric.Meter) error {
	var err error

	mqMessagesTotal, err = meter.Int64Counter(
		"mq.messages.total",
		metric.WithDescription("Total number of RabbitMQ messages"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return err
	}

	mqMessageDuration, err = meter.Float64Histogram(
		"mq.message.duration",
		metric.WithDescription("RabbitMQ message publish/handle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5),
	)
	if err != nil {
		return err
	}

	mqPublishErrors, err = meter.Int64Counter(
		"mq.publish.errors",
		metric.WithDescription("Number of RabbitMQ publish errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	mqConsumeErrors, err = meter.Int64Counter(
		"mq.consume.errors",
		metric.WithDescription("Number of RabbitMQ consume errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// MessageHeaderCarrier 把 amqp 消息头适配成 TextMapCarrier，
// 用于在消息里传递 trace 上下文
type MessageHeaderCarrier struct {
	Headers amqp.Table
}

func (m *MessageHeaderCarrier) Get(key string) string {
	if val, ok := m.Headers[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func (m *MessageHeaderCarrier) Set(key, value string) {
	if m.Headers == nil {
		m.Headers = make(amqp.Table)
	}
	m.Headers[key] = value
}

func (m *MessageHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(m.Headers))
	for k := range m.Headers {
		keys = append(keys, k)
	}
	return keys
}

// TracePublish 包装一次发布：注入 trace 上下文到消息头，记录 span 和指标。
// msg.Headers 会被原地修改，publish 回调负责真正的发送
func TracePublish(ctx context.Context, serviceName, exchange, routingKey string, msg *amqp.Publishing, publish func(context.Context) error) error {
	tracer := otel.Tracer(serviceName + ".rabbitmq")

	ctx, span := tracer.Start(ctx, "rabbitmq.publish."+exchange,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystem("rabbitmq"),
			attribute.String("messaging.destination.name", exchange),
			attribute.String("messaging.rabbitmq.routing_key", routingKey),
		),
	)
	defer span.End()

	if msg.Headers == nil {
		msg.Headers = make(amqp.Table)
	}
	otel.GetTextMapPropagator().Inject(ctx, &MessageHeaderCarrier{Headers: msg.Headers})

	start := time.Now()
	err := publish(ctx)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		if mqPublishErrors != nil {
			mqPublishErrors.Add(ctx, 1)
		}
	}

	recordMessage(ctx, "publish", exchange, routingKey, status, duration)
	return err
}

// TraceDelivery 包装一次消费：从消息头提取 trace 上下文，记录 span 和指标。
// handle 返回错误时计入 consume 错误数
func TraceDelivery(serviceName, queue string, msg amqp.Delivery, handle func(context.Context) error) error {
	tracer := otel.Tracer(serviceName + ".rabbitmq")

	ctx := otel.GetTextMapPropagator().Extract(context.Background(), &MessageHeaderCarrier{Headers: msg.Headers})
	ctx, span := tracer.Start(ctx, "rabbitmq.consume."+queue,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystem("rabbitmq"),
			semconv.MessagingDestinationName(queue),
			semconv.MessagingMessageID(msg.MessageId),
			attribute.String("messaging.rabbitmq.routing_key", msg.RoutingKey),
		),
	)
	defer span.End()

	start := time.Now()
	err := handle(ctx)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		if mqConsumeErrors != nil {
			mqConsumeErrors.Add(ctx, 1)
		}
	}

	recordMessage(ctx, "consume", msg.Exchange, msg.RoutingKey, status, duration)
	return err
}

func recordMessage(ctx context.Context, operation, exchange, routingKey, status string, duration float64) {
	labels := []attribute.KeyValue{
		semconv.MessagingSystem("rabbitmq"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.rabbitmq.exchange", exchange),
		attribute.String("messaging.rabbitmq.routing_key", routingKey),
		attribute.String("messaging.status", status),
	}

	if mqMessagesTotal != nil {
		mqMessagesTotal.Add(ctx, 1, metric.WithAttributes(labels...))
	}
	if mqMessageDuration != nil {
		mqMessageDuration.Record(ctx, duration, metric.WithAttributes(labels...))
	}
}
