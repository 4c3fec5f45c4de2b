package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ContainerIQ/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

var errRedisDown = errors.New("redis down")

func failN(cb *CircuitBreaker, n int) {
	for i := 0; i < n; i++ {
		_ = cb.Call(context.Background(), func() error { return errRedisDown })
	}
}

func TestCircuitBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)

	failN(cb, 2)
	assert.Equal(t, StateClosed, cb.GetState())

	failN(cb, 1)
	assert.Equal(t, StateOpen, cb.GetState())

	// 熔断后不再执行操作
	err := cb.Call(context.Background(), func() error {
		t.Fatal("operation should not run while open")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is open")
}

func TestCircuitBreakerSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)

	failN(cb, 2)
	require.NoError(t, cb.Call(context.Background(), func() error { return nil }))

	// 计数已清零，再失败两次也不该熔断
	failN(cb, 2)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	failN(cb, 1)
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(20 * time.Millisecond)

	// 超过 resetTimeout 后放行探测请求，成功则闭合
	err := cb.Call(context.Background(), func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreakerReopensOnHalfOpenFailure(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	failN(cb, 1)
	time.Sleep(20 * time.Millisecond)

	failN(cb, 1)
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(99).String())
}
