package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	ri "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/redis"
)

const (
	// 查库为空时写入的哨兵值，短 TTL 挡穿透
	missSentinel    = "__EMPTY__"
	missSentinelTTL = 5 * time.Minute
	// 读取前的随机抖动上限，错开同一时刻的集中回源
	maxReadJitter = 200 * time.Millisecond
)

// ProtectedCache 带空值哨兵和读抖动的 JSON 缓存
type ProtectedCache struct {
	keyPrefix string
	ttl       time.Duration
}

func NewProtectedCache(keyPrefix string, ttl time.Duration) *ProtectedCache {
	return &ProtectedCache{keyPrefix: keyPrefix, ttl: ttl}
}

// Set 写入缓存；value 为 nil 时写哨兵值，用短 TTL 防止穿透
func (pc *ProtectedCache) Set(ctx context.Context, key string, value interface{}) error {
	cacheKey := redis.Key(pc.keyPrefix, key)

	if value == nil {
		return redis.Client().Set(ctx, cacheKey, missSentinel, missSentinelTTL).Err()
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return redis.Client().Set(ctx, cacheKey, data, pc.ttl).Err()
}

// Get 读缓存，返回是否命中；命中哨兵值时返回 true 但不填充 dest
func (pc *ProtectedCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	cacheKey := redis.Key(pc.keyPrefix, key)

	if err := sleepJitter(ctx); err != nil {
		logger.Logger.Warn("Cache read jitter interrupted",
			zap.String("key", key), zap.Error(err))
	}

	data, err := redis.Client().Get(ctx, cacheKey).Result()
	switch {
	case err == ri.Nil:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to get cache: %w", err)
	case data == missSentinel:
		return true, nil
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return true, nil
}

// Delete 删除缓存
func (pc *ProtectedCache) Delete(ctx context.Context, key string) error {
	return redis.Client().Del(ctx, redis.Key(pc.keyPrefix, key)).Err()
}

func sleepJitter(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(rand.Intn(int(maxReadJitter)))):
		return nil
	}
}

// 预定义的缓存实例。
// 用户快照与步骤完成状态永远不走缓存，门禁每次请求都要读库取最新值。
var DashboardKPIProtectedCache = NewProtectedCache("dashboard:kpi", 1*time.Minute)
