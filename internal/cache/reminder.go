package cache

import (
	"context"
	"fmt"
	"time"

	"ContainerIQ/storage/redis"
)

// 引导提醒标记，防止同一停滞用户在每轮扫描中被重复提醒

const reminderPrefix = "reminder:sent"

func MarkReminderSent(ctx context.Context, publicID int64, ttl time.Duration) error {
	key := redis.Key(reminderPrefix, fmt.Sprintf("%d", publicID))
	return redis.Client().Set(ctx, key, 1, ttl).Err()
}

func IsReminderSent(ctx context.Context, publicID int64) (bool, error) {
	key := redis.Key(reminderPrefix, fmt.Sprintf("%d", publicID))
	result, err := redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return result > 0, nil
}
