package cache

import (
	"context"
	"time"

	"ContainerIQ/config"
	"ContainerIQ/storage/redis"
)

/*
邮箱验证码流程：
    注册 / 重发
        ↓
    [Service] 生成 6 位验证码
        ↓
    存储到 Redis（TTL 可配置，默认 600 秒）
        ↓
    投递邮件任务到 MQ，worker 异步发送
        ↓
    用户提交 /auth/verify/email 时比对后删除
*/

// 验证码存储：ciq:otp:{emailHash}
// 每日发送计数：ciq:otp:count:{emailHash}:{date}
const (
	otpPrefix = "otp"
)

// SetOTP 存储邮箱验证码
// Key: ciq:otp:{emailHash}
func SetOTP(ctx context.Context, emailHash, code string) error {
	key := redis.Key(otpPrefix, emailHash)
	ttl := time.Duration(config.Cfg.OTPExpireSeconds) * time.Second

	return redis.Client().Set(ctx, key, code, ttl).Err()
}

func GetOTP(ctx context.Context, emailHash string) (string, error) {
	key := redis.Key(otpPrefix, emailHash)
	return redis.Client().Get(ctx, key).Result()
}

func DeleteOTP(ctx context.Context, emailHash string) error {
	key := redis.Key(otpPrefix, emailHash)
	return redis.Client().Del(ctx, key).Err()
}

// IncrOTPCount 增加今日发送计数，返回当前次数
// Key: ciq:otp:count:{emailHash}:{date}
// 当天第一次访问时设置到次日零点过期
func IncrOTPCount(ctx context.Context, emailHash string) (int, error) {
	date := time.Now().Format("2006-01-02")
	key := redis.Key(otpPrefix, "count", emailHash, date)

	count, err := redis.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err // 具体在业务层处理报错
	}

	if count == 1 {
		now := time.Now()
		tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		redis.Client().Expire(ctx, key, tomorrow.Sub(now))
	}

	return int(count), nil
}
