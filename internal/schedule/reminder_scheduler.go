package schedule

// 引导提醒调度器：周期扫描注册后停滞的账号，给未完成引导的用户发唤回邮件

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"ContainerIQ/config"
	"ContainerIQ/internal/cache"
	"ContainerIQ/internal/queue"
	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/logger"
)

const (
	sweepLockKey   = "reminder_sweep"
	sweepBatchSize = 200
)

var (
	schedulerOnce sync.Once
	schedulerInst *ReminderScheduler
)

type ReminderScheduler struct {
	logger        *zap.Logger
	sweepRunning  bool
	sweepMu       sync.Mutex
	lastSweepTime time.Time
}

func GetScheduler() *ReminderScheduler {
	schedulerOnce.Do(func() {
		schedulerInst = &ReminderScheduler{
			logger: logger.Logger,
		}
	})
	return schedulerInst
}

// Run 按配置的周期循环执行扫描，直到 ctx 取消
func (s *ReminderScheduler) Run(ctx context.Context) {
	interval := time.Duration(config.Cfg.ReminderIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Reminder scheduler started",
		zap.Duration("interval", interval),
	)

	// 启动时先跑一轮，不等第一个 tick
	if err := s.SweepStaleOnboarding(ctx); err != nil {
		s.logger.Error("Initial reminder sweep failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminder scheduler stopped")
			return
		case <-ticker.C:
			if err := s.SweepStaleOnboarding(ctx); err != nil {
				s.logger.Error("Reminder sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepStaleOnboarding 扫描一轮停滞账号并投递提醒邮件消息
func (s *ReminderScheduler) SweepStaleOnboarding(ctx context.Context) error {
	s.sweepMu.Lock()
	if s.sweepRunning {
		s.sweepMu.Unlock()
		s.logger.Info("Reminder sweep already running, skipping")
		return nil
	}
	s.sweepRunning = true
	s.sweepMu.Unlock()

	defer func() {
		s.sweepMu.Lock()
		s.sweepRunning = false
		s.sweepMu.Unlock()
	}()

	startTime := time.Now()
	s.lastSweepTime = startTime

	// 分布式锁，多实例部署时只允许一个 scheduler 扫描
	lockTTL := time.Duration(config.Cfg.ReminderIntervalMinutes) * time.Minute / 2
	locked, err := cache.TryLock(ctx, sweepLockKey, lockTTL)
	if err != nil {
		return fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	if !locked {
		s.logger.Info("Another instance holds the sweep lock, skipping")
		return nil
	}
	defer func() {
		if err := cache.Unlock(ctx, sweepLockKey); err != nil {
			s.logger.Warn("Failed to release sweep lock", zap.Error(err))
		}
	}()

	staleAfter := time.Duration(config.Cfg.ReminderStaleHours) * time.Hour
	users, err := service.StaleOnboardingUsers(ctx, staleAfter, sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to query stale onboarding users: %w", err)
	}

	if len(users) == 0 {
		s.logger.Info("No stale onboarding users found")
		return nil
	}

	s.logger.Info("Found stale onboarding users",
		zap.Int("user_count", len(users)),
	)

	var published, skipped int
	for _, user := range users {
		sent, err := cache.IsReminderSent(ctx, user.PublicID)
		if err != nil {
			s.logger.Warn("Failed to check reminder sent status",
				zap.Int64("public_id", user.PublicID),
				zap.Error(err),
			)
			continue
		}
		if sent {
			skipped++
			continue
		}

		// 打散投递时间，避免同一批邮件挤在同一秒发出
		delay := time.Duration(published%60) * time.Second
		if err := queue.PublishOnboardingReminder(user.Email, user.PublicID, delay); err != nil {
			s.logger.Error("Failed to publish onboarding reminder",
				zap.Int64("public_id", user.PublicID),
				zap.Error(err),
			)
			continue
		}

		// 标记有效期与停滞窗口一致，窗口过后仍未推进可以再次提醒
		if err := cache.MarkReminderSent(ctx, user.PublicID, staleAfter); err != nil {
			s.logger.Warn("Failed to mark reminder sent after publishing",
				zap.Int64("public_id", user.PublicID),
				zap.Error(err),
			)
		}
		published++
	}

	s.logger.Info("Reminder sweep completed",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("published", published),
		zap.Int("skipped", skipped),
	)

	return nil
}
