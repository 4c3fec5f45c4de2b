package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ContainerIQ/internal/model"
	"ContainerIQ/storage/database"
)

// StaleOnboardingUsers 找出引导未完成且长时间没推进的用户，给提醒调度用
// 只提醒已经验证过邮箱的账号
func StaleOnboardingUsers(ctx context.Context, staleAfter time.Duration, limit int) ([]model.User, error) {
	db := database.DB().WithContext(ctx)
	cutoff := time.Now().Add(-staleAfter)

	incomplete := db.Session(&gorm.Session{NewDB: true}).
		Where("form_completed < ?", model.SignupThreshold).
		Or("user_type = ? AND insurance_form_completed < ?", model.UserTypeInsuranceCompany, model.InsuranceFormThreshold).
		Or("user_type = ? AND shipper_form_completed < ?", model.UserTypeShipper, model.ShipperFormThreshold).
		Or("user_type = ? AND fleet_form_completed < ?", model.UserTypeFleetOperator, model.FleetFormThreshold)

	var users []model.User
	err := db.Where("updated_at < ?", cutoff).
		Where("email_verified = ?", true).
		Where(incomplete).
		Order("updated_at").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query stale onboarding users: %w", err)
	}

	return users, nil
}
