package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/onboarding"
	"ContainerIQ/pkg/metrics"
	"ContainerIQ/storage/database"
)

// 角色向导三个 service 共用的落库小件

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func appendStep(steps []string, step string) []string {
	for _, s := range steps {
		if s == step {
			return steps
		}
	}
	return append(steps, step)
}

// stepOrdinal 返回步骤在角色流程中的 1 起序号
func stepOrdinal(role model.UserType, step string) int {
	p, ok := onboarding.PolicyFor(role)
	if !ok {
		return 0
	}
	return p.IndexOf(step) + 1
}

// bumpRoleCounter 单调推进角色计数器
// GREATEST 保证不回退，阈值后的可选步骤不再抬高计数
func bumpRoleCounter(ctx context.Context, user *model.User, column string, ordinal, threshold int) error {
	if ordinal > threshold {
		ordinal = threshold
	}

	db := database.DB().WithContext(ctx)
	err := db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Update(column, gorm.Expr(fmt.Sprintf("GREATEST(%s, ?)", column), ordinal)).Error
	if err != nil {
		return fmt.Errorf("failed to bump %s: %w", column, err)
	}
	return nil
}

// wizardStepResponse 提交成功后的统一响应，用数据库里的最新用户重建
func wizardStepResponse(ctx context.Context, publicID int64, step string, completedSteps []string) (*dto.WizardStepResponse, error) {
	fresh, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	metrics.RecordOnboardingStep(string(fresh.UserType), step)
	if fresh.OnboardingComplete() {
		metrics.RecordOnboardingComplete(string(fresh.UserType))
	}

	return &dto.WizardStepResponse{
		Step:               step,
		CompletedSteps:     completedSteps,
		OnboardingComplete: fresh.OnboardingComplete(),
		User:               dto.NewUserSnapshot(fresh),
	}, nil
}
