package onboarding

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/internal/model"
	"ContainerIQ/pkg/errors"
)

func okSubmit(ctx context.Context, step string, payload interface{}) error {
	return nil
}

func TestNewWizard(t *testing.T) {
	w, err := New(model.UserTypeShipper)
	require.NoError(t, err)

	assert.Equal(t, StateStep, w.State())
	assert.Equal(t, "business", w.CurrentStep())
	assert.Equal(t, 1, w.Current())
	assert.Equal(t, 0, w.Confirmed())
	assert.False(t, w.Complete())
}

func TestNewWizardUnsupportedRole(t *testing.T) {
	_, err := New(model.UserTypeShippingCompany)
	assert.ErrorIs(t, err, errors.RoleUnsupported)

	_, err = New(model.UserTypeOther)
	assert.ErrorIs(t, err, errors.RoleUnsupported)
}

func TestWizardAdvanceToComplete(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeFleetOperator)
	require.NoError(t, err)

	var submitted []string
	submit := func(ctx context.Context, step string, payload interface{}) error {
		submitted = append(submitted, step)
		return nil
	}

	require.NoError(t, w.Advance(ctx, "profile", nil, submit))
	assert.Equal(t, StateStep, w.State())
	assert.Equal(t, "compliance", w.CurrentStep())
	assert.Equal(t, 1, w.Confirmed())

	require.NoError(t, w.Advance(ctx, "compliance", nil, submit))
	assert.Equal(t, "documents", w.CurrentStep())

	require.NoError(t, w.Advance(ctx, "documents", nil, submit))
	assert.Equal(t, StateComplete, w.State())
	assert.True(t, w.Complete())
	assert.Equal(t, 3, w.Confirmed())

	// current 不会越过最后一步
	assert.Equal(t, 3, w.Current())

	assert.Equal(t, []string{"profile", "compliance", "documents"}, submitted)
}

func TestWizardRejectsOutOfOrderStep(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeInsuranceCompany)
	require.NoError(t, err)

	called := false
	submit := func(ctx context.Context, step string, payload interface{}) error {
		called = true
		return nil
	}

	// 超前步骤拒绝且不触发提交
	err = w.Advance(ctx, "claims", nil, submit)
	assert.ErrorIs(t, err, errors.OnboardingStepInvalid)
	assert.False(t, called)
	assert.Equal(t, 0, w.Confirmed())

	// 未知步骤同样拒绝
	err = w.Advance(ctx, "no_such_step", nil, submit)
	assert.ErrorIs(t, err, errors.OnboardingStepInvalid)
	assert.False(t, called)
}

func TestWizardFailureRetainsStepAndPayloads(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeInsuranceCompany)
	require.NoError(t, err)

	licensePayload := map[string]string{"insuranceLicenseNumber": "NAICOM-001"}
	require.NoError(t, w.Advance(ctx, "license", licensePayload, okSubmit))
	assert.Equal(t, 2, w.Current())

	boom := fmt.Errorf("db unavailable")
	failSubmit := func(ctx context.Context, step string, payload interface{}) error {
		return boom
	}

	err = w.Advance(ctx, "coverage", nil, failSubmit)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, w.State())
	assert.Equal(t, 2, w.Current())
	assert.Equal(t, 1, w.Confirmed())
	assert.ErrorIs(t, w.LastError(), boom)

	// 已确认步骤的 payload 保留
	assert.Equal(t, licensePayload, w.Payload("license"))

	// 失败后可以原地重试
	require.NoError(t, w.Advance(ctx, "coverage", nil, okSubmit))
	assert.Equal(t, StateStep, w.State())
	assert.Equal(t, "policy", w.CurrentStep())
	assert.NoError(t, w.LastError())
}

func TestWizardResubmitConfirmedStep(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeShipper)
	require.NoError(t, err)

	require.NoError(t, w.Advance(ctx, "business", map[string]string{"hsCode": "old"}, okSubmit))
	require.NoError(t, w.Advance(ctx, "cargo", nil, okSubmit))
	assert.Equal(t, 2, w.Confirmed())
	assert.Equal(t, "consents", w.CurrentStep())

	// 重新提交已确认步骤：payload 更新，计数不回退，位置不动
	updated := map[string]string{"hsCode": "new"}
	require.NoError(t, w.Advance(ctx, "business", updated, okSubmit))
	assert.Equal(t, 2, w.Confirmed())
	assert.Equal(t, "consents", w.CurrentStep())
	assert.Equal(t, updated, w.Payload("business"))
}

func TestWizardRetreat(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeShipper)
	require.NoError(t, err)

	// 第一步回退是空操作
	w.Retreat()
	assert.Equal(t, 1, w.Current())

	require.NoError(t, w.Advance(ctx, "business", nil, okSubmit))
	require.NoError(t, w.Advance(ctx, "cargo", nil, okSubmit))
	assert.Equal(t, "consents", w.CurrentStep())

	w.Retreat()
	assert.Equal(t, "cargo", w.CurrentStep())
	assert.Equal(t, StateStep, w.State())
	// 回退不动 confirmed
	assert.Equal(t, 2, w.Confirmed())
}

func TestWizardRetreatClearsFailure(t *testing.T) {
	ctx := context.Background()
	w, err := New(model.UserTypeShipper)
	require.NoError(t, err)

	require.NoError(t, w.Advance(ctx, "business", nil, okSubmit))

	failSubmit := func(ctx context.Context, step string, payload interface{}) error {
		return fmt.Errorf("validation rejected")
	}
	require.Error(t, w.Advance(ctx, "cargo", nil, failSubmit))
	assert.Equal(t, StateFailed, w.State())

	w.Retreat()
	assert.Equal(t, StateStep, w.State())
	assert.Equal(t, "business", w.CurrentStep())
	assert.NoError(t, w.LastError())
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		role     model.UserType
		counter  int
		current  int
		wantStep string
		complete bool
	}{
		{"insurance fresh", model.UserTypeInsuranceCompany, 0, 1, "license", false},
		{"insurance mid", model.UserTypeInsuranceCompany, 2, 3, "policy", false},
		{"insurance at threshold", model.UserTypeInsuranceCompany, 4, 5, "documents", true},
		{"insurance all steps", model.UserTypeInsuranceCompany, 5, 5, "documents", true},
		{"insurance counter overflow", model.UserTypeInsuranceCompany, 99, 5, "documents", true},
		{"insurance negative counter", model.UserTypeInsuranceCompany, -1, 1, "license", false},
		{"shipper last step", model.UserTypeShipper, 3, 4, "documents", false},
		{"shipper done", model.UserTypeShipper, 4, 4, "documents", true},
		{"fleet done", model.UserTypeFleetOperator, 3, 3, "documents", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Initialize(tt.role, tt.counter)
			require.NoError(t, err)
			assert.Equal(t, tt.current, w.Current())
			assert.Equal(t, tt.wantStep, w.CurrentStep())
			assert.Equal(t, tt.complete, w.Complete())
		})
	}
}

func TestInitializeIdempotent(t *testing.T) {
	// 同一计数器恢复任意多次，位置和状态一致
	for i := 0; i < 5; i++ {
		w, err := Initialize(model.UserTypeInsuranceCompany, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, w.Current())
		assert.Equal(t, "policy", w.CurrentStep())
		assert.Equal(t, StateStep, w.State())
	}
}

func TestWizardOptionalStepKeepsComplete(t *testing.T) {
	ctx := context.Background()

	// 保险公司到达阈值后还剩 documents 可选步骤，提交它不改变完成态
	w, err := Initialize(model.UserTypeInsuranceCompany, 4)
	require.NoError(t, err)
	require.True(t, w.Complete())
	require.Equal(t, "documents", w.CurrentStep())

	require.NoError(t, w.Advance(ctx, "documents", nil, okSubmit))
	assert.True(t, w.Complete())
	assert.Equal(t, 5, w.Confirmed())
}
