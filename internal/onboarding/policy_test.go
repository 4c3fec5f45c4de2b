package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/internal/model"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		role      model.UserType
		wantOK    bool
		wantSteps []string
		threshold int
		redirect  string
	}{
		{
			role:      model.UserTypeInsuranceCompany,
			wantOK:    true,
			wantSteps: []string{"license", "coverage", "policy", "claims", "documents"},
			threshold: 4,
			redirect:  "/onboarding/insurance",
		},
		{
			role:      model.UserTypeShipper,
			wantOK:    true,
			wantSteps: []string{"business", "cargo", "consents", "documents"},
			threshold: 4,
			redirect:  "/onboarding/shipper",
		},
		{
			role:      model.UserTypeFleetOperator,
			wantOK:    true,
			wantSteps: []string{"profile", "compliance", "documents"},
			threshold: 3,
			redirect:  "/onboarding/fleet",
		},
		{role: model.UserTypeShippingCompany, wantOK: false},
		{role: model.UserTypeTerminalOperator, wantOK: false},
		{role: model.UserTypeOther, wantOK: false},
		{role: model.UserType("made_up"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			p, ok := PolicyFor(tt.role)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantSteps, p.Steps)
			assert.Equal(t, tt.threshold, p.Threshold)
			assert.Equal(t, tt.redirect, p.RedirectPath)
			// 阈值不会超过步骤总数
			assert.LessOrEqual(t, p.Threshold, p.StepCount())
		})
	}
}

func TestPolicyStepLookup(t *testing.T) {
	p, ok := PolicyFor(model.UserTypeInsuranceCompany)
	require.True(t, ok)

	assert.Equal(t, "license", p.StepAt(0))
	assert.Equal(t, "documents", p.StepAt(4))
	assert.Equal(t, "", p.StepAt(5))
	assert.Equal(t, "", p.StepAt(-1))

	assert.Equal(t, 2, p.IndexOf("policy"))
	assert.Equal(t, -1, p.IndexOf("unknown"))
}
