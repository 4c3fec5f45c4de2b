package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ContainerIQ/internal/model"
)

func insuranceUser(formCompleted, insuranceCompleted int) *model.User {
	return &model.User{
		UserType:               model.UserTypeInsuranceCompany,
		FormCompleted:          formCompleted,
		InsuranceFormCompleted: insuranceCompleted,
	}
}

func TestResolveAccessUnauthenticated(t *testing.T) {
	got := ResolveAccess(Session{})
	assert.False(t, got.Allowed)
	assert.Equal(t, RedirectLogin, got.RedirectPath)

	// 有 token 没有用户快照同样视为未登录
	got = ResolveAccess(Session{Token: "some-token"})
	assert.False(t, got.Allowed)
	assert.Equal(t, RedirectLogin, got.RedirectPath)

	// 有用户没有 token 也一样
	got = ResolveAccess(Session{User: insuranceUser(3, 4)})
	assert.Equal(t, RedirectLogin, got.RedirectPath)
}

func TestResolveAccessSignupIncomplete(t *testing.T) {
	for counter := 0; counter < model.SignupThreshold; counter++ {
		got := ResolveAccess(Session{Token: "t", User: insuranceUser(counter, 0)})
		assert.False(t, got.Allowed)
		assert.Equal(t, RedirectSignup, got.RedirectPath)
	}
}

func TestResolveAccessOnboardingIncomplete(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		redirect string
	}{
		{
			name:     "insurance mid wizard",
			user:     insuranceUser(3, 2),
			redirect: "/onboarding/insurance",
		},
		{
			name: "shipper fresh",
			user: &model.User{
				UserType:      model.UserTypeShipper,
				FormCompleted: 3,
			},
			redirect: "/onboarding/shipper",
		},
		{
			name: "fleet one step left",
			user: &model.User{
				UserType:           model.UserTypeFleetOperator,
				FormCompleted:      3,
				FleetFormCompleted: 2,
			},
			redirect: "/onboarding/fleet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAccess(Session{Token: "t", User: tt.user})
			assert.False(t, got.Allowed)
			assert.Equal(t, tt.redirect, got.RedirectPath)
		})
	}
}

func TestResolveAccessAllowed(t *testing.T) {
	got := ResolveAccess(Session{Token: "t", User: insuranceUser(3, 4)})
	assert.True(t, got.Allowed)
	assert.Empty(t, got.RedirectPath)

	// 计数器超过阈值仍然放行
	got = ResolveAccess(Session{Token: "t", User: insuranceUser(5, 9)})
	assert.True(t, got.Allowed)
}

func TestResolveAccessRoleWithoutPolicy(t *testing.T) {
	// 没有引导流程的角色完成基础注册即放行
	for _, role := range []model.UserType{
		model.UserTypeShippingCompany,
		model.UserTypeTerminalOperator,
		model.UserTypeOther,
		model.UserType("unknown_role"),
	} {
		got := ResolveAccess(Session{Token: "t", User: &model.User{
			UserType:      role,
			FormCompleted: model.SignupThreshold,
		}})
		assert.True(t, got.Allowed, string(role))
	}
}

func TestResolveAccessCheckOrder(t *testing.T) {
	// 基础注册和角色引导都未完成时，先跳注册
	got := ResolveAccess(Session{Token: "t", User: insuranceUser(1, 0)})
	assert.Equal(t, RedirectSignup, got.RedirectPath)
}
