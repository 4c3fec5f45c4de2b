package onboarding

import (
	"ContainerIQ/internal/model"
)

// Policy 某个角色的引导流程定义
// Steps 是有序步骤名，Threshold 是计数器到达即视为完成的值
// Threshold 之后的步骤（如保险公司的 documents）是可选补充，不再推进计数器
type Policy struct {
	Role         model.UserType
	Steps        []string
	Threshold    int
	RedirectPath string
}

// StepCount 步骤总数，含阈值后的可选步骤
func (p Policy) StepCount() int {
	return len(p.Steps)
}

// StepAt 返回 index 处的步骤名，越界返回空串
func (p Policy) StepAt(index int) string {
	if index < 0 || index >= len(p.Steps) {
		return ""
	}
	return p.Steps[index]
}

// IndexOf 返回步骤名对应的下标，未知步骤返回 -1
func (p Policy) IndexOf(step string) int {
	for i, s := range p.Steps {
		if s == step {
			return i
		}
	}
	return -1
}

var policies = map[model.UserType]Policy{
	model.UserTypeInsuranceCompany: {
		Role:         model.UserTypeInsuranceCompany,
		Steps:        []string{"license", "coverage", "policy", "claims", "documents"},
		Threshold:    model.InsuranceFormThreshold,
		RedirectPath: "/onboarding/insurance",
	},
	model.UserTypeShipper: {
		Role:         model.UserTypeShipper,
		Steps:        []string{"business", "cargo", "consents", "documents"},
		Threshold:    model.ShipperFormThreshold,
		RedirectPath: "/onboarding/shipper",
	},
	model.UserTypeFleetOperator: {
		Role:         model.UserTypeFleetOperator,
		Steps:        []string{"profile", "compliance", "documents"},
		Threshold:    model.FleetFormThreshold,
		RedirectPath: "/onboarding/fleet",
	},
}

// PolicyFor 返回角色对应的引导流程定义
// 没有引导流程的角色（shipping_company 等）返回 ok=false，默认视为完成
func PolicyFor(role model.UserType) (Policy, bool) {
	p, ok := policies[role]
	return p, ok
}
