package onboarding

import (
	"ContainerIQ/internal/model"
)

// 受保护页面拒绝访问时的跳转目标
const (
	RedirectLogin  = "/login"
	RedirectSignup = "/signup"
)

// Session 一次访问的判定输入
type Session struct {
	Token string
	User  *model.User
}

// Access 门控判定结果
type Access struct {
	Allowed      bool   `json:"allowed"`
	RedirectPath string `json:"redirectPath,omitempty"`
}

// ResolveAccess 判定会话能否进入受保护页面，纯函数，不做任何 I/O
// 判定顺序：未登录 -> 基础注册未完成 -> 角色引导未完成 -> 放行
// 没有引导流程的角色默认放行
func ResolveAccess(s Session) Access {
	if s.Token == "" || s.User == nil {
		return Access{RedirectPath: RedirectLogin}
	}

	if !s.User.SignupComplete() {
		return Access{RedirectPath: RedirectSignup}
	}

	if !s.User.OnboardingComplete() {
		p, ok := PolicyFor(s.User.UserType)
		if !ok {
			// RoleCounter 和 PolicyFor 覆盖同一组角色，不会走到这里
			return Access{Allowed: true}
		}
		return Access{RedirectPath: p.RedirectPath}
	}

	return Access{Allowed: true}
}
