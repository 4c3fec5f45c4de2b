package utils

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateOTP 校验验证码格式，必须是 6 位数字（在任何网络/缓存访问之前拦截）
func ValidateOTP(code string) bool {
	return otpPattern.MatchString(code)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}
