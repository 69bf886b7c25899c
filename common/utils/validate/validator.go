package validate

import (
	"regexp"
	"strings"
)

// 预编译正则表达式，提升性能
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail 验证邮箱格式
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsNotBlank 判断字符串不为空白
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsBlank 判断字符串为空白
func IsBlank(s string) bool {
	return !IsNotBlank(s)
}
