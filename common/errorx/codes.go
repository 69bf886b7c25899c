/**
 * @projectName: school-activities
 * @package: errorx
 * @className: codes
 * @author: maxiaoyang
 * @description: 统一错误码定义
 * @date: 2026-02-12
 * @version: 1.0
 */

package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 3xxx    - 活动服务错误

const (
	CodeSuccess            = 0    // 成功
	CodeInternalError      = 1000 // 内部服务器错误
	CodeInvalidParams      = 1001 // 参数校验失败
	CodeNotFound           = 1004 // 资源不存在
	CodeTooManyRequests    = 1005 // 请求过于频繁
	CodeServiceUnavailable = 1006 // 服务暂不可用

	// 活动服务 3001-3020
	CodeActivityNotFound = 3001 // 活动不存在
	CodeAlreadySignedUp  = 3002 // 已报名该活动
	CodeNotRegistered    = 3003 // 未报名该活动
	CodeActivityFull     = 3004 // 活动已满员（仅在开启容量限制时出现）
)

// codeMessages 错误码对应的默认消息
// 面向学生和家长的提示，与前端页面保持一致的英文文案
var codeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInternalError:      "Internal server error",
	CodeInvalidParams:      "Invalid request parameters",
	CodeNotFound:           "Resource not found",
	CodeTooManyRequests:    "Too many requests, please try again later",
	CodeServiceUnavailable: "Service temporarily unavailable",

	CodeActivityNotFound: "Activity not found",
	CodeAlreadySignedUp:  "Student is already signed up for this activity",
	CodeNotRegistered:    "Student is not registered for this activity",
	CodeActivityFull:     "Activity is already full",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

// IsValidCode 判断是否为有效的业务错误码
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
