package response

import (
	"net/http"

	"school-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// ==================== 统一响应处理 ====================
//
// 对外契约：
//   - 成功：各接口返回自己的 JSON 结构（列表接口返回活动对象，写接口返回 message）
//   - 失败：{"detail": "..."}，HTTP 状态码按业务错误码映射（404/400/429/500）
//
// 业务错误一律是可预期的用户侧问题，映射为 4xx；只有未识别的错误返回 500。

// ErrorBody 失败响应体
type ErrorBody struct {
	Detail string `json:"detail"`
}

// SetupGlobalErrorHandler 设置全局错误处理器
// 必须在 server.Start() 之前调用，此后 httpx.ErrorCtx 走统一转换
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandler(func(err error) (int, any) {
		bizErr := errorx.FromError(err)
		return HTTPStatus(bizErr.Code), &ErrorBody{Detail: bizErr.Message}
	})
}

// HTTPStatus 根据业务错误码映射 HTTP 状态码
func HTTPStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeActivityNotFound, errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeAlreadySignedUp, errorx.CodeNotRegistered,
		errorx.CodeActivityFull, errorx.CodeInvalidParams:
		return http.StatusBadRequest
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case errorx.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Success 成功响应
func Success(w http.ResponseWriter, data any) {
	httpx.OkJson(w, data)
}

// Fail 失败响应（用于中间件等不经过全局错误处理器的路径）
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	httpx.WriteJson(w, HTTPStatus(bizErr.Code), &ErrorBody{Detail: bizErr.Message})
}
