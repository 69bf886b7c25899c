package middleware

import (
	"net/http"

	"school-activities/common/ctxdata"

	"github.com/google/uuid"
)

// RequestIDMiddleware 请求ID中间件
// 为每个请求生成唯一ID，用于日志关联和问题排查
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware 创建请求ID中间件
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle 处理请求ID
func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 优先从请求头获取，支持上游传递
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = requestID
		}

		ctx := r.Context()
		ctx = ctxdata.WithRequestID(ctx, requestID)
		ctx = ctxdata.WithTraceID(ctx, traceID)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
