package ctxdata

import "context"

// 定义上下文 key 类型，避免冲突
type contextKey string

const (
	// CtxKeyRequestID 请求ID
	CtxKeyRequestID contextKey = "requestId"
	// CtxKeyTraceID 追踪ID
	CtxKeyTraceID contextKey = "traceId"
)

// GetRequestIDFromCtx 从上下文中获取请求ID
func GetRequestIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyRequestID); val != nil {
		if reqID, ok := val.(string); ok {
			return reqID
		}
	}
	return ""
}

// GetTraceIDFromCtx 从上下文中获取追踪ID
func GetTraceIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyTraceID); val != nil {
		if traceID, ok := val.(string); ok {
			return traceID
		}
	}
	return ""
}

// WithRequestID 将请求ID注入上下文
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, requestID)
}

// WithTraceID 将追踪ID注入上下文
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, CtxKeyTraceID, traceID)
}
