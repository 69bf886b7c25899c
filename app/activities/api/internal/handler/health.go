// ============================================================================
// 健康检查与服务信息
// ============================================================================

package handler

import (
	"net/http"
	"runtime"
	"time"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/common/response"
)

var startTime = time.Now()

// HealthHandler 健康检查接口
// GET /health
// 用途：Kubernetes 探针、负载均衡健康检查
func HealthHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]interface{}{
			"status":     "healthy",
			"service":    ctx.Config.Name,
			"go_version": runtime.Version(),
			"timestamp":  time.Now().Format(time.RFC3339),
			"uptime":     time.Since(startTime).String(),
		})
	}
}
