// ============================================================================
// 路由注册
// ============================================================================
//
// 路由说明：
//   - GET    /activities                       活动列表（含报名名单）
//   - POST   /activities/:name/signup          报名（email 走查询参数）
//   - DELETE /activities/:name/unregister      退出（email 走查询参数）
//   - GET    /health                           健康检查
//   - GET    /                                 重定向到报名页面
//   - GET    /static/:file                     静态站点文件
//
// 中间件执行顺序：
//   CORS -> RequestID -> RateLimit -> Handler

package handler

import (
	"net/http"

	"school-activities/app/activities/api/internal/handler/activities"
	"school-activities/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RateLimitMiddleware.Handle(next)
	})

	// ==================== 活动路由 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/activities",
				Handler: activities.ListActivitiesHandler(ctx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/activities/:name/signup",
				Handler: activities.SignupHandler(ctx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/activities/:name/unregister",
				Handler: activities.UnregisterHandler(ctx),
			},
		},
	)

	// ==================== 站点与运维路由 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/static/:file",
				Handler: StaticHandler(ctx),
			},
		},
	)
}
