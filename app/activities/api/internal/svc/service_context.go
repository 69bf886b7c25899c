package svc

import (
	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/model"
	"school-activities/common/middleware"
)

// ServiceContext 服务上下文
// 持有进程内唯一的活动目录实例和各全局中间件
type ServiceContext struct {
	Config              config.Config
	Catalog             *model.Catalog
	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// CORS 默认值，配置留空时生效
var (
	defaultAllowOrigins = []string{"*"}
	defaultAllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	defaultAllowHeaders = []string{"Content-Type", "X-Request-ID"}
)

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:  c,
		Catalog: model.NewCatalog(c.Catalog.EnforceCapacity),
		CorsMiddleware: middleware.NewCorsMiddleware(
			orDefault(c.Cors.AllowOrigins, defaultAllowOrigins),
			orDefault(c.Cors.AllowMethods, defaultAllowMethods),
			orDefault(c.Cors.AllowHeaders, defaultAllowHeaders)),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(
			c.RateLimit.GlobalRate, c.RateLimit.GlobalBurst,
			c.RateLimit.IPRate, c.RateLimit.IPBurst),
	}
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
