package middleware

import (
	"net/http"
	"sync"
	"time"

	"school-activities/common/errorx"
	"school-activities/common/response"
)

// RateLimiter 令牌桶限流器
// 令牌桶允许突发流量，报名高峰（开学第一周）的短时并发可以被吸收
type RateLimiter struct {
	rate       float64   // 每秒生成令牌数
	burst      int       // 桶容量（最大令牌数）
	tokens     float64   // 当前令牌数
	lastUpdate time.Time // 上次更新时间
	mu         sync.Mutex
}

// NewRateLimiter 创建限流器
// rate: 每秒允许的请求数
// burst: 突发容量
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:       rate,
		burst:      burst,
		tokens:     float64(burst),
		lastUpdate: time.Now(),
	}
}

// Allow 判断是否允许请求
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.lastUpdate).Seconds()
	r.lastUpdate = now

	// 添加新令牌
	r.tokens += elapsed * r.rate
	if r.tokens > float64(r.burst) {
		r.tokens = float64(r.burst)
	}

	// 消耗令牌
	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// IPRateLimiter 基于IP的限流器
type IPRateLimiter struct {
	limiters map[string]*RateLimiter
	mu       sync.RWMutex
	rate     float64
	burst    int
}

// NewIPRateLimiter 创建IP限流器
func NewIPRateLimiter(rate float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*RateLimiter),
		rate:     rate,
		burst:    burst,
	}
}

// GetLimiter 获取指定IP的限流器
func (i *IPRateLimiter) GetLimiter(ip string) *RateLimiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 双重检查
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	limiter = NewRateLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware 限流中间件
type RateLimitMiddleware struct {
	ipLimiter     *IPRateLimiter
	globalLimiter *RateLimiter
}

// NewRateLimitMiddleware 创建限流中间件
// globalRate/globalBurst: 全局限流参数
// ipRate/ipBurst: 单IP限流参数
func NewRateLimitMiddleware(globalRate float64, globalBurst int, ipRate float64, ipBurst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		ipLimiter:     NewIPRateLimiter(ipRate, ipBurst),
		globalLimiter: NewRateLimiter(globalRate, globalBurst),
	}
}

// Handle 中间件处理函数
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 全局限流
		if !m.globalLimiter.Allow() {
			response.Fail(w, errorx.ErrTooManyRequests())
			return
		}

		// IP限流
		if !m.ipLimiter.GetLimiter(getClientIP(r)).Allow() {
			response.Fail(w, errorx.ErrTooManyRequests())
			return
		}

		next(w, r)
	}
}

// getClientIP 获取客户端IP
func getClientIP(r *http.Request) string {
	// 优先从X-Forwarded-For获取
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	// 其次从X-Real-IP获取
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
