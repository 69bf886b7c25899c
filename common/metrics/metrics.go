package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ==================== 业务指标 ====================
//
// 通过 go-zero 内置的 Prometheus agent 暴露（配置文件 Prometheus 段），
// promauto 注册到默认 registry 即可被抓取。

// 指标结果标签取值
const (
	ResultOK       = "ok"
	ResultRejected = "rejected" // 业务校验失败（重复报名、未报名、满员）
	ResultNotFound = "not_found"
)

var (
	// SignupTotal 报名请求计数
	SignupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Name:      "signup_total",
		Help:      "Total signup attempts by activity and result.",
	}, []string{"activity", "result"})

	// UnregisterTotal 退出请求计数
	UnregisterTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Name:      "unregister_total",
		Help:      "Total unregister attempts by activity and result.",
	}, []string{"activity", "result"})
)
