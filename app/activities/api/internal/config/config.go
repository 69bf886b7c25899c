/**
 * @projectName: school-activities
 * @package: config
 * @className: Config
 * @author: maxiaoyang
 * @description: Activities API 服务配置定义
 * @date: 2026-02-12
 * @version: 1.0
 */

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

// Config Activities API 服务配置
type Config struct {
	rest.RestConf

	// 活动目录配置
	Catalog struct {
		// EnforceCapacity 满员时是否拒绝报名
		// 默认关闭：容量仅作为前端展示信息，与老系统行为一致
		EnforceCapacity bool `json:",default=false"`
	}

	// 限流配置
	RateLimit struct {
		GlobalRate  float64 `json:",default=200"`
		GlobalBurst int     `json:",default=400"`
		IPRate      float64 `json:",default=20"`
		IPBurst     int     `json:",default=40"`
	}

	// CORS 配置（留空时使用 ServiceContext 内的默认值）
	Cors struct {
		AllowOrigins []string `json:",optional"`
		AllowMethods []string `json:",optional"`
		AllowHeaders []string `json:",optional"`
	}

	// 静态站点配置
	Static struct {
		Dir string `json:",default=static"`
	}
}
