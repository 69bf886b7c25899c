// ============================================================================
// 静态站点
// ============================================================================
//
// 报名页面是一个纯静态的单页站点（index.html + app.js + styles.css），
// 由本服务直接托管，学生访问 / 即可看到报名页面。

package handler

import (
	"net/http"
	"path/filepath"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// IndexHandler 首页重定向
// GET / -> /static/index.html
func IndexHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	}
}

// StaticHandler 静态文件
// GET /static/:file
// 站点文件是平铺的单层目录，filepath.Base 兜底防止目录穿越
func StaticHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StaticReq
		if err := httpx.Parse(r, &req); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(ctx.Config.Static.Dir, filepath.Base(req.File)))
	}
}
