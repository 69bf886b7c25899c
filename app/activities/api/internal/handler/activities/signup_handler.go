// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"net/http"

	"school-activities/app/activities/api/internal/logic/activities"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"
	"school-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 报名活动
func SignupHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SignupReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := activities.NewSignupLogic(r.Context(), svcCtx)
		resp, err := l.Signup(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
