// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"net/http"

	"school-activities/app/activities/api/internal/logic/activities"
	"school-activities/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 活动列表
func ListActivitiesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := activities.NewListActivitiesLogic(r.Context(), svcCtx)
		resp, err := l.ListActivities()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
