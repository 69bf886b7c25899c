// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"context"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivitiesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动列表
func NewListActivitiesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivitiesLogic {
	return &ListActivitiesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListActivities 返回全部活动及其报名名单
// 只读快照，永不失败
func (l *ListActivitiesLogic) ListActivities() (types.ActivityMap, error) {
	return activityMapFromSnapshot(l.svcCtx.Catalog.List()), nil
}
