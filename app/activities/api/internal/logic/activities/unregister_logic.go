// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"context"
	"errors"
	"fmt"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"
	"school-activities/app/activities/model"
	"school-activities/common/errorx"
	"school-activities/common/metrics"
	"school-activities/common/utils/validate"

	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 退出活动
func NewUnregisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterLogic {
	return &UnregisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Unregister 退出活动
// 重复退出不幂等：第二次请求返回"未报名"错误
func (l *UnregisterLogic) Unregister(req *types.UnregisterReq) (*types.MessageResp, error) {
	if validate.IsBlank(req.Email) {
		return nil, errorx.ErrInvalidParams("email is required")
	}

	if err := l.svcCtx.Catalog.Unregister(req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			metrics.UnregisterTotal.WithLabelValues(req.Name, metrics.ResultNotFound).Inc()
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrNotRegistered):
			metrics.UnregisterTotal.WithLabelValues(req.Name, metrics.ResultRejected).Inc()
			return nil, errorx.ErrNotRegistered()
		default:
			l.Errorf("退出失败: activity=%s, email=%s, err=%v", req.Name, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	metrics.UnregisterTotal.WithLabelValues(req.Name, metrics.ResultOK).Inc()
	l.Infof("退出成功: activity=%s, email=%s", req.Name, req.Email)

	return &types.MessageResp{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.Name),
	}, nil
}
