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

type SignupLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
func NewSignupLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupLogic {
	return &SignupLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Signup 报名活动
// 校验邮箱参数后交给目录处理，目录的哨兵错误在这里映射为业务错误码
func (l *SignupLogic) Signup(req *types.SignupReq) (*types.MessageResp, error) {
	if validate.IsBlank(req.Email) {
		return nil, errorx.ErrInvalidParams("email is required")
	}
	if !validate.IsValidEmail(req.Email) {
		return nil, errorx.ErrInvalidParams("invalid email address")
	}

	if err := l.svcCtx.Catalog.SignUp(req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			metrics.SignupTotal.WithLabelValues(req.Name, metrics.ResultNotFound).Inc()
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrAlreadySignedUp):
			metrics.SignupTotal.WithLabelValues(req.Name, metrics.ResultRejected).Inc()
			return nil, errorx.ErrAlreadySignedUp()
		case errors.Is(err, model.ErrActivityFull):
			metrics.SignupTotal.WithLabelValues(req.Name, metrics.ResultRejected).Inc()
			return nil, errorx.ErrActivityFull()
		default:
			l.Errorf("报名失败: activity=%s, email=%s, err=%v", req.Name, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	metrics.SignupTotal.WithLabelValues(req.Name, metrics.ResultOK).Inc()
	l.Infof("报名成功: activity=%s, email=%s", req.Name, req.Email)

	return &types.MessageResp{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.Name),
	}, nil
}
