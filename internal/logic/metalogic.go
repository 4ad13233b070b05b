package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
	"markethealth-api/pkg/dataset"
)

type MetaLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMetaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MetaLogic {
	return &MetaLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Meta describes the loaded record set so the page can bound its
// date-range picker.
func (l *MetaLogic) Meta() (*types.MetaResp, error) {
	frame, err := l.svcCtx.Loader.Load()
	if err != nil {
		return nil, err
	}
	resp := &types.MetaResp{Rows: frame.Len()}
	if min, max, ok := frame.Bounds(); ok {
		resp.MinDate = min.Format(dataset.DateLayout)
		resp.MaxDate = max.Format(dataset.DateLayout)
	}
	return resp, nil
}
