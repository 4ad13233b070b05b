package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"markethealth-api/internal/cache"
	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
	"markethealth-api/pkg/charts"
	"markethealth-api/pkg/figure"
)

type PriceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPriceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PriceLogic {
	return &PriceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Price returns the dual-axis price/moving-average overlay for the
// requested range.
func (l *PriceLogic) Price(req *types.RangeReq) (*figure.Figure, error) {
	key := cache.FigureKey("price", req.Start, req.End)
	v, err := l.svcCtx.Figures.Take(key, func() (any, error) {
		frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
		if err != nil {
			l.Errorf("price: load record set: %v", err)
			return nil, err
		}
		return charts.Price(frame, l.svcCtx.Dashboard), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*figure.Figure), nil
}
