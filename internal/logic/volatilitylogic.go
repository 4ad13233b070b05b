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

type VolatilityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVolatilityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VolatilityLogic {
	return &VolatilityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Volatility returns the 30-day annualized volatility comparison.
func (l *VolatilityLogic) Volatility(req *types.RangeReq) (*figure.Figure, error) {
	key := cache.FigureKey("volatility", req.Start, req.End)
	v, err := l.svcCtx.Figures.Take(key, func() (any, error) {
		frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
		if err != nil {
			return nil, err
		}
		return charts.Volatility(frame), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*figure.Figure), nil
}
