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

type CorrelationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCorrelationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CorrelationLogic {
	return &CorrelationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Correlation returns the 90-day rolling BTC/ETH correlation chart.
func (l *CorrelationLogic) Correlation(req *types.RangeReq) (*figure.Figure, error) {
	key := cache.FigureKey("correlation", req.Start, req.End)
	v, err := l.svcCtx.Figures.Take(key, func() (any, error) {
		frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
		if err != nil {
			return nil, err
		}
		return charts.Correlation(frame), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*figure.Figure), nil
}
