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

type VolumeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVolumeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VolumeLogic {
	return &VolumeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Volume returns the 7-day average volume chart on a log axis.
func (l *VolumeLogic) Volume(req *types.RangeReq) (*figure.Figure, error) {
	key := cache.FigureKey("volume", req.Start, req.End)
	v, err := l.svcCtx.Figures.Take(key, func() (any, error) {
		frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
		if err != nil {
			return nil, err
		}
		return charts.Volume(frame), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*figure.Figure), nil
}
