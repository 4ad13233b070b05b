package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"markethealth-api/internal/cache"
	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
	"markethealth-api/pkg/charts"
)

type TableLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTableLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TableLogic {
	return &TableLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Table returns the formatted recent-data snapshot for the requested range.
// The row count defaults to the configured table depth.
func (l *TableLogic) Table(req *types.TableReq) (*charts.TableView, error) {
	rows := req.Rows
	if rows <= 0 {
		rows = l.svcCtx.Dashboard.TableRows
	}

	key := cache.TableKey(req.Start, req.End, rows)
	v, err := l.svcCtx.Figures.Take(key, func() (any, error) {
		frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
		if err != nil {
			return nil, err
		}
		return charts.Snapshot(frame, rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*charts.TableView), nil
}
