package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
)

type ExportLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExportLogic {
	return &ExportLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Export serializes the range-filtered record set back to CSV across all
// original columns. Returns the payload and the configured download name.
// Exports are not cached: the serialization is a straight pass over the
// already-memoized frame.
func (l *ExportLogic) Export(req *types.RangeReq) ([]byte, string, error) {
	frame, err := resolveFrame(l.svcCtx, req.Start, req.End)
	if err != nil {
		l.Errorf("export: load record set: %v", err)
		return nil, "", err
	}
	data, err := frame.CSV()
	if err != nil {
		return nil, "", err
	}
	return data, l.svcCtx.Dashboard.ExportFilename, nil
}
