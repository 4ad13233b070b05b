package logic

import (
	"markethealth-api/internal/svc"
	"markethealth-api/pkg/dataset"
)

// resolveFrame loads the record set and applies the requested range.
// Unless both bounds parse, the selection falls back to the full set; an
// inverted range resolves to an empty frame, which builders render as
// empty traces.
func resolveFrame(svcCtx *svc.ServiceContext, start, end string) (*dataset.Frame, error) {
	frame, err := svcCtx.Loader.Load()
	if err != nil {
		return nil, err
	}
	if rng, ok := dataset.ParseRange(start, end); ok {
		return frame.Slice(rng), nil
	}
	return frame, nil
}
