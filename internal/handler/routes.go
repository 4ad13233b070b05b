package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"markethealth-api/internal/svc"
)

// RegisterHandlers wires the dashboard routes: the embedded page, the
// record-set metadata, the five views and the CSV export.
func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/meta",
				Handler: MetaHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/charts/price",
				Handler: PriceChartHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/charts/volatility",
				Handler: VolatilityChartHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/charts/correlation",
				Handler: CorrelationChartHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/charts/volume",
				Handler: VolumeChartHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/table",
				Handler: TableHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/export",
				Handler: ExportHandler(serverCtx),
			},
		},
	)
}
