package logic

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markethealth-api/internal/config"
	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
	"markethealth-api/pkg/dataset"
)

func writeMetricsCSV(t *testing.T, start string, days int) string {
	t.Helper()
	first, err := time.Parse(dataset.DateLayout, start)
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString("date,btc_price_usd,eth_price_usd,btc_price_30d_ma,eth_price_30d_ma,btc_vol_30d,eth_vol_30d,btc_eth_price_corr_90d,btc_volume_7d_ma,eth_volume_7d_ma\n")
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i)
		fmt.Fprintf(&buf, "%s,%g,%g,%g,%g,%g,%g,%g,%g,%g\n",
			d.Format(dataset.DateLayout),
			60000+float64(i), 3000+float64(i),
			59000+float64(i), 2900+float64(i),
			55.5, 70.5, 0.88,
			2e10, 9e9,
		)
	}
	path := filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func newTestContext(t *testing.T, start string, days int) *svc.ServiceContext {
	t.Helper()
	cfg := config.Config{
		Env:      "test",
		DataFile: writeMetricsCSV(t, start, days),
	}
	return svc.NewServiceContext(cfg)
}

func TestPriceLogic_FullRangeFallback(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	l := NewPriceLogic(context.Background(), svcCtx)

	// Only one bound supplied: the selection is not a complete pair, so the
	// whole record set is used.
	fig, err := l.Price(&types.RangeReq{Start: "2024-01-10"})
	require.NoError(t, err)
	require.Len(t, fig.Data, 4)
	assert.Len(t, fig.Data[0].X, 40, "incomplete pair falls back to the full set")
}

func TestPriceLogic_WindowWithBand(t *testing.T) {
	// 782 days from 2024-01-01 lands on 2026-02-20.
	svcCtx := newTestContext(t, "2024-01-01", 782)
	l := NewPriceLogic(context.Background(), svcCtx)

	fig, err := l.Price(&types.RangeReq{Start: "2026-02-10", End: "2026-02-20"})
	require.NoError(t, err)
	assert.Len(t, fig.Data[0].X, 11, "11-day window selects exactly 11 rows")
	assert.Len(t, fig.Layout.Shapes, 1, "correction band renders inside the window")
}

func TestPriceLogic_CachesByRange(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	l := NewPriceLogic(context.Background(), svcCtx)

	req := &types.RangeReq{Start: "2024-01-05", End: "2024-01-15"}
	first, err := l.Price(req)
	require.NoError(t, err)
	second, err := l.Price(req)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated interaction reuses the cached figure")

	other, err := l.Price(&types.RangeReq{Start: "2024-01-06", End: "2024-01-15"})
	require.NoError(t, err)
	assert.NotSame(t, first, other, "different range builds a different figure")
}

func TestChartLogics_InvertedRange(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	ctx := context.Background()
	req := &types.RangeReq{Start: "2024-02-01", End: "2024-01-01"}

	price, err := NewPriceLogic(ctx, svcCtx).Price(req)
	require.NoError(t, err, "inverted range must not error")
	assert.Empty(t, price.Data[0].X, "inverted range yields empty traces")
	assert.Empty(t, price.Layout.Shapes)

	vol, err := NewVolatilityLogic(ctx, svcCtx).Volatility(req)
	require.NoError(t, err)
	assert.Empty(t, vol.Data[0].X)

	corr, err := NewCorrelationLogic(ctx, svcCtx).Correlation(req)
	require.NoError(t, err)
	assert.Empty(t, corr.Data[0].X)
	assert.Empty(t, corr.Layout.Shapes, "no zero line without data")

	volume, err := NewVolumeLogic(ctx, svcCtx).Volume(req)
	require.NoError(t, err)
	assert.Empty(t, volume.Data[0].X)
}

func TestTableLogic_Defaults(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	l := NewTableLogic(context.Background(), svcCtx)

	view, err := l.Table(&types.TableReq{})
	require.NoError(t, err)
	assert.Len(t, view.Rows, 15, "row depth defaults to the configured snapshot size")
	assert.Equal(t, "2024-02-09", view.Rows[len(view.Rows)-1].Date, "newest row last")

	view, err = l.Table(&types.TableReq{Rows: 5})
	require.NoError(t, err)
	assert.Len(t, view.Rows, 5, "explicit row count wins")
}

func TestExportLogic(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	l := NewExportLogic(context.Background(), svcCtx)

	data, name, err := l.Export(&types.RangeReq{Start: "2024-01-10", End: "2024-01-20"})
	require.NoError(t, err)
	assert.Equal(t, "btc_eth_metrics_2024_2026.csv", name, "fixed download name")

	reparsed, err := dataset.Parse(bytes.NewReader(data))
	require.NoError(t, err, "export must re-parse")
	assert.Equal(t, 11, reparsed.Len(), "export covers the filtered range")
}

func TestLogic_MissingDataFile(t *testing.T) {
	cfg := config.Config{Env: "test", DataFile: filepath.Join(t.TempDir(), "absent.csv")}
	svcCtx := svc.NewServiceContext(cfg)

	_, err := NewMetaLogic(context.Background(), svcCtx).Meta()
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrNotFound)

	_, _, err = NewExportLogic(context.Background(), svcCtx).Export(&types.RangeReq{})
	assert.ErrorIs(t, err, dataset.ErrNotFound, "every operation surfaces the fixed load failure")
}

func TestMetaLogic(t *testing.T) {
	svcCtx := newTestContext(t, "2024-01-01", 40)
	resp, err := NewMetaLogic(context.Background(), svcCtx).Meta()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", resp.MinDate)
	assert.Equal(t, "2024-02-09", resp.MaxDate)
	assert.Equal(t, 40, resp.Rows)
}
