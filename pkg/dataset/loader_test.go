package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metricsCSV builds a synthetic metrics file starting at start with one row
// per day. Values are deterministic functions of the row index.
func metricsCSV(t *testing.T, start string, days int) []byte {
	t.Helper()
	first, err := time.Parse(DateLayout, start)
	require.NoError(t, err, "fixture start date must parse")

	var buf bytes.Buffer
	buf.WriteString("date,btc_price_usd,eth_price_usd,btc_price_30d_ma,eth_price_30d_ma,btc_vol_30d,eth_vol_30d,btc_eth_price_corr_90d,btc_volume_7d_ma,eth_volume_7d_ma\n")
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i)
		fmt.Fprintf(&buf, "%s,%g,%g,%g,%g,%g,%g,%g,%g,%g\n",
			d.Format(DateLayout),
			40000+float64(i)*25.5, 2200+float64(i)*3.25,
			39500+float64(i)*20, 2150+float64(i)*2,
			55+float64(i%10)*0.7, 68+float64(i%10)*0.9,
			0.8+float64(i%5)*0.01,
			2.1e10+float64(i)*1e7, 9.3e9+float64(i)*5e6,
		)
	}
	return buf.Bytes()
}

func writeFixture(t *testing.T, start string, days int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, os.WriteFile(path, metricsCSV(t, start, days), 0o644))
	return path
}

func loadFixture(t *testing.T, start string, days int) *Frame {
	t.Helper()
	frame, err := Parse(bytes.NewReader(metricsCSV(t, start, days)))
	require.NoError(t, err, "fixture should parse")
	return frame
}

func TestLoader_Load(t *testing.T) {
	path := writeFixture(t, "2024-01-01", 30)
	loader := NewLoader(path)

	frame, err := loader.Load()
	require.NoError(t, err, "Load should not error")
	assert.Equal(t, 30, frame.Len(), "all rows should be loaded")

	min, max, ok := frame.Bounds()
	require.True(t, ok, "bounds should exist")
	assert.Equal(t, "2024-01-01", min.Format(DateLayout), "min date")
	assert.Equal(t, "2024-01-30", max.Format(DateLayout), "max date")
	assert.InDelta(t, 40000, frame.Records()[0].BTCPrice, 1e-9, "first BTC price")
}

func TestLoader_MemoizesByContent(t *testing.T) {
	path := writeFixture(t, "2024-01-01", 10)
	loader := NewLoader(path)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second, "unchanged file should return the cached frame")

	// Rewriting the file with different content invalidates the memo.
	require.NoError(t, os.WriteFile(path, metricsCSV(t, "2024-01-01", 12), 0o644))
	third, err := loader.Load()
	require.NoError(t, err)
	assert.NotSame(t, first, third, "changed file should be re-parsed")
	assert.Equal(t, 12, third.Len(), "re-parsed frame should reflect new content")
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := loader.Load()
	require.Error(t, err, "missing file must fail the load")
	assert.ErrorIs(t, err, ErrNotFound, "missing file maps to ErrNotFound")
	assert.Contains(t, err.Error(), "data file not found", "fixed missing-file message")
}

func TestParse_MissingColumn(t *testing.T) {
	raw := metricsCSV(t, "2024-01-01", 3)
	broken := bytes.Replace(raw, []byte("btc_vol_30d"), []byte("btc_volatility"), 1)

	_, err := Parse(bytes.NewReader(broken))
	require.Error(t, err, "missing required column must fail")
	assert.Contains(t, err.Error(), "btc_vol_30d", "error names the missing column")
}

func TestParse_MalformedValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{
			name: "bad date",
			row:  "not-a-date,1,2,3,4,5,6,0.5,7,8",
			want: "parse date",
		},
		{
			name: "bad numeric cell",
			row:  "2024-02-01,oops,2,3,4,5,6,0.5,7,8",
			want: "btc_price_usd",
		},
		{
			name: "duplicate date",
			row:  "2024-01-03,1,2,3,4,5,6,0.5,7,8",
			want: "out of order",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := string(metricsCSV(t, "2024-01-01", 3)) + tt.row + "\n"
			_, err := Parse(strings.NewReader(raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want, "error should carry the underlying cause")
		})
	}
}
