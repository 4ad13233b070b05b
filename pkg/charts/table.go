package charts

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"markethealth-api/pkg/dataset"
)

// TableColumns are the snapshot column headers, in display order.
var TableColumns = []string{
	"BTC Price", "ETH Price",
	"BTC 30d MA", "ETH 30d MA",
	"BTC 30d Vol", "ETH 30d Vol",
	"BTC-ETH 90d Corr",
	"BTC 7d Avg Volume", "ETH 7d Avg Volume",
}

// TableView is the formatted recent-data snapshot.
type TableView struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is one formatted day.
type TableRow struct {
	Date  string   `json:"date"`
	Cells []string `json:"cells"`
}

// Snapshot formats the most recent rows of the frame for tabular display.
// Prices render as whole dollars with thousands grouping, volatility as a
// one-decimal percentage, correlation to three decimals and volumes with
// two decimals.
func Snapshot(f *dataset.Frame, rows int) *TableView {
	view := &TableView{Columns: TableColumns, Rows: []TableRow{}}
	for _, rec := range f.Tail(rows).Records() {
		view.Rows = append(view.Rows, TableRow{
			Date: rec.Date.Format(dataset.DateLayout),
			Cells: []string{
				currency(rec.BTCPrice),
				currency(rec.ETHPrice),
				currency(rec.BTCPriceMA30),
				currency(rec.ETHPriceMA30),
				percent(rec.BTCVol30),
				percent(rec.ETHVol30),
				fmt.Sprintf("%.3f", rec.Corr90),
				humanize.CommafWithDigits(rec.BTCVolume7, 2),
				humanize.CommafWithDigits(rec.ETHVolume7, 2),
			},
		})
	}
	return view
}

func currency(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 0)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
