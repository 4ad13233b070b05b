// Package dataset holds the pre-computed BTC/ETH market metrics record set:
// one row per calendar day with prices, moving averages, annualized
// volatility, rolling correlation and averaged volume, loaded from CSV.
package dataset

import "time"

// DateLayout is the calendar date format used by the CSV index column and
// all range parameters.
const DateLayout = "2006-01-02"

// CSV column names, exactly as they appear in the file header.
const (
	ColDate       = "date"
	ColBTCPrice   = "btc_price_usd"
	ColETHPrice   = "eth_price_usd"
	ColBTCPriceMA = "btc_price_30d_ma"
	ColETHPriceMA = "eth_price_30d_ma"
	ColBTCVol     = "btc_vol_30d"
	ColETHVol     = "eth_vol_30d"
	ColCorr       = "btc_eth_price_corr_90d"
	ColBTCVolume  = "btc_volume_7d_ma"
	ColETHVolume  = "eth_volume_7d_ma"
)

// Columns lists the nine required metric columns in canonical order.
var Columns = []string{
	ColBTCPrice, ColETHPrice,
	ColBTCPriceMA, ColETHPriceMA,
	ColBTCVol, ColETHVol,
	ColCorr,
	ColBTCVolume, ColETHVolume,
}

// Record is one day of market metrics.
type Record struct {
	Date         time.Time
	BTCPrice     float64
	ETHPrice     float64
	BTCPriceMA30 float64
	ETHPriceMA30 float64
	BTCVol30     float64
	ETHVol30     float64
	Corr90       float64
	BTCVolume7   float64
	ETHVolume7   float64
}

// metric returns the record field for a canonical column name.
func (r Record) metric(col string) float64 {
	switch col {
	case ColBTCPrice:
		return r.BTCPrice
	case ColETHPrice:
		return r.ETHPrice
	case ColBTCPriceMA:
		return r.BTCPriceMA30
	case ColETHPriceMA:
		return r.ETHPriceMA30
	case ColBTCVol:
		return r.BTCVol30
	case ColETHVol:
		return r.ETHVol30
	case ColCorr:
		return r.Corr90
	case ColBTCVolume:
		return r.BTCVolume7
	case ColETHVolume:
		return r.ETHVolume7
	}
	return 0
}

// Frame is an ordered, date-indexed view over records. Dates are unique and
// strictly increasing; the loader enforces both when parsing.
type Frame struct {
	records []Record
}

// NewFrame wraps records in a Frame. Callers are expected to supply records
// already sorted by date.
func NewFrame(records []Record) *Frame {
	return &Frame{records: records}
}

// Len reports the number of records in the frame.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.records)
}

// Records exposes the ordered record slice. The slice is shared; treat it
// as read-only.
func (f *Frame) Records() []Record {
	if f == nil {
		return nil
	}
	return f.records
}

// Bounds returns the first and last dates of the frame. ok is false for an
// empty frame.
func (f *Frame) Bounds() (min, max time.Time, ok bool) {
	if f.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	return f.records[0].Date, f.records[len(f.records)-1].Date, true
}

// Dates renders the date index in DateLayout, ready for chart x axes.
func (f *Frame) Dates() []string {
	out := make([]string, f.Len())
	for i, rec := range f.Records() {
		out[i] = rec.Date.Format(DateLayout)
	}
	return out
}

// Series extracts one metric column as a float slice.
func (f *Frame) Series(col string) []float64 {
	out := make([]float64, f.Len())
	for i, rec := range f.Records() {
		out[i] = rec.metric(col)
	}
	return out
}

// Tail returns a view over the most recent n records, or the whole frame
// when it holds fewer.
func (f *Frame) Tail(n int) *Frame {
	if n <= 0 {
		return &Frame{}
	}
	if n >= f.Len() {
		return f
	}
	return &Frame{records: f.records[f.Len()-n:]}
}
