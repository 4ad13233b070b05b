package charts

import (
	"markethealth-api/pkg/dataset"
	"markethealth-api/pkg/figure"
)

// Volatility builds the 30-day annualized volatility comparison: two lines
// on a shared percentage axis.
func Volatility(f *dataset.Frame) *figure.Figure {
	x := f.Dates()
	return &figure.Figure{
		Data: []figure.Trace{
			figure.Scatter("BTC 30d Vol (Ann.)", x, f.Series(dataset.ColBTCVol), &figure.Line{Color: "orange"}),
			figure.Scatter("ETH 30d Vol (Ann.)", x, f.Series(dataset.ColETHVol), &figure.Line{Color: "blue"}),
		},
		Layout: figure.Layout{
			Title:     "30-Day Annualized Volatility",
			XAxis:     &figure.Axis{Title: "Date"},
			YAxis:     &figure.Axis{Title: "Volatility (%)"},
			HoverMode: "x unified",
			Height:    550,
		},
	}
}
