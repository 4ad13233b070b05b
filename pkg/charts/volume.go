package charts

import (
	"markethealth-api/pkg/dataset"
	"markethealth-api/pkg/figure"
)

// Volume builds the 7-day average volume comparison on a logarithmic axis.
func Volume(f *dataset.Frame) *figure.Figure {
	x := f.Dates()
	return &figure.Figure{
		Data: []figure.Trace{
			figure.Scatter("BTC 7d Avg Volume", x, f.Series(dataset.ColBTCVolume), &figure.Line{Color: "orange"}),
			figure.Scatter("ETH 7d Avg Volume", x, f.Series(dataset.ColETHVolume), &figure.Line{Color: "blue"}),
		},
		Layout: figure.Layout{
			Title:     "7-Day Average Daily Volume (Log Scale)",
			XAxis:     &figure.Axis{Title: "Date"},
			YAxis:     &figure.Axis{Title: "Volume (log scale)", Type: "log"},
			HoverMode: "x unified",
			Height:    550,
		},
	}
}
