package charts

import (
	"markethealth-api/pkg/dataset"
	"markethealth-api/pkg/figure"
)

// Correlation builds the 90-day rolling BTC/ETH price correlation chart:
// one line on an axis pinned to [-1, 1] with a dashed zero reference line
// spanning the filtered range.
func Correlation(f *dataset.Frame) *figure.Figure {
	x := f.Dates()
	fig := &figure.Figure{
		Data: []figure.Trace{
			figure.Scatter("Correlation", x, f.Series(dataset.ColCorr), &figure.Line{Color: "purple", Width: 3}),
		},
		Layout: figure.Layout{
			Title:     "90-Day Rolling Correlation",
			XAxis:     &figure.Axis{Title: "Date"},
			YAxis:     &figure.Axis{Title: "Correlation", Range: []float64{-1, 1}},
			HoverMode: "x unified",
			Height:    550,
		},
	}
	if min, max, ok := f.Bounds(); ok {
		fig.Layout.Shapes = append(fig.Layout.Shapes, figure.Shape{
			Type: "line", XRef: "x", YRef: "y",
			X0: min.Format(dataset.DateLayout), X1: max.Format(dataset.DateLayout),
			Y0: 0, Y1: 0,
			Line: &figure.Line{Color: "gray", Dash: "dash", Width: 1},
		})
	}
	return fig
}
