package charts

import (
	"markethealth-api/pkg/dataset"
	"markethealth-api/pkg/figure"
)

// Price builds the dual-axis price overlay: raw price and 30-day moving
// average per asset, BTC on the left axis and ETH on the right. The
// correction band is drawn only when it intersects the filtered frame.
func Price(f *dataset.Frame, cfg *Config) *figure.Figure {
	x := f.Dates()
	fig := &figure.Figure{
		Data: []figure.Trace{
			figure.Scatter("BTC Price", x, f.Series(dataset.ColBTCPrice), &figure.Line{Color: "orange"}),
			figure.Scatter("BTC 30d MA", x, f.Series(dataset.ColBTCPriceMA), &figure.Line{Color: "darkorange", Width: 3}),
			figure.Scatter("ETH Price", x, f.Series(dataset.ColETHPrice), &figure.Line{Color: "blue"}),
			figure.Scatter("ETH 30d MA", x, f.Series(dataset.ColETHPriceMA), &figure.Line{Color: "navy", Width: 3}),
		},
		Layout: figure.Layout{
			Title:     "BTC & ETH Prices with 30-Day Moving Averages",
			XAxis:     &figure.Axis{Title: "Date"},
			YAxis:     &figure.Axis{Title: "BTC Price (USD)"},
			YAxis2:    &figure.Axis{Title: "ETH Price (USD)", Overlaying: "y", Side: "right"},
			HoverMode: "x unified",
			Legend:    &figure.Legend{Orientation: "h", YAnchor: "bottom", Y: 1.02, XAnchor: "right", X: 1},
			Height:    600,
		},
	}
	// ETH traces ride the secondary axis.
	fig.Data[2].YAxis = "y2"
	fig.Data[3].YAxis = "y2"

	if min, max, ok := f.Bounds(); ok && cfg.Band.Overlaps(min, max) {
		start := cfg.Band.Start.Format(dataset.DateLayout)
		end := cfg.Band.End.Format(dataset.DateLayout)
		fig.Layout.Shapes = append(fig.Layout.Shapes, figure.Shape{
			Type: "rect", XRef: "x", YRef: "paper",
			X0: start, X1: end, Y0: 0, Y1: 1,
			FillColor: "red", Opacity: 0.12,
			Line: &figure.Line{Width: 0},
		})
		fig.Layout.Annotations = append(fig.Layout.Annotations, figure.Annotation{
			Text: cfg.Band.Label,
			X:    start, Y: 1,
			XRef: "x", YRef: "paper",
			XAnchor: "left", YAnchor: "top",
			ShowArrow: false,
			Font:      &figure.Font{Size: 14, Color: "red"},
		})
	}
	return fig
}
