// Package figure models declarative chart specifications in the Plotly
// figure schema. Figures are built server-side and handed to plotly.js on
// the dashboard page, so the JSON field names follow the Plotly wire format.
package figure

// Figure is a complete chart specification: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single plotted series.
type Trace struct {
	Type  string    `json:"type"`
	Name  string    `json:"name,omitempty"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	Line  *Line     `json:"line,omitempty"`
	YAxis string    `json:"yaxis,omitempty"`
}

// Scatter builds a line/scatter trace.
func Scatter(name string, x []string, y []float64, line *Line) Trace {
	return Trace{Type: "scatter", Name: name, X: x, Y: y, Line: line}
}

// Line styles a trace or shape outline.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

// Axis configures one layout axis.
type Axis struct {
	Title      string    `json:"title,omitempty"`
	Type       string    `json:"type,omitempty"`
	Range      []float64 `json:"range,omitempty"`
	Overlaying string    `json:"overlaying,omitempty"`
	Side       string    `json:"side,omitempty"`
}

// Legend positions the figure legend.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	Y           float64 `json:"y,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	X           float64 `json:"x,omitempty"`
}

// Shape is a layout-level drawing: a highlighted band (rect) or a
// reference line. X coordinates are dates; Y coordinates are either data
// values or paper fractions depending on YRef.
type Shape struct {
	Type      string  `json:"type"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	X0        string  `json:"x0"`
	X1        string  `json:"x1"`
	Y0        float64 `json:"y0"`
	Y1        float64 `json:"y1"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Line      *Line   `json:"line,omitempty"`
}

// Annotation is a text label anchored to a point on the figure.
type Annotation struct {
	Text      string  `json:"text"`
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

// Font styles annotation text.
type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Layout holds figure-wide presentation settings.
type Layout struct {
	Title       string       `json:"title,omitempty"`
	Height      int          `json:"height,omitempty"`
	HoverMode   string       `json:"hovermode,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	YAxis2      *Axis        `json:"yaxis2,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}
