package types

// RangeReq carries the optional date-range selection shared by every view.
// Unless both bounds are present and well formed, handlers fall back to the
// full record set.
type RangeReq struct {
	Start string `form:"start,optional"`
	End   string `form:"end,optional"`
}

// TableReq extends the range selection with an optional row count override.
type TableReq struct {
	Start string `form:"start,optional"`
	End   string `form:"end,optional"`
	Rows  int    `form:"rows,optional"`
}

// MetaResp describes the loaded record set: picker bounds and row count.
type MetaResp struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
	Rows    int    `json:"rows"`
}
