package dataset

import (
	"sort"
	"time"
)

// Range bounds a filtered slice by calendar date, inclusive on both ends.
// A zero Start or End leaves that side unbounded, so the zero Range selects
// the whole frame. No start<=end validation is performed: an inverted range
// simply selects nothing.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// ParseRange builds a Range from two DateLayout strings. ok is false unless
// both parse, mirroring the dashboard rule that an incomplete start/end pair
// falls back to the full record set.
func ParseRange(start, end string) (Range, bool) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Range{}, false
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Range{}, false
	}
	return Range{Start: s, End: e}, true
}

// Slice returns the sub-frame whose dates fall within r. The result shares
// backing storage with the frame and is read-only like its parent.
func (f *Frame) Slice(r Range) *Frame {
	if f.Len() == 0 || r.IsZero() {
		return f
	}
	recs := f.records
	lo := 0
	if !r.Start.IsZero() {
		lo = sort.Search(len(recs), func(i int) bool {
			return !recs[i].Date.Before(r.Start)
		})
	}
	hi := len(recs)
	if !r.End.IsZero() {
		hi = sort.Search(len(recs), func(i int) bool {
			return recs[i].Date.After(r.End)
		})
	}
	if lo >= hi {
		return &Frame{}
	}
	return &Frame{records: recs[lo:hi]}
}
