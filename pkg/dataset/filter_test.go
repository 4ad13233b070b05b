package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestParseRange(t *testing.T) {
	rng, ok := ParseRange("2024-01-05", "2024-01-10")
	require.True(t, ok, "two valid dates should parse")
	assert.Equal(t, day(t, "2024-01-05"), rng.Start)
	assert.Equal(t, day(t, "2024-01-10"), rng.End)

	_, ok = ParseRange("2024-01-05", "")
	assert.False(t, ok, "incomplete pair must not produce a range")
	_, ok = ParseRange("", "")
	assert.False(t, ok, "empty pair must not produce a range")
	_, ok = ParseRange("05/01/2024", "2024-01-10")
	assert.False(t, ok, "unparseable date must not produce a range")
}

func TestSlice_Inclusive(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 31)

	got := frame.Slice(Range{Start: day(t, "2024-01-10"), End: day(t, "2024-01-20")})
	assert.Equal(t, 11, got.Len(), "inclusive slice spans both endpoints")
	min, max, ok := got.Bounds()
	require.True(t, ok)
	assert.Equal(t, "2024-01-10", min.Format(DateLayout))
	assert.Equal(t, "2024-01-20", max.Format(DateLayout))
}

func TestSlice_SingleDay(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 31)
	min, _, ok := frame.Bounds()
	require.True(t, ok)

	got := frame.Slice(Range{Start: min, End: min})
	assert.Equal(t, 1, got.Len(), "start=end=min(date) selects exactly one row")

	absent := day(t, "2023-06-01")
	assert.Equal(t, 0, frame.Slice(Range{Start: absent, End: absent}).Len(),
		"a date outside the index selects nothing")
}

func TestSlice_InvertedRangeIsEmpty(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 31)

	got := frame.Slice(Range{Start: day(t, "2024-01-20"), End: day(t, "2024-01-10")})
	assert.Equal(t, 0, got.Len(), "start > end yields an empty frame, not an error")
	assert.Empty(t, got.Dates(), "empty frame renders empty series")
	assert.Empty(t, got.Series(ColBTCPrice))
	_, _, ok := got.Bounds()
	assert.False(t, ok, "empty frame has no bounds")
}

func TestSlice_ZeroRangeReturnsAll(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 31)
	assert.Equal(t, frame.Len(), frame.Slice(Range{}).Len(), "zero range selects the full record set")
}

func TestSlice_OutOfBandBounds(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 10)

	got := frame.Slice(Range{Start: day(t, "2023-12-01"), End: day(t, "2024-02-01")})
	assert.Equal(t, 10, got.Len(), "range wider than the index selects everything")

	got = frame.Slice(Range{Start: day(t, "2024-03-01"), End: day(t, "2024-04-01")})
	assert.Equal(t, 0, got.Len(), "range after the index selects nothing")
}

func TestTail(t *testing.T) {
	frame := loadFixture(t, "2024-01-01", 31)

	tail := frame.Tail(15)
	assert.Equal(t, 15, tail.Len())
	_, max, ok := tail.Bounds()
	require.True(t, ok)
	assert.Equal(t, "2024-01-31", max.Format(DateLayout), "tail keeps the most recent rows")

	assert.Equal(t, 31, frame.Tail(100).Len(), "oversized tail returns the whole frame")
	assert.Equal(t, 0, frame.Tail(0).Len())
}
