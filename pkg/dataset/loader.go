package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"
)

// ErrNotFound marks the fixed missing-data-file failure. The dashboard is
// unusable until the file exists; callers surface this as-is.
var ErrNotFound = errors.New("data file not found")

// Loader reads and parses the metrics CSV, memoizing the parsed frame by
// file content. Repeated loads of an unchanged file return the cached frame
// without re-parsing; a changed file is parsed anew.
type Loader struct {
	path string

	mu    sync.Mutex
	sum   [sha256.Size]byte
	frame *Frame
}

// NewLoader constructs a loader for the CSV at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the configured data file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the full record set. There is no retry and no partial load:
// a missing file yields ErrNotFound, any parse failure yields an error that
// carries the underlying cause.
func (l *Loader) Load() (*Frame, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, l.path)
		}
		return nil, fmt.Errorf("read data file %s: %w", l.path, err)
	}
	sum := sha256.Sum256(raw)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frame != nil && sum == l.sum {
		return l.frame, nil
	}

	frame, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("load data file %s: %w", l.path, err)
	}
	l.sum, l.frame = sum, frame
	return frame, nil
}

// Parse decodes the metrics CSV from r. The header must contain the date
// column and all nine metric columns; rows must carry parseable values and
// strictly increasing dates.
func Parse(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	if _, ok := idx[ColDate]; !ok {
		return nil, fmt.Errorf("missing required column %q", ColDate)
	}
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := time.Parse(DateLayout, row[idx[ColDate]])
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date: %w", line, err)
		}
		if n := len(records); n > 0 && !records[n-1].Date.Before(date) {
			return nil, fmt.Errorf("line %d: date %s out of order", line, date.Format(DateLayout))
		}

		rec := Record{Date: date}
		fields := map[string]*float64{
			ColBTCPrice:   &rec.BTCPrice,
			ColETHPrice:   &rec.ETHPrice,
			ColBTCPriceMA: &rec.BTCPriceMA30,
			ColETHPriceMA: &rec.ETHPriceMA30,
			ColBTCVol:     &rec.BTCVol30,
			ColETHVol:     &rec.ETHVol30,
			ColCorr:       &rec.Corr90,
			ColBTCVolume:  &rec.BTCVolume7,
			ColETHVolume:  &rec.ETHVolume7,
		}
		for col, dst := range fields {
			v, err := strconv.ParseFloat(row[idx[col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %s: %w", line, col, err)
			}
			*dst = v
		}
		records = append(records, rec)
	}
	return NewFrame(records), nil
}
