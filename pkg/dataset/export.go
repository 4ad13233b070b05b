package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSV serializes the frame back to CSV with the original header layout.
// Floats use the shortest exact representation so an export/re-parse
// round-trip reproduces the in-memory values bit for bit.
func (f *Frame) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{ColDate}, Columns...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range f.Records() {
		row[0] = rec.Date.Format(DateLayout)
		for i, col := range Columns {
			row[i+1] = strconv.FormatFloat(rec.metric(col), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %s: %w", row[0], err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
