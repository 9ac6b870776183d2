// Package export renders tabular data as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV holds a header row and data rows ready for encoding
type CSV struct {
	Header []string
	Rows   [][]string
}

// Bytes encodes the table as CSV
func (c *CSV) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if len(c.Header) > 0 {
		if err := w.Write(c.Header); err != nil {
			return nil, fmt.Errorf("export: writing header: %w", err)
		}
	}
	for i, row := range c.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: writing row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flushing: %w", err)
	}
	return buf.Bytes(), nil
}

// Money formats cents as a decimal string for spreadsheet use
func Money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
