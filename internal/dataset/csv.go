package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a headed CSV stream into a Dataset. Each value is typed
// once here: plain numerics become Number cells, percent-suffixed
// numerics become Percent cells, everything else stays Text. Thousands
// separators are tolerated in numeric values.
func ParseCSV(name string, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset %s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %s: reading header: %w", name, err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}
	d := New(name, columns)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset %s: reading row %d: %w", name, d.Len()+2, err)
		}

		cells := make([]Cell, len(record))
		for i, raw := range record {
			cells[i] = parseCell(raw)
		}
		d.AddRow(cells)
	}

	return d, nil
}

// parseCell types a raw CSV value.
func parseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: Text, Text: s}
	}

	if strings.HasSuffix(s, "%") {
		num := strings.ReplaceAll(strings.TrimSuffix(s, "%"), ",", "")
		if v, err := strconv.ParseFloat(strings.TrimSpace(num), 64); err == nil {
			return Cell{Kind: Percent, Num: v, Text: s}
		}
		return Cell{Kind: Text, Text: s}
	}

	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return Cell{Kind: Number, Num: v, Text: s}
	}

	return Cell{Kind: Text, Text: s}
}
