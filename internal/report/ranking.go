package report

import (
	"sort"

	"github.com/coveline/deskwatch/internal/dataset"
)

// rankEntry is an unranked key/value pair in input order.
type rankEntry struct {
	key   string
	value float64
}

// RankBy orders the dataset's entities by a numeric column, descending
// when descending is true (ascending suits "fastest" style rankings).
// Rows missing either column are skipped; nil or incomplete datasets
// yield an empty list.
func RankBy(d *dataset.Dataset, keyCol, valueCol string, descending bool) []RankedRow {
	if d == nil || !d.HasColumn(keyCol) || !d.HasColumn(valueCol) {
		return nil
	}
	entries := make([]rankEntry, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		key, ok := d.Value(i, keyCol)
		if !ok {
			continue
		}
		value, ok := d.Number(i, valueCol)
		if !ok {
			continue
		}
		entries = append(entries, rankEntry{key, value})
	}
	return rankEntries(entries, descending)
}

// rankEntries sorts and assigns dense ranks starting at 1. The sort is
// stable, so entities with equal values keep their input order; equal
// values share a rank and the next distinct value takes rank+1.
func rankEntries(entries []rankEntry, descending bool) []RankedRow {
	sorted := make([]rankEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].value > sorted[j].value
		}
		return sorted[i].value < sorted[j].value
	})

	rows := make([]RankedRow, 0, len(sorted))
	rank := 0
	for i, e := range sorted {
		if i == 0 || e.value != sorted[i-1].value {
			rank++
		}
		rows = append(rows, RankedRow{Rank: rank, Key: e.key, Value: e.value})
	}
	return rows
}
