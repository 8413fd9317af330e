package report

import (
	"github.com/coveline/deskwatch/internal/dataset"
)

// SumWhere sums valueCol over rows whose filterCol equals filterVal.
// Unavailable when either column is missing; a present dataset with no
// matching rows sums to an available zero.
func SumWhere(d *dataset.Dataset, valueCol, filterCol string, filterVal float64) Scalar {
	if d == nil || !d.HasColumn(valueCol) || !d.HasColumn(filterCol) {
		return Unavailable()
	}
	var sum float64
	for i := 0; i < d.Len(); i++ {
		f, ok := d.Number(i, filterCol)
		if !ok || f != filterVal {
			continue
		}
		if v, ok := d.Number(i, valueCol); ok {
			sum += v
		}
	}
	return Avail(sum)
}

// Mean averages the numeric values of a column. Unavailable when the
// column is missing or holds no numeric values.
func Mean(d *dataset.Dataset, col string) Scalar {
	if d == nil || !d.HasColumn(col) {
		return Unavailable()
	}
	var sum float64
	var n int
	for i := 0; i < d.Len(); i++ {
		if v, ok := d.Number(i, col); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return Unavailable()
	}
	return Avail(sum / float64(n))
}

// PercentChange is the relative change from prev to curr in percent.
// Unavailable when either input is unavailable or prev is zero; division
// by zero is never surfaced as infinity.
func PercentChange(prev, curr Scalar) Scalar {
	if !prev.Available || !curr.Available || prev.Value == 0 {
		return Unavailable()
	}
	return Avail((curr.Value - prev.Value) / prev.Value * 100)
}

// PointChange is the arithmetic difference between two values already
// expressed as percentages. Callers must not conflate this with
// PercentChange: 40% to 44% is +4 points but +10 percent.
func PointChange(prev, curr Scalar) Scalar {
	if !prev.Available || !curr.Available {
		return Unavailable()
	}
	return Avail(curr.Value - prev.Value)
}

// LookupYear finds the first row whose keyCol text equals key and returns
// the {year}_{field} value. A missing category or year column reports
// unavailable rather than raising.
func LookupYear(d *dataset.Dataset, keyCol, key string, year int, field string) Scalar {
	if d == nil || !d.HasColumn(keyCol) {
		return Unavailable()
	}
	col := dataset.YearColumn(year, field)
	for i := 0; i < d.Len(); i++ {
		k, ok := d.Value(i, keyCol)
		if !ok || k != key {
			continue
		}
		if v, ok := d.Number(i, col); ok {
			return Avail(v)
		}
		return Unavailable()
	}
	return Unavailable()
}
