package report

import "github.com/coveline/deskwatch/internal/dataset"

// CompareYears inner-joins the two single-year slices of a dataset on
// entity identity and computes the per-entity delta and percent change.
// Entities present in only one of the two years are excluded, not
// zero-filled. Result order follows the current-year input order.
func CompareYears(d *dataset.Dataset, entityCol, yearCol, valueCol string, years Years) []EntityDelta {
	if d == nil || !d.HasColumn(entityCol) || !d.HasColumn(yearCol) || !d.HasColumn(valueCol) {
		return nil
	}

	prev := make(map[string]float64)
	for i := 0; i < d.Len(); i++ {
		y, ok := d.Number(i, yearCol)
		if !ok || int(y) != years.Previous {
			continue
		}
		entity, ok := d.Value(i, entityCol)
		if !ok {
			continue
		}
		if _, seen := prev[entity]; seen {
			continue
		}
		if v, ok := d.Number(i, valueCol); ok {
			prev[entity] = v
		}
	}

	var deltas []EntityDelta
	seen := make(map[string]bool)
	for i := 0; i < d.Len(); i++ {
		y, ok := d.Number(i, yearCol)
		if !ok || int(y) != years.Current {
			continue
		}
		entity, ok := d.Value(i, entityCol)
		if !ok || seen[entity] {
			continue
		}
		p, matched := prev[entity]
		if !matched {
			continue
		}
		curr, ok := d.Number(i, valueCol)
		if !ok {
			continue
		}
		seen[entity] = true
		deltas = append(deltas, EntityDelta{
			Entity:    entity,
			Previous:  p,
			Current:   curr,
			Delta:     curr - p,
			PctChange: PercentChange(Avail(p), Avail(curr)),
		})
	}
	return deltas
}
