package report

import "github.com/coveline/deskwatch/internal/dataset"

// Tier is a customer segmentation band by current-year ticket volume,
// used to assign a support-model attention level.
type Tier int

const (
	TierStrategic Tier = iota // 50 or more tickets
	TierGrowth                // 20 to 49
	TierCore                  // 5 to 19
	TierLongTail              // fewer than 5
)

// Tier volume thresholds. Lower bounds are inclusive, so a boundary value
// always lands in the higher tier.
const (
	strategicMin = 50
	growthMin    = 20
	coreMin      = 5
)

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierStrategic:
		return "Strategic"
	case TierGrowth:
		return "Growth"
	case TierCore:
		return "Core"
	case TierLongTail:
		return "Long Tail"
	}
	return "Unknown"
}

// Range returns the tier's ticket-volume band label.
func (t Tier) Range() string {
	switch t {
	case TierStrategic:
		return "50+"
	case TierGrowth:
		return "20-49"
	case TierCore:
		return "5-19"
	case TierLongTail:
		return "<5"
	}
	return ""
}

// MarshalJSON encodes the tier as its display name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// AssignTier places a ticket count into exactly one tier.
func AssignTier(tickets float64) Tier {
	switch {
	case tickets >= strategicMin:
		return TierStrategic
	case tickets >= growthMin:
		return TierGrowth
	case tickets >= coreMin:
		return TierCore
	default:
		return TierLongTail
	}
}

// computeCustomers builds the customer intelligence block from the
// organizations dataset.
func computeCustomers(set dataset.Set, years Years) CustomerIntelligence {
	orgs, ok := set.Get(dataset.Organizations)
	if !ok {
		return CustomerIntelligence{}
	}

	ticketsCol := dataset.YearColumn(years.Current, "Tickets")
	prevTicketsCol := dataset.YearColumn(years.Previous, "Tickets")
	resolutionCol := dataset.YearColumn(years.Current, "Avg_Resolution_Days")

	ci := CustomerIntelligence{Available: true}

	if orgs.HasColumn("Organization") && orgs.HasColumn(ticketsCol) {
		counts := make(map[Tier]*TierSummary)
		for i := 0; i < orgs.Len(); i++ {
			name, ok := orgs.Value(i, "Organization")
			if !ok {
				continue
			}
			tickets, ok := orgs.Number(i, ticketsCol)
			if !ok {
				continue
			}

			pctChange := Unavailable()
			if v, ok := orgs.Number(i, "Pct_Change"); ok {
				pctChange = Avail(v)
			}
			prevTickets := Unavailable()
			if v, ok := orgs.Number(i, prevTicketsCol); ok {
				prevTickets = Avail(v)
			}

			tier := AssignTier(tickets)
			ci.Organizations = append(ci.Organizations, OrgTier{
				Organization: name,
				Previous:     prevTickets,
				Tickets:      tickets,
				PctChange:    pctChange,
				Tier:         tier,
			})

			ts := counts[tier]
			if ts == nil {
				ts = &TierSummary{Tier: tier}
				counts[tier] = ts
			}
			ts.Organizations++
			ts.Tickets += tickets
		}

		// Tiers render in band order even when empty.
		for _, t := range []Tier{TierStrategic, TierGrowth, TierCore, TierLongTail} {
			ts := counts[t]
			if ts == nil {
				ts = &TierSummary{Tier: t}
			}
			ci.Tiers = append(ci.Tiers, *ts)
		}
	}

	ci.Top = RankBy(orgs, "Organization", ticketsCol, true)
	ci.FastestResolution = RankBy(orgs, "Organization", resolutionCol, false)
	ci.SlowestResolution = RankBy(orgs, "Organization", resolutionCol, true)

	return ci
}
