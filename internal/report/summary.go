package report

import "riskeval/internal/risk"

// Summary is the tier distribution of a record set.
type Summary struct {
	Total  int
	Counts map[risk.Tier]int
}

// Summarize counts records per severity tier.
func Summarize(records []risk.Record) Summary {
	s := Summary{
		Total: len(records),
		Counts: map[risk.Tier]int{
			risk.TierI:   0,
			risk.TierII:  0,
			risk.TierIII: 0,
			risk.TierIV:  0,
		},
	}
	for _, r := range records {
		s.Counts[r.Tier]++
	}
	return s
}

// Count returns the number of records in the given tier.
func (s Summary) Count(t risk.Tier) int {
	return s.Counts[t]
}
