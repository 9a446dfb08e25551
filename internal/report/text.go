package report

import (
	"fmt"
	"io"

	"riskeval/internal/risk"
)

// WriteSummary renders the executive summary block: total plus one line
// per tier, most severe first.
func WriteSummary(w io.Writer, s Summary, generated string) error {
	_, err := fmt.Fprintf(w,
		"Workplace Risk Assessment Report (NTP 330)\nGenerated: %s\n\nTotal risks assessed: %d\n  Tier I   (%s): %d\n  Tier II  (%s): %d\n  Tier III (%s): %d\n  Tier IV  (%s): %d\n",
		generated,
		s.Total,
		risk.TierI.Label(), s.Count(risk.TierI),
		risk.TierII.Label(), s.Count(risk.TierII),
		risk.TierIII.Label(), s.Count(risk.TierIII),
		risk.TierIV.Label(), s.Count(risk.TierIV),
	)
	return err
}

// WriteTable renders one row per record in the order given, with the
// active criterion in the heading. Callers sort first; this function
// never reorders.
func WriteTable(w io.Writer, records []risk.Record, criterion risk.Criterion) error {
	if _, err := fmt.Fprintf(w, "%d risks, ordered by %s\n\n", len(records), criterion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-38s  %-22s  %-16s  %-8s  %5s  %s\n",
		"ID", "RISK", "AREA", "NDxNExNC", "NR", "TIER"); err != nil {
		return err
	}
	for _, r := range records {
		levels := fmt.Sprintf("%dx%dx%d", r.Deficiency, r.Exposure, r.Consequence)
		if _, err := fmt.Fprintf(w, "%-38s  %-22s  %-16s  %-8s  %5d  %s\n",
			r.ID, r.Name, r.Area, levels, r.Score, r.Tier); err != nil {
			return err
		}
	}
	return nil
}
