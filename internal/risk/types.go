package risk

// Tier identifies one of the four NTP 330 severity bands.
// Tier I is the most severe, Tier IV the least.
type Tier string

const (
	TierI   Tier = "I"
	TierII  Tier = "II"
	TierIII Tier = "III"
	TierIV  Tier = "IV"
)

// Label returns the human-readable intervention label for the tier.
func (t Tier) Label() string {
	switch t {
	case TierI:
		return "critical situation"
	case TierII:
		return "correct and adopt measures"
	case TierIII:
		return "improve if feasible"
	case TierIV:
		return "maintain current measures"
	}
	return "unknown"
}

// Priority returns the numeric ordering weight for the tier.
// Lower is more severe (Tier I = 1).
func (t Tier) Priority() int {
	switch t {
	case TierI:
		return 1
	case TierII:
		return 2
	case TierIII:
		return 3
	case TierIV:
		return 4
	}
	return 0
}

// Assessment is the result of classifying a risk score.
type Assessment struct {
	Tier     Tier   `json:"tier"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// Record is the unit of persisted state: one evaluated workplace hazard.
//
// Score, Tier, TierLabel and Priority are derived from (Deficiency,
// Exposure, Consequence) at construction time and are never set
// independently - see NewRecord. CreatedDate is stamped at creation and
// immutable thereafter, including across edits.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Area        string `json:"area"`
	Description string `json:"description"`
	Mitigations string `json:"mitigations"`
	Deficiency  int    `json:"nd"`
	Exposure    int    `json:"ne"`
	Consequence int    `json:"nc"`
	Score       int    `json:"nr"`
	Tier        Tier   `json:"tier"`
	TierLabel   string `json:"tier_label"`
	Priority    int    `json:"priority"`
	CreatedDate string `json:"created_date"`
}

// Input is a raw form submission before validation.
//
// The three level fields are pointers so that an unset selection is an
// explicit absent marker (nil), never a zero or a string placeholder.
// Free-text fields arrive as-is; Validate trims before checking.
type Input struct {
	Name        string
	Area        string
	Description string
	Mitigations string
	Deficiency  *int
	Exposure    *int
	Consequence *int
}

// NewRecord builds a Record from a validated input, computing the derived
// fields. The input's level pointers must be non-nil (callers run Validate
// first). id and createdDate come from the caller: the orchestrator owns
// identity assignment and date stamping.
func NewRecord(id string, in Input, createdDate string) Record {
	nd, ne, nc := *in.Deficiency, *in.Exposure, *in.Consequence
	score := Score(nd, ne, nc)
	a := Classify(score)
	return Record{
		ID:          id,
		Name:        in.Name,
		Area:        in.Area,
		Description: in.Description,
		Mitigations: in.Mitigations,
		Deficiency:  nd,
		Exposure:    ne,
		Consequence: nc,
		Score:       score,
		Tier:        a.Tier,
		TierLabel:   a.Label,
		Priority:    a.Priority,
		CreatedDate: createdDate,
	}
}

// InputFromRecord converts a stored record back into form input, used by
// BeginEdit to hand field values to the form binder.
func InputFromRecord(r Record) Input {
	nd, ne, nc := r.Deficiency, r.Exposure, r.Consequence
	return Input{
		Name:        r.Name,
		Area:        r.Area,
		Description: r.Description,
		Mitigations: r.Mitigations,
		Deficiency:  &nd,
		Exposure:    &ne,
		Consequence: &nc,
	}
}
