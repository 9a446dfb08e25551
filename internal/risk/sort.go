package risk

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criterion selects the comparator applied by Sorter.Sort.
type Criterion string

const (
	// ByPriority orders ascending by severity priority (Tier I first),
	// ties broken by descending risk score. This is the default.
	ByPriority Criterion = "priority"

	// ByScore orders descending by risk score only.
	ByScore Criterion = "score"

	// ByName orders ascending by hazard name, locale-aware.
	ByName Criterion = "name"

	// ByArea orders ascending by area, locale-aware.
	ByArea Criterion = "area"
)

// DefaultCriterion is the ordering applied when none is chosen.
const DefaultCriterion = ByPriority

// ValidCriteria lists the recognized sort criteria.
var ValidCriteria = []Criterion{ByPriority, ByScore, ByName, ByArea}

// Sorter reorders record collections. Text comparisons use a locale
// collator so accented names sort correctly.
//
// Not safe for concurrent use: the underlying collator carries state.
// The single-writer orchestrator owns one instance.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter collating text in the given language.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Sort returns the records reordered by the criterion. The input slice is
// never mutated - callers must not assume aliasing. An unknown criterion
// returns a copy in the input order, not an error. Sorting is stable:
// records that compare equal keep their prior relative order.
func (s *Sorter) Sort(records []Record, c Criterion) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	switch c {
	case ByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Priority != out[j].Priority {
				return out[i].Priority < out[j].Priority
			}
			return out[i].Score > out[j].Score
		})
	case ByScore:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score > out[j].Score
		})
	case ByName:
		sort.SliceStable(out, func(i, j int) bool {
			return s.collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case ByArea:
		sort.SliceStable(out, func(i, j int) bool {
			return s.collator.CompareString(out[i].Area, out[j].Area) < 0
		})
	}

	return out
}
