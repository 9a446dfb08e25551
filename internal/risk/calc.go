package risk

// Score returns the NTP 330 risk score NR = ND × NE × NC.
//
// Inputs are positive integers from the fixed ordinal scales; range
// checking is the Validator's job, not this function's. Pure arithmetic,
// no failure mode.
func Score(nd, ne, nc int) int {
	return nd * ne * nc
}

// Classify maps a risk score onto its severity band.
//
// The step function is inclusive on the lower bound of each band:
// exactly 4000 is Tier I, exactly 500 is Tier II, exactly 150 is Tier III.
// Every finite non-negative score classifies into exactly one tier.
func Classify(score int) Assessment {
	var t Tier
	switch {
	case score >= 4000:
		t = TierI
	case score >= 500:
		t = TierII
	case score >= 150:
		t = TierIII
	default:
		t = TierIV
	}
	return Assessment{Tier: t, Label: t.Label(), Priority: t.Priority()}
}
