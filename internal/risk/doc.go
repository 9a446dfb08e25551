// Package risk implements the NTP 330 evaluation core: the record model,
// the score calculator and severity classifier, form-input validation,
// and the ordering policy for record collections.
//
// Everything in this package is pure - no I/O, no process state. The
// persistence gateway (internal/store) and the orchestrator
// (internal/manager) build on these types.
//
// Scoring follows NTP 330 (INSHT): the risk score NR is the product of
// the deficiency level (ND), exposure level (NE) and consequence level
// (NC), classified into four severity tiers:
//
//	NR >= 4000        Tier I    critical situation
//	500 <= NR < 4000  Tier II   correct and adopt measures
//	150 <= NR < 500   Tier III  improve if feasible
//	NR < 150          Tier IV   maintain current measures
package risk
