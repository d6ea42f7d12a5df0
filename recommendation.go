package underwriting

import "fmt"

// Decision is the underwriting verdict on a deal.
type Decision string

const (
	Proceed     Decision = "PROCEED"
	Conditional Decision = "CONDITIONAL"
	Pass        Decision = "PASS"
)

// RecommendationThresholds are the minimum levered IRR, equity multiple and
// DSCR a deal must reach for a decision.
type RecommendationThresholds struct {
	LeveredIRR     float64 `json:"leveredIrr"`
	EquityMultiple float64 `json:"equityMultiple"`
	DSCR           float64 `json:"dscr"`
}

var (
	proceedThresholds     = RecommendationThresholds{LeveredIRR: 0.20, EquityMultiple: 2.0, DSCR: 1.25}
	conditionalThresholds = RecommendationThresholds{LeveredIRR: 0.15, EquityMultiple: 1.8, DSCR: 1.20}
)

func (t RecommendationThresholds) met(irr *float64, multiple, dscr float64) bool {
	return irr != nil && *irr >= t.LeveredIRR && multiple >= t.EquityMultiple && dscr >= t.DSCR
}

// Recommendation is the decision and the reason for it.
type Recommendation struct {
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason"`
}

// Recommend decides on a deal from its levered IRR, equity multiple and year 1
// DSCR. A deal without an IRR is passed.
func Recommend(leveredIRR *float64, multiple, dscr float64) Recommendation {
	switch {
	case proceedThresholds.met(leveredIRR, multiple, dscr):
		return Recommendation{Proceed, fmt.Sprintf("levered IRR %s, multiple %.2fx and DSCR %.2fx meet every target", pct(leveredIRR), multiple, dscr)}
	case conditionalThresholds.met(leveredIRR, multiple, dscr):
		return Recommendation{Conditional, fmt.Sprintf("levered IRR %s, multiple %.2fx and DSCR %.2fx meet the minimums but not the targets", pct(leveredIRR), multiple, dscr)}
	case leveredIRR == nil:
		return Recommendation{Pass, "levered IRR is unavailable"}
	default:
		return Recommendation{Pass, fmt.Sprintf("levered IRR %s, multiple %.2fx and DSCR %.2fx miss the minimums", pct(leveredIRR), multiple, dscr)}
	}
}

// pct formats a fraction as a percentage, "n/a" when nil.
func pct(rate *float64) string {
	if rate == nil {
		return "n/a"
	}
	return PercentOf(*rate).String()
}
