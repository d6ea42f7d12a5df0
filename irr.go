package underwriting

import "math"

// IRR solver bounds. The domain is wide enough for any plausible real-estate
// return and the iteration cap bounds the run time of every call.
const (
	irrLow        = -0.9999
	irrHigh       = 10.0
	irrIterations = 200
	irrTolerance  = 1e-7
)

// NPV returns the net present value of cashFlows at rate, the first flow
// being at time 0 and the following ones one period apart.
func NPV(rate float64, cashFlows []float64) float64 {
	npv := 0.0
	discount := 1.0
	for _, cf := range cashFlows {
		npv += cf / discount
		discount *= 1 + rate
	}
	return npv
}

// IRR returns the rate that zeroes the NPV of cashFlows.
//
// It bisects over [-99.99%, 1000%]. ok is false when the flows never change
// sign, or when the bounds do not bracket a root: there is no meaningful rate
// to report in that case.
func IRR(cashFlows []float64) (rate float64, ok bool) {
	if !changesSign(cashFlows) {
		return 0, false
	}
	low, high := irrLow, irrHigh
	npvLow := NPV(low, cashFlows)
	npvHigh := NPV(high, cashFlows)
	switch {
	case npvLow == 0:
		return low, true
	case npvHigh == 0:
		return high, true
	case math.IsNaN(npvLow) || math.IsNaN(npvHigh) || npvLow*npvHigh > 0:
		return 0, false
	}

	mid := 0.0
	for range irrIterations {
		mid = (low + high) / 2
		npvMid := NPV(mid, cashFlows)
		if math.Abs(npvMid) < irrTolerance {
			return mid, true
		}
		if npvLow*npvMid < 0 {
			high = mid
		} else {
			low, npvLow = mid, npvMid
		}
	}
	return mid, true
}

// irrPtr returns the IRR of cashFlows or nil when it is unavailable.
func irrPtr(cashFlows []float64) *float64 {
	rate, ok := IRR(cashFlows)
	if !ok {
		return nil
	}
	return &rate
}

func changesSign(cashFlows []float64) bool {
	var pos, neg bool
	for _, cf := range cashFlows {
		pos = pos || cf > 0
		neg = neg || cf < 0
	}
	return pos && neg
}

// EquityMultiple returns distributions / equity, or 0 without equity.
func EquityMultiple(distributions, equity float64) float64 {
	if equity <= 0 {
		return 0
	}
	return distributions / equity
}
