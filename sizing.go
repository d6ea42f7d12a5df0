package underwriting

import (
	"fmt"
	"math"
	"strings"
)

// LoanType selects lender sizing constraints.
type LoanType string

const (
	PermanentLoan    LoanType = "permanent"
	ConstructionLoan LoanType = "construction"
	BridgeLoan       LoanType = "bridge"
)

// ParseLoanType parses a loan type name.
func ParseLoanType(s string) (LoanType, error) {
	switch t := LoanType(strings.ToLower(strings.TrimSpace(s))); t {
	case PermanentLoan, ConstructionLoan, BridgeLoan:
		return t, nil
	default:
		return PermanentLoan, fmt.Errorf("unknown loan type %q, want permanent, construction or bridge", s)
	}
}

// SizingConstraints are the lender limits a loan must satisfy.
// A zero MinDSCR or MinDebtYieldPct disables that constraint.
type SizingConstraints struct {
	MaxLTVPct       Percent `json:"maxLtvPct"`
	MinDSCR         float64 `json:"minDscr"`
	MinDebtYieldPct Percent `json:"minDebtYieldPct"`
}

// LoanTypeConstraints returns the usual constraints of a loan type. Unknown
// types get the permanent loan constraints.
func LoanTypeConstraints(t LoanType) SizingConstraints {
	switch t {
	case ConstructionLoan:
		return SizingConstraints{MaxLTVPct: 65, MinDSCR: 1.20, MinDebtYieldPct: 10}
	case BridgeLoan:
		return SizingConstraints{MaxLTVPct: 70, MinDSCR: 1.15, MinDebtYieldPct: 9}
	default:
		return SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25, MinDebtYieldPct: 8}
	}
}

// LoanSizingInput holds what a lender sizes a loan on.
type LoanSizingInput struct {
	NOI               float64           `json:"noi"`
	PropertyValue     float64           `json:"propertyValue"`
	Constraints       SizingConstraints `json:"constraints"`
	InterestRatePct   Percent           `json:"interestRatePct"`
	AmortizationYears int               `json:"amortizationYears"` // 0 sizes on interest-only payments
}

// LoanSizing is the maximum loan and the constraint that binds it.
type LoanSizing struct {
	MaxByLTV          float64  `json:"maxByLtv"`
	MaxByDSCR         *float64 `json:"maxByDscr"`      // nil when the constraint is disabled
	MaxByDebtYield    *float64 `json:"maxByDebtYield"` // nil when the constraint is disabled
	LoanAmount        float64  `json:"loanAmount"`
	BindingConstraint string   `json:"bindingConstraint"`
	LTVPct            Percent  `json:"ltvPct"`
	DebtYieldPct      Percent  `json:"debtYieldPct"`
}

// SizeLoan returns the largest loan satisfying every active constraint: the
// loan-to-value, the debt service coverage on the NOI, and the debt yield.
func SizeLoan(in LoanSizingInput) LoanSizing {
	res := LoanSizing{
		MaxByLTV:          math.Max(0, in.PropertyValue*in.Constraints.MaxLTVPct.Rate()),
		BindingConstraint: "ltv",
	}
	res.LoanAmount = res.MaxByLTV

	if in.Constraints.MinDSCR > 0 {
		capacity := math.Max(0, in.NOI/in.Constraints.MinDSCR)
		v := principalFor(capacity, in.InterestRatePct.Rate(), in.AmortizationYears)
		res.MaxByDSCR = &v
		if v < res.LoanAmount {
			res.LoanAmount, res.BindingConstraint = v, "dscr"
		}
	}
	if in.Constraints.MinDebtYieldPct > 0 {
		v := math.Max(0, in.NOI/in.Constraints.MinDebtYieldPct.Rate())
		res.MaxByDebtYield = &v
		if v < res.LoanAmount {
			res.LoanAmount, res.BindingConstraint = v, "debt_yield"
		}
	}

	if in.PropertyValue > 0 {
		res.LTVPct = PercentOf(res.LoanAmount / in.PropertyValue)
	}
	if res.LoanAmount > 0 {
		res.DebtYieldPct = PercentOf(in.NOI / res.LoanAmount)
	}
	return res
}

// principalFor returns the principal whose annual debt service is
// annualPayment, on a monthly annuity over amortizationYears, or interest only
// when amortizationYears is 0.
func principalFor(annualPayment, annualRate float64, amortizationYears int) float64 {
	if amortizationYears <= 0 {
		if annualRate <= 0 {
			return 0
		}
		return annualPayment / annualRate
	}
	n := float64(amortizationYears * 12)
	r := annualRate / 12
	monthly := annualPayment / 12
	if r == 0 {
		return monthly * n
	}
	return monthly * (1 - math.Pow(1+r, -n)) / r
}
