package underwriting

import (
	"fmt"
	"slices"
	"strings"
)

// SensitivityVariable is an assumption the sensitivity analysis varies.
type SensitivityVariable string

const (
	SensitivityPurchasePrice SensitivityVariable = "purchase_price"
	SensitivityExitCapRate   SensitivityVariable = "exit_cap_rate"
	SensitivityRentGrowth    SensitivityVariable = "rent_growth"
	SensitivityExpenseGrowth SensitivityVariable = "expense_growth"
	SensitivityVacancy       SensitivityVariable = "vacancy"
	SensitivityInterestRate  SensitivityVariable = "interest_rate"
	SensitivityLoanToValue   SensitivityVariable = "ltv"
	SensitivityHoldYears     SensitivityVariable = "hold_years"
)

type accessor struct {
	get func(Assumptions) float64
	set func(*Assumptions, float64)
}

func percentAccessor(field func(*Assumptions) *Percent) accessor {
	return accessor{
		get: func(a Assumptions) float64 { return float64(*field(&a)) },
		set: func(a *Assumptions, v float64) { *field(a) = Percent(v) },
	}
}

var sensitivityAccessors = map[SensitivityVariable]accessor{
	SensitivityPurchasePrice: {
		get: func(a Assumptions) float64 { return a.Acquisition.PurchasePrice },
		set: func(a *Assumptions, v float64) { a.Acquisition.PurchasePrice = v },
	},
	SensitivityExitCapRate:   percentAccessor(func(a *Assumptions) *Percent { return &a.Exit.ExitCapRatePct }),
	SensitivityRentGrowth:    percentAccessor(func(a *Assumptions) *Percent { return &a.Income.RentGrowthPct }),
	SensitivityExpenseGrowth: percentAccessor(func(a *Assumptions) *Percent { return &a.Expenses.ExpenseGrowthPct }),
	SensitivityVacancy:       percentAccessor(func(a *Assumptions) *Percent { return &a.Income.VacancyPct }),
	SensitivityInterestRate:  percentAccessor(func(a *Assumptions) *Percent { return &a.Financing.InterestRatePct }),
	SensitivityLoanToValue:   percentAccessor(func(a *Assumptions) *Percent { return &a.Financing.LoanToValuePct }),
	SensitivityHoldYears: {
		get: func(a Assumptions) float64 { return float64(a.Exit.HoldYears) },
		set: func(a *Assumptions, v float64) { a.Exit.HoldYears = int(v) },
	},
}

// SensitivityVariables returns the names of every variable, sorted.
func SensitivityVariables() []string {
	var res []string
	for v := range sensitivityAccessors {
		res = append(res, string(v))
	}
	slices.Sort(res)
	return res
}

// ParseSensitivityVariable parses a variable name.
func ParseSensitivityVariable(s string) (SensitivityVariable, error) {
	v := SensitivityVariable(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sensitivityAccessors[v]; !ok {
		return "", fmt.Errorf("unknown sensitivity variable %q, want one of %s", s, strings.Join(SensitivityVariables(), ", "))
	}
	return v, nil
}

// SensitivityPoint is the pro forma outcome for one value of the variable.
type SensitivityPoint struct {
	Value          float64  `json:"value"`
	UnleveredIRR   *float64 `json:"unleveredIrr"`
	LeveredIRR     *float64 `json:"leveredIrr"`
	EquityMultiple float64  `json:"equityMultiple"`
	DSCR           float64  `json:"dscr"`
	NetProfit      float64  `json:"netProfit"`
	Decision       Decision `json:"decision"`
}

// SensitivityTable is the outcome of the pro forma across a range of values
// of one variable.
type SensitivityTable struct {
	Variable  SensitivityVariable `json:"variable"`
	BaseValue float64             `json:"baseValue"`
	Points    []SensitivityPoint  `json:"points"`
}

// RunSensitivity rebuilds the pro forma of base for each value of the
// variable, every other input being unchanged.
func RunSensitivity(base ProFormaInput, v SensitivityVariable, values []float64) (SensitivityTable, error) {
	acc, ok := sensitivityAccessors[v]
	if !ok {
		return SensitivityTable{}, fmt.Errorf("unknown sensitivity variable %q", v)
	}
	res := SensitivityTable{
		Variable:  v,
		BaseValue: acc.get(base.Assumptions),
		Points:    make([]SensitivityPoint, 0, len(values)),
	}
	for _, value := range values {
		in := base
		acc.set(&in.Assumptions, value)
		pf := BuildProForma(in)
		res.Points = append(res.Points, SensitivityPoint{
			Value:          value,
			UnleveredIRR:   pf.UnleveredIRR,
			LeveredIRR:     pf.LeveredIRR,
			EquityMultiple: pf.EquityMultiple,
			DSCR:           pf.DSCR,
			NetProfit:      pf.NetProfit,
			Decision:       pf.Recommendation.Decision,
		})
	}
	return res, nil
}

// SensitivityRange returns n values evenly spread around base, step apart.
func SensitivityRange(base, step float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	res := make([]float64, n)
	start := base - step*float64(n-1)/2
	for i := range res {
		res[i] = start + step*float64(i)
	}
	return res
}
