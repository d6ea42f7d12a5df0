package underwriting

import (
	"errors"
	"fmt"
)

// BudgetInput is the development budget of a deal.
type BudgetInput struct {
	Items       []DevelopmentBudgetLineItem `json:"items"`
	Contingency ContingencyConfig           `json:"contingency"`
}

// DebtOptions are the loan structures to compare for a deal.
type DebtOptions struct {
	IndexRatePct        Percent         `json:"indexRatePct"`
	ReinvestmentRatePct Percent         `json:"reinvestmentRatePct"`
	Loans               []LoanStructure `json:"loans"`
}

// DealInput is a complete deal document. Assumptions are applied over
// DefaultAssumptions; every other section is optional.
type DealInput struct {
	Name        string              `json:"name"`
	Assumptions AssumptionsPatch    `json:"assumptions"`
	RentRoll    *RentRollInput      `json:"rentRoll,omitempty"`
	Budget      *BudgetInput        `json:"budget,omitempty"`
	Debt        *DebtOptions        `json:"debt,omitempty"`
	Waterfall   *WaterfallStructure `json:"waterfall,omitempty"`
}

// Validate checks the loan structures and the waterfall of the deal.
func (d DealInput) Validate() error {
	var errs []error
	if d.RentRoll != nil {
		for _, l := range d.RentRoll.Leases {
			errs = append(errs, l.Validate())
		}
	}
	if d.Debt != nil {
		if len(d.Debt.Loans) > MaxLoanStructures {
			errs = append(errs, fmt.Errorf("%w: %d, want at most %d", ErrTooManyLoans, len(d.Debt.Loans), MaxLoanStructures))
		}
		for _, l := range d.Debt.Loans {
			errs = append(errs, l.Validate())
		}
	}
	if d.Waterfall != nil {
		errs = append(errs, d.Waterfall.Validate())
	}
	return errors.Join(errs...)
}

// DealAnalysis is the result of underwriting a deal.
type DealAnalysis struct {
	Name        string                    `json:"name"`
	Assumptions Assumptions               `json:"assumptions"`
	RentRoll    *RentRollAggregation      `json:"rentRoll,omitempty"`
	Budget      *DevelopmentBudgetSummary `json:"budget,omitempty"`
	ProForma    ProFormaResults           `json:"proForma"`
	Debt        *DebtComparison           `json:"debt,omitempty"`
	Waterfall   *WaterfallResults         `json:"waterfall,omitempty"`
}

// Underwrite runs the whole analysis of a deal: the rent roll and the budget
// feed the pro forma, whose loan and cash flows feed the debt comparison and
// the waterfall.
func Underwrite(in DealInput) (DealAnalysis, error) {
	if err := in.Validate(); err != nil {
		return DealAnalysis{}, fmt.Errorf("deal %q: %w", in.Name, err)
	}
	res := DealAnalysis{
		Name:        in.Name,
		Assumptions: ApplyDefaults(in.Assumptions),
	}
	hold := res.Assumptions.Exit.HoldYears

	if in.RentRoll != nil {
		rr := *in.RentRoll
		// the rent roll covers the forward year the exit is priced on
		rr.HoldYears = clampHold(max(rr.HoldYears, hold+1))
		agg, err := AggregateRentRoll(rr)
		if err != nil {
			return DealAnalysis{}, fmt.Errorf("deal %q: rent roll: %w", in.Name, err)
		}
		res.RentRoll = &agg
	}
	if in.Budget != nil {
		b := SummarizeDevelopmentBudget(in.Budget.Items, in.Budget.Contingency)
		res.Budget = &b
	}

	res.ProForma = BuildProForma(ProFormaInput{
		Assumptions: res.Assumptions,
		RentRoll:    res.RentRoll,
		Budget:      res.Budget,
	})

	if in.Debt != nil {
		cmp, err := AnalyzeDebtStructures(DebtAnalysisInput{
			LoanAmount:          res.ProForma.LoanAmount,
			HoldYears:           res.ProForma.HoldYears,
			IndexRatePct:        in.Debt.IndexRatePct,
			ReinvestmentRatePct: in.Debt.ReinvestmentRatePct,
			Loans:               in.Debt.Loans,
		})
		if err != nil {
			return DealAnalysis{}, fmt.Errorf("deal %q: debt: %w", in.Name, err)
		}
		res.Debt = &cmp
	}
	if in.Waterfall != nil {
		w := CalculateWaterfall(WaterfallInputFromProForma(*in.Waterfall, res.ProForma))
		res.Waterfall = &w
	}
	return res, nil
}
