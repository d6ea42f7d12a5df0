package underwriting

import (
	"errors"
	"fmt"
)

// MaxLoanStructures is the number of structures a comparison accepts.
const MaxLoanStructures = 4

var (
	// ErrTooManyLoans is returned when more than MaxLoanStructures are compared.
	ErrTooManyLoans = errors.New("too many loan structures")
	// ErrInvalidLoanStructure is returned by LoanStructure.Validate.
	ErrInvalidLoanStructure = errors.New("invalid loan structure")
)

// RateType tells how a loan is priced.
type RateType string

const (
	FixedRate    RateType = "fixed"
	FloatingRate RateType = "floating"
)

// PrepaymentType is the penalty paid to repay a loan before maturity.
type PrepaymentType string

const (
	NoPrepaymentPenalty PrepaymentType = "none"
	YieldMaintenance    PrepaymentType = "yield_maintenance"
	Defeasance          PrepaymentType = "defeasance"
	StepDown            PrepaymentType = "step_down"
)

// LoanStructure is a candidate loan. RatePct is the all-in rate of a fixed
// loan; a floating loan pays the index plus SpreadBps.
type LoanStructure struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	RateType           RateType       `json:"rateType"`
	RatePct            Percent        `json:"ratePct"`
	SpreadBps          float64        `json:"spreadBps"`
	InterestOnlyMonths int            `json:"interestOnlyMonths"`
	AmortizationYears  int            `json:"amortizationYears"` // 0 means interest only
	TermYears          int            `json:"termYears"`
	OriginationFeePct  Percent        `json:"originationFeePct"`
	PrepaymentType     PrepaymentType `json:"prepaymentType"`
	StepDownSchedule   []Percent      `json:"stepDownSchedule,omitempty"` // penalty of each loan year
}

// Validate checks the structure invariants.
func (l LoanStructure) Validate() error {
	var errs []error
	switch l.RateType {
	case FixedRate, FloatingRate:
	default:
		errs = append(errs, fmt.Errorf("unknown rate type %q", l.RateType))
	}
	switch l.PrepaymentType {
	case NoPrepaymentPenalty, YieldMaintenance, Defeasance:
	case StepDown:
		if len(l.StepDownSchedule) < l.TermYears {
			errs = append(errs, fmt.Errorf("step-down schedule has %d years, want at least %d", len(l.StepDownSchedule), l.TermYears))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown prepayment type %q", l.PrepaymentType))
	}
	if l.TermYears < 1 {
		errs = append(errs, fmt.Errorf("term of %d years, want at least 1", l.TermYears))
	}
	if l.InterestOnlyMonths < 0 || l.InterestOnlyMonths > l.TermYears*12 {
		errs = append(errs, fmt.Errorf("%d interest-only months do not fit a %d-year term", l.InterestOnlyMonths, l.TermYears))
	}
	if l.AmortizationYears < 0 {
		errs = append(errs, fmt.Errorf("negative amortization of %d years", l.AmortizationYears))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidLoanStructure, l.Name, errors.Join(errs...))
	}
	return nil
}

// EffectiveRatePct returns the rate the loan pays for a given index rate.
func (l LoanStructure) EffectiveRatePct(indexRatePct Percent) Percent {
	if l.RateType == FloatingRate {
		return indexRatePct + Percent(l.SpreadBps/100)
	}
	return l.RatePct
}

// stepDownRate returns the step-down penalty of loan year y (1-based), the
// last scheduled value applying past the end of the schedule.
func (l LoanStructure) stepDownRate(y int) Percent {
	if len(l.StepDownSchedule) == 0 {
		return 0
	}
	return l.StepDownSchedule[min(y, len(l.StepDownSchedule))-1]
}

// DebtAnalysisInput holds the loan to compare structures for.
// A zero ReinvestmentRatePct uses the contract rate less 1.5 points.
type DebtAnalysisInput struct {
	LoanAmount          float64         `json:"loanAmount"`
	HoldYears           int             `json:"holdYears"`
	IndexRatePct        Percent         `json:"indexRatePct"`
	ReinvestmentRatePct Percent         `json:"reinvestmentRatePct"`
	Loans               []LoanStructure `json:"loans"`
}

// defaultReinvestmentSpread is deducted from the contract rate to proxy the
// yield of the securities bought to defease a loan.
const defaultReinvestmentSpread Percent = 1.5

// DebtLedgerYear is one year of a loan, with the cost of exiting at its end.
type DebtLedgerYear struct {
	Year                  int     `json:"year"`
	BeginningBalance      float64 `json:"beginningBalance"`
	Interest              float64 `json:"interest"`
	Principal             float64 `json:"principal"`
	DebtService           float64 `json:"debtService"`
	EndingBalance         float64 `json:"endingBalance"`
	CumulativeDebtService float64 `json:"cumulativeDebtService"`
	PrepaymentPenalty     float64 `json:"prepaymentPenalty"`
	TotalCostIfExited     float64 `json:"totalCostIfExited"`
}

// LoanAnalysis is the cost profile of one loan structure.
type LoanAnalysis struct {
	Structure                LoanStructure    `json:"structure"`
	EffectiveRatePct         Percent          `json:"effectiveRatePct"`
	OriginationFee           float64          `json:"originationFee"`
	InterestOnlyDebtService  float64          `json:"interestOnlyDebtService"` // annual
	AmortizingDebtService    float64          `json:"amortizingDebtService"`   // annual
	AverageAnnualDebtService float64          `json:"averageAnnualDebtService"`
	TotalInterest            float64          `json:"totalInterest"` // over the hold
	Years                    []DebtLedgerYear `json:"years"`
	ExitYear                 int              `json:"exitYear"`
	BalanceAtExit            float64          `json:"balanceAtExit"`
	PrepaymentPenaltyAtExit  float64          `json:"prepaymentPenaltyAtExit"`
	TotalCostAtHold          float64          `json:"totalCostAtHold"`
	IsOptimal                bool             `json:"isOptimal"`
}

// DebtComparison ranks loan structures by their total cost at the hold.
type DebtComparison struct {
	LoanAmount float64        `json:"loanAmount"`
	HoldYears  int            `json:"holdYears"`
	Loans      []LoanAnalysis `json:"loans"`
	OptimalID  string         `json:"optimalId,omitempty"`
	// Spread between the most and least expensive structures.
	CostSpread float64 `json:"costSpread"`
}

// Optimal returns the minimum-cost loan, false when no loan was compared.
func (c DebtComparison) Optimal() (LoanAnalysis, bool) {
	for _, l := range c.Loans {
		if l.IsOptimal {
			return l, true
		}
	}
	return LoanAnalysis{}, false
}

// AnalyzeDebtStructures compares up to four loan structures for the same loan
// and hold. The optimal loan is the one with the lowest total cost at the
// hold, the first one winning ties.
func AnalyzeDebtStructures(in DebtAnalysisInput) (DebtComparison, error) {
	if len(in.Loans) > MaxLoanStructures {
		return DebtComparison{}, fmt.Errorf("%w: %d, want at most %d", ErrTooManyLoans, len(in.Loans), MaxLoanStructures)
	}
	res := DebtComparison{
		LoanAmount: in.LoanAmount,
		HoldYears:  max(1, in.HoldYears),
		Loans:      make([]LoanAnalysis, 0, len(in.Loans)),
	}
	for _, l := range in.Loans {
		res.Loans = append(res.Loans, analyzeLoan(in, l))
	}
	if len(res.Loans) == 0 {
		return res, nil
	}

	best, worst := 0, 0
	for i, l := range res.Loans {
		if l.TotalCostAtHold < res.Loans[best].TotalCostAtHold {
			best = i
		}
		if l.TotalCostAtHold > res.Loans[worst].TotalCostAtHold {
			worst = i
		}
	}
	res.Loans[best].IsOptimal = true
	res.OptimalID = res.Loans[best].Structure.ID
	res.CostSpread = res.Loans[worst].TotalCostAtHold - res.Loans[best].TotalCostAtHold
	return res, nil
}

func analyzeLoan(in DebtAnalysisInput, l LoanStructure) LoanAnalysis {
	term := max(1, l.TermYears)
	rate := l.EffectiveRatePct(in.IndexRatePct)
	terms := LoanTerms{
		Principal:          in.LoanAmount,
		AnnualRate:         rate.Rate(),
		InterestOnlyMonths: l.InterestOnlyMonths,
		AmortizationMonths: l.AmortizationYears * 12,
	}
	months := terms.months(term * 12)
	interests := make([]float64, len(months))
	payments := make([]float64, len(months))
	for i, m := range months {
		interests[i] = m.interest
		payments[i] = m.payment()
	}

	reinvest := in.ReinvestmentRatePct
	if reinvest == 0 {
		reinvest = rate - defaultReinvestmentSpread
	}
	reinvest = max(0, min(rate, reinvest))

	a := LoanAnalysis{
		Structure:        l,
		EffectiveRatePct: rate,
		OriginationFee:   in.LoanAmount * l.OriginationFeePct.Rate(),
		ExitYear:         min(max(1, in.HoldYears), term),
	}
	if l.InterestOnlyMonths > 0 {
		a.InterestOnlyDebtService = in.LoanAmount * rate.Rate()
	}
	if l.AmortizationYears > 0 {
		a.AmortizingDebtService = 12 * MonthlyPayment(in.LoanAmount, rate.Rate(), l.AmortizationYears*12)
	} else {
		a.AmortizingDebtService = in.LoanAmount * rate.Rate()
	}

	var cumulative float64
	for _, ly := range yearly(in.LoanAmount, months) {
		cumulative += ly.DebtService
		y := DebtLedgerYear{
			Year:                  ly.Year,
			BeginningBalance:      ly.BeginningBalance,
			Interest:              ly.Interest,
			Principal:             ly.Principal,
			DebtService:           ly.DebtService,
			EndingBalance:         ly.EndingBalance,
			CumulativeDebtService: cumulative,
		}
		// no penalty once the loan matures
		if ly.Year < term {
			after := ly.Year * 12
			switch l.PrepaymentType {
			case StepDown:
				y.PrepaymentPenalty = ly.EndingBalance * l.stepDownRate(ly.Year).Rate()
			case YieldMaintenance:
				y.PrepaymentPenalty = presentValue(interests, after, rate.Rate())
			case Defeasance:
				y.PrepaymentPenalty = presentValue(payments, after, reinvest.Rate())
			}
		}
		y.TotalCostIfExited = a.OriginationFee + cumulative + y.PrepaymentPenalty + ly.EndingBalance
		a.Years = append(a.Years, y)

		if ly.Year <= a.ExitYear {
			a.TotalInterest += ly.Interest
		}
	}

	exit := a.Years[a.ExitYear-1]
	a.BalanceAtExit = exit.EndingBalance
	a.PrepaymentPenaltyAtExit = exit.PrepaymentPenalty
	a.TotalCostAtHold = exit.TotalCostIfExited
	a.AverageAnnualDebtService = exit.CumulativeDebtService / float64(a.ExitYear)
	return a
}
