package underwriting

import "math"

// MonthlyPayment returns the level payment that repays principal over months
// at annualRate (a fraction, compounded monthly).
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 || principal <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(months)))
}

// LoanTerms is the payment profile of a single loan.
type LoanTerms struct {
	Principal          float64
	AnnualRate         float64 // fraction, compounded monthly
	InterestOnlyMonths int
	AmortizationMonths int // 0 means interest only for the whole life.
}

// loanMonth is one monthly payment.
type loanMonth struct {
	interest  float64
	principal float64
	balance   float64 // after the payment
}

func (m loanMonth) payment() float64 { return m.interest + m.principal }

// months returns the first n monthly payments. The amortizing payment is
// sized on the balance at the end of the interest-only window.
func (t LoanTerms) months(n int) []loanMonth {
	res := make([]loanMonth, 0, n)
	r := t.AnnualRate / 12
	balance := t.Principal
	var level float64
	for m := 1; m <= n; m++ {
		interest := balance * r
		var principal float64
		if t.AmortizationMonths > 0 && m > t.InterestOnlyMonths {
			if m == t.InterestOnlyMonths+1 {
				level = MonthlyPayment(balance, t.AnnualRate, t.AmortizationMonths)
			}
			principal = math.Min(level-interest, balance)
			if principal < 0 {
				principal = 0
			}
		}
		balance -= principal
		if balance < 1e-6 {
			balance = 0
		}
		res = append(res, loanMonth{interest: interest, principal: principal, balance: balance})
	}
	return res
}

// LoanYear summarizes twelve monthly payments.
type LoanYear struct {
	Year             int     `json:"year"`
	BeginningBalance float64 `json:"beginningBalance"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	DebtService      float64 `json:"debtService"`
	EndingBalance    float64 `json:"endingBalance"`
}

// Schedule returns the yearly amortization ledger over years.
func (t LoanTerms) Schedule(years int) []LoanYear {
	if years <= 0 {
		return nil
	}
	return yearly(t.Principal, t.months(years*12))
}

func yearly(principal float64, months []loanMonth) []LoanYear {
	res := make([]LoanYear, 0, len(months)/12)
	balance := principal
	for y := 0; y*12 < len(months); y++ {
		ly := LoanYear{Year: y + 1, BeginningBalance: balance}
		for _, m := range months[y*12 : min(len(months), (y+1)*12)] {
			ly.Interest += m.interest
			ly.Principal += m.principal
			balance = m.balance
		}
		ly.DebtService = ly.Interest + ly.Principal
		ly.EndingBalance = balance
		res = append(res, ly)
	}
	return res
}

// presentValue discounts the monthly amounts after month `after` (1-based,
// exclusive) back to that month at annualRate compounded monthly.
func presentValue(amounts []float64, after int, annualRate float64) float64 {
	r := annualRate / 12
	pv := 0.0
	discount := 1.0
	for m := after; m < len(amounts); m++ {
		discount *= 1 + r
		pv += amounts[m] / discount
	}
	return pv
}
