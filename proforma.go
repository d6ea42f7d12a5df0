package underwriting

import "math"

// DSCRNotApplicable is the debt service coverage reported without debt service.
const DSCRNotApplicable = 999

// ProFormaInput holds everything a pro forma is built from. RentRoll and
// Budget are optional.
type ProFormaInput struct {
	Assumptions Assumptions               `json:"assumptions"`
	RentRoll    *RentRollAggregation      `json:"rentRoll,omitempty"`
	Budget      *DevelopmentBudgetSummary `json:"budget,omitempty"`
}

// AcquisitionBasis is the all-in cost of the deal.
type AcquisitionBasis struct {
	PurchasePrice     float64 `json:"purchasePrice"`
	ClosingCosts      float64 `json:"closingCosts"`
	DevelopmentBudget float64 `json:"developmentBudget"`
	LoanFees          float64 `json:"loanFees"`
	Total             float64 `json:"total"`
}

// SourcesAndUses balances the capital raised against its uses.
type SourcesAndUses struct {
	LoanAmount   float64 `json:"loanAmount"`
	Equity       float64 `json:"equity"`
	TotalSources float64 `json:"totalSources"`

	PurchasePrice     float64 `json:"purchasePrice"`
	ClosingCosts      float64 `json:"closingCosts"`
	DevelopmentBudget float64 `json:"developmentBudget"`
	LoanFees          float64 `json:"loanFees"`
	TotalUses         float64 `json:"totalUses"`
}

// AnnualCashFlow is one year of the pro forma.
type AnnualCashFlow struct {
	Year                 int     `json:"year"`
	GrossRevenue         float64 `json:"grossRevenue"`
	VacancyAndCreditLoss float64 `json:"vacancyAndCreditLoss"`
	OtherIncome          float64 `json:"otherIncome"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	OperatingExpenses    float64 `json:"operatingExpenses"`
	NOI                  float64 `json:"noi"`
	DebtService          float64 `json:"debtService"`
	LoanBalance          float64 `json:"loanBalance"` // at year end
	LeveredCashFlow      float64 `json:"leveredCashFlow"`
	CumulativeCashFlow   float64 `json:"cumulativeCashFlow"`
	CashOnCash           float64 `json:"cashOnCash"`
}

// ExitAnalysis is the sale at the end of the hold.
type ExitAnalysis struct {
	Year             int     `json:"year"`
	TerminalNOI      float64 `json:"terminalNoi"` // forward NOI of the year after the sale
	ExitCapRatePct   Percent `json:"exitCapRatePct"`
	GrossSalePrice   float64 `json:"grossSalePrice"`
	DispositionCosts float64 `json:"dispositionCosts"`
	LoanPayoff       float64 `json:"loanPayoff"`
	NetExitProceeds  float64 `json:"netExitProceeds"`
	TotalProfit      float64 `json:"totalProfit"`
}

// ProFormaResults is the complete investment pro forma. Ratios without a Pct
// suffix are fractions (0.12 is 12%). IRRs are nil when unavailable.
type ProFormaResults struct {
	HoldYears        int              `json:"holdYears"`
	AcquisitionBasis AcquisitionBasis `json:"acquisitionBasis"`
	SourcesAndUses   SourcesAndUses   `json:"sourcesAndUses"`
	LoanSizing       LoanSizing       `json:"loanSizing"`
	LoanAmount       float64          `json:"loanAmount"`
	EquityRequired   float64          `json:"equityRequired"`
	AnnualCashFlows  []AnnualCashFlow `json:"annualCashFlows"`
	Exit             ExitAnalysis     `json:"exit"`

	UnleveredIRR    *float64 `json:"unleveredIrr"`
	LeveredIRR      *float64 `json:"leveredIrr"`
	EquityMultiple  float64  `json:"equityMultiple"`
	CashOnCashYear1 float64  `json:"cashOnCashYear1"`
	NetProfit       float64  `json:"netProfit"`
	GoingInCapRate  float64  `json:"goingInCapRate"`
	DSCR            float64  `json:"dscr"`
	DebtYield       float64  `json:"debtYield"`
	LTVAtExit       float64  `json:"ltvAtExit"`
	WALTYears       float64  `json:"waltYears"`

	Recommendation Recommendation `json:"recommendation"`
}

// OperatingCashFlows returns the levered cash flow of each year of the hold.
func (r ProFormaResults) OperatingCashFlows() []float64 {
	res := make([]float64, len(r.AnnualCashFlows))
	for i, cf := range r.AnnualCashFlows {
		res[i] = cf.LeveredCashFlow
	}
	return res
}

// LeveredCashFlows returns the equity cash flows: the equity invested at time
// 0, then each year's levered cash flow, the net exit proceeds being added to
// the final year.
func (r ProFormaResults) LeveredCashFlows() []float64 {
	flows := append([]float64{-r.EquityRequired}, r.OperatingCashFlows()...)
	flows[len(flows)-1] += r.Exit.NetExitProceeds
	return flows
}

// operations computes the operating lines of a year from the assumptions.
type operations struct {
	a  Assumptions
	rr *RentRollAggregation
}

func growth(p Percent, year int) float64 { return math.Pow(1+p.Rate(), float64(year-1)) }

// year returns the operating lines of year (1-based); debt lines are left to
// the caller.
func (o operations) year(y int) AnnualCashFlow {
	in, ex := o.a.Income, o.a.Expenses
	cf := AnnualCashFlow{Year: y}

	if rev, ok := o.rentRollRevenue(y); ok {
		cf.GrossRevenue = rev
		cf.VacancyAndCreditLoss = rev * in.CollectionLossPct.Rate()
	} else {
		cf.GrossRevenue = in.GrossPotentialRent * growth(in.RentGrowthPct, y)
		cf.VacancyAndCreditLoss = cf.GrossRevenue * (in.VacancyPct.Rate() + in.CollectionLossPct.Rate())
	}
	cf.OtherIncome = in.OtherIncome * growth(in.RentGrowthPct, y)
	cf.EffectiveGrossIncome = cf.GrossRevenue - cf.VacancyAndCreditLoss + cf.OtherIncome

	fixed := (ex.OperatingExpenses + ex.ReservesPerSF*o.a.BuildableSF) * growth(ex.ExpenseGrowthPct, y)
	cf.OperatingExpenses = fixed + cf.EffectiveGrossIncome*ex.ManagementFeePct.Rate()
	cf.NOI = cf.EffectiveGrossIncome - cf.OperatingExpenses
	return cf
}

// rentRollRevenue returns the rent roll revenue of year y. Years past the
// schedule grow the last scheduled year at the rent growth.
func (o operations) rentRollRevenue(y int) (float64, bool) {
	if o.rr == nil || !o.rr.HasLeases || len(o.rr.Years) == 0 {
		return 0, false
	}
	if rev, ok := o.rr.Revenue(y); ok {
		return rev, true
	}
	last := len(o.rr.Years)
	rev, _ := o.rr.Revenue(last)
	return rev * math.Pow(1+o.a.Income.RentGrowthPct.Rate(), float64(y-last)), true
}

// BuildProForma computes the investment pro forma of a deal.
//
// The loan is sized on the purchase price plus the development budget and on
// the year 1 NOI. Debt service is interest only during the interest-only
// window, then a level monthly annuity. The sale capitalizes the NOI of the
// year following the hold at the exit cap rate.
func BuildProForma(in ProFormaInput) ProFormaResults {
	a := in.Assumptions
	hold := clampHold(a.Exit.HoldYears)
	ops := operations{a: a, rr: in.RentRoll}

	var budget float64
	if in.Budget != nil {
		budget = in.Budget.TotalBudget
	}
	price := a.Acquisition.PurchasePrice
	closing := price * a.Acquisition.ClosingCostsPct.Rate()

	year1 := ops.year(1)
	sizing := SizeLoan(LoanSizingInput{
		NOI:           year1.NOI,
		PropertyValue: price + budget,
		Constraints: SizingConstraints{
			MaxLTVPct:       a.Financing.LoanToValuePct,
			MinDSCR:         a.Financing.MinDSCR,
			MinDebtYieldPct: a.Financing.MinDebtYieldPct,
		},
		InterestRatePct:   a.Financing.InterestRatePct,
		AmortizationYears: a.Financing.AmortizationYears,
	})
	loan := sizing.LoanAmount
	fees := loan * a.Financing.LoanFeesPct.Rate()

	basis := AcquisitionBasis{
		PurchasePrice:     price,
		ClosingCosts:      closing,
		DevelopmentBudget: budget,
		LoanFees:          fees,
		Total:             price + closing + budget + fees,
	}
	equity := basis.Total - loan

	res := ProFormaResults{
		HoldYears:        hold,
		AcquisitionBasis: basis,
		SourcesAndUses: SourcesAndUses{
			LoanAmount:        loan,
			Equity:            equity,
			TotalSources:      loan + equity,
			PurchasePrice:     price,
			ClosingCosts:      closing,
			DevelopmentBudget: budget,
			LoanFees:          fees,
			TotalUses:         basis.Total,
		},
		LoanSizing:      sizing,
		LoanAmount:      loan,
		EquityRequired:  equity,
		AnnualCashFlows: make([]AnnualCashFlow, 0, hold),
	}

	debt := LoanTerms{
		Principal:          loan,
		AnnualRate:         a.Financing.InterestRatePct.Rate(),
		InterestOnlyMonths: a.Financing.InterestOnlyMonths,
		AmortizationMonths: a.Financing.AmortizationYears * 12,
	}.Schedule(hold)

	unlevered := []float64{-(price + closing + budget)}
	var cumulative float64
	for y := 1; y <= hold; y++ {
		cf := ops.year(y)
		cf.DebtService = debt[y-1].DebtService
		cf.LoanBalance = debt[y-1].EndingBalance
		cf.LeveredCashFlow = cf.NOI - cf.DebtService
		cumulative += cf.LeveredCashFlow
		cf.CumulativeCashFlow = cumulative
		if equity > 0 {
			cf.CashOnCash = cf.LeveredCashFlow / equity
		}
		res.AnnualCashFlows = append(res.AnnualCashFlows, cf)
		unlevered = append(unlevered, cf.NOI)
	}

	// exit
	exit := ExitAnalysis{
		Year:           hold,
		TerminalNOI:    ops.year(hold + 1).NOI,
		ExitCapRatePct: a.Exit.ExitCapRatePct,
		LoanPayoff:     debt[hold-1].EndingBalance,
	}
	if a.Exit.ExitCapRatePct > 0 {
		exit.GrossSalePrice = exit.TerminalNOI / a.Exit.ExitCapRatePct.Rate()
	}
	exit.DispositionCosts = exit.GrossSalePrice * a.Exit.DispositionCostsPct.Rate()
	exit.NetExitProceeds = exit.GrossSalePrice - exit.DispositionCosts - exit.LoanPayoff
	exit.TotalProfit = cumulative + exit.NetExitProceeds - equity
	res.Exit = exit
	unlevered[hold] += exit.GrossSalePrice - exit.DispositionCosts

	res.UnleveredIRR = irrPtr(unlevered)
	res.LeveredIRR = irrPtr(res.LeveredCashFlows())
	res.EquityMultiple = EquityMultiple(cumulative+exit.NetExitProceeds, equity)
	res.NetProfit = exit.TotalProfit

	first := res.AnnualCashFlows[0]
	res.CashOnCashYear1 = first.CashOnCash
	if price > 0 {
		res.GoingInCapRate = first.NOI / price
	}
	res.DSCR = DSCRNotApplicable
	if first.DebtService > 0 {
		res.DSCR = first.NOI / first.DebtService
	}
	if loan > 0 {
		res.DebtYield = first.NOI / loan
	}
	if exit.GrossSalePrice > 0 {
		res.LTVAtExit = exit.LoanPayoff / exit.GrossSalePrice
	}
	if in.RentRoll != nil {
		res.WALTYears = in.RentRoll.WALTYears
	}
	res.Recommendation = Recommend(res.LeveredIRR, res.EquityMultiple, res.DSCR)
	return res
}
