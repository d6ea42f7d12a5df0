package underwriting

// Acquisition holds the purchase assumptions.
type Acquisition struct {
	PurchasePrice   float64 `json:"purchasePrice"`
	ClosingCostsPct Percent `json:"closingCostsPct"` // of the purchase price
}

// Income holds the revenue assumptions used when no rent roll is supplied,
// and the growth applied to revenue lines in every case.
type Income struct {
	GrossPotentialRent float64 `json:"grossPotentialRent"` // year 1, annual
	OtherIncome        float64 `json:"otherIncome"`        // year 1, annual
	VacancyPct         Percent `json:"vacancyPct"`
	CollectionLossPct  Percent `json:"collectionLossPct"`
	RentGrowthPct      Percent `json:"rentGrowthPct"`
}

// Expenses holds the operating expense assumptions.
type Expenses struct {
	OperatingExpenses float64 `json:"operatingExpenses"` // year 1, annual, excluding management fee
	ExpenseGrowthPct  Percent `json:"expenseGrowthPct"`
	ManagementFeePct  Percent `json:"managementFeePct"` // of effective gross income
	ReservesPerSF     float64 `json:"reservesPerSf"`    // annual replacement reserves per buildable SF
}

// Financing holds the senior loan sizing and pricing assumptions.
// A zero MinDSCR or MinDebtYieldPct disables that sizing constraint.
type Financing struct {
	LoanToValuePct     Percent `json:"loanToValuePct"`
	MinDSCR            float64 `json:"minDscr"`
	MinDebtYieldPct    Percent `json:"minDebtYieldPct"`
	InterestRatePct    Percent `json:"interestRatePct"`
	AmortizationYears  int     `json:"amortizationYears"` // 0 means interest only
	InterestOnlyMonths int     `json:"interestOnlyMonths"`
	LoanFeesPct        Percent `json:"loanFeesPct"` // of the loan amount
}

// Exit holds the disposition assumptions.
type Exit struct {
	HoldYears           int     `json:"holdYears"`
	ExitCapRatePct      Percent `json:"exitCapRatePct"`
	DispositionCostsPct Percent `json:"dispositionCostsPct"` // of the gross sale price
}

// Assumptions is the complete set of deal assumptions of a pro forma.
// It is a value: the engine never modifies the caller's copy.
type Assumptions struct {
	Acquisition Acquisition `json:"acquisition"`
	Income      Income      `json:"income"`
	Expenses    Expenses    `json:"expenses"`
	Financing   Financing   `json:"financing"`
	Exit        Exit        `json:"exit"`
	BuildableSF float64     `json:"buildableSf"`
}

// DefaultAssumptions returns the assumptions a new deal starts from.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Acquisition: Acquisition{
			PurchasePrice:   0,
			ClosingCostsPct: 2,
		},
		Income: Income{
			VacancyPct:        5,
			CollectionLossPct: 1,
			RentGrowthPct:     3,
		},
		Expenses: Expenses{
			ExpenseGrowthPct: 3,
			ManagementFeePct: 3,
		},
		Financing: Financing{
			LoanToValuePct:    65,
			MinDSCR:           1.25,
			InterestRatePct:   6.5,
			AmortizationYears: 30,
			LoanFeesPct:       1,
		},
		Exit: Exit{
			HoldYears:           5,
			ExitCapRatePct:      6.5,
			DispositionCostsPct: 2,
		},
	}
}

// AssumptionsPatch is a partial update of Assumptions: nil fields are left
// unchanged. It decodes naturally from a partial JSON document.
type AssumptionsPatch struct {
	PurchasePrice       *float64 `json:"purchasePrice,omitempty"`
	ClosingCostsPct     *Percent `json:"closingCostsPct,omitempty"`
	GrossPotentialRent  *float64 `json:"grossPotentialRent,omitempty"`
	OtherIncome         *float64 `json:"otherIncome,omitempty"`
	VacancyPct          *Percent `json:"vacancyPct,omitempty"`
	CollectionLossPct   *Percent `json:"collectionLossPct,omitempty"`
	RentGrowthPct       *Percent `json:"rentGrowthPct,omitempty"`
	OperatingExpenses   *float64 `json:"operatingExpenses,omitempty"`
	ExpenseGrowthPct    *Percent `json:"expenseGrowthPct,omitempty"`
	ManagementFeePct    *Percent `json:"managementFeePct,omitempty"`
	ReservesPerSF       *float64 `json:"reservesPerSf,omitempty"`
	LoanToValuePct      *Percent `json:"loanToValuePct,omitempty"`
	MinDSCR             *float64 `json:"minDscr,omitempty"`
	MinDebtYieldPct     *Percent `json:"minDebtYieldPct,omitempty"`
	InterestRatePct     *Percent `json:"interestRatePct,omitempty"`
	AmortizationYears   *int     `json:"amortizationYears,omitempty"`
	InterestOnlyMonths  *int     `json:"interestOnlyMonths,omitempty"`
	LoanFeesPct         *Percent `json:"loanFeesPct,omitempty"`
	HoldYears           *int     `json:"holdYears,omitempty"`
	ExitCapRatePct      *Percent `json:"exitCapRatePct,omitempty"`
	DispositionCostsPct *Percent `json:"dispositionCostsPct,omitempty"`
	BuildableSF         *float64 `json:"buildableSf,omitempty"`
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Apply returns a copy of a with every non-nil field of p applied.
func (a Assumptions) Apply(p AssumptionsPatch) Assumptions {
	set(&a.Acquisition.PurchasePrice, p.PurchasePrice)
	set(&a.Acquisition.ClosingCostsPct, p.ClosingCostsPct)
	set(&a.Income.GrossPotentialRent, p.GrossPotentialRent)
	set(&a.Income.OtherIncome, p.OtherIncome)
	set(&a.Income.VacancyPct, p.VacancyPct)
	set(&a.Income.CollectionLossPct, p.CollectionLossPct)
	set(&a.Income.RentGrowthPct, p.RentGrowthPct)
	set(&a.Expenses.OperatingExpenses, p.OperatingExpenses)
	set(&a.Expenses.ExpenseGrowthPct, p.ExpenseGrowthPct)
	set(&a.Expenses.ManagementFeePct, p.ManagementFeePct)
	set(&a.Expenses.ReservesPerSF, p.ReservesPerSF)
	set(&a.Financing.LoanToValuePct, p.LoanToValuePct)
	set(&a.Financing.MinDSCR, p.MinDSCR)
	set(&a.Financing.MinDebtYieldPct, p.MinDebtYieldPct)
	set(&a.Financing.InterestRatePct, p.InterestRatePct)
	set(&a.Financing.AmortizationYears, p.AmortizationYears)
	set(&a.Financing.InterestOnlyMonths, p.InterestOnlyMonths)
	set(&a.Financing.LoanFeesPct, p.LoanFeesPct)
	set(&a.Exit.HoldYears, p.HoldYears)
	set(&a.Exit.ExitCapRatePct, p.ExitCapRatePct)
	set(&a.Exit.DispositionCostsPct, p.DispositionCostsPct)
	set(&a.BuildableSF, p.BuildableSF)
	return a
}

// ApplyDefaults returns DefaultAssumptions updated with p.
func ApplyDefaults(p AssumptionsPatch) Assumptions { return DefaultAssumptions().Apply(p) }

// Patch returns a patch setting every field to its value in a.
func (a Assumptions) Patch() AssumptionsPatch {
	return AssumptionsPatch{
		PurchasePrice:       &a.Acquisition.PurchasePrice,
		ClosingCostsPct:     &a.Acquisition.ClosingCostsPct,
		GrossPotentialRent:  &a.Income.GrossPotentialRent,
		OtherIncome:         &a.Income.OtherIncome,
		VacancyPct:          &a.Income.VacancyPct,
		CollectionLossPct:   &a.Income.CollectionLossPct,
		RentGrowthPct:       &a.Income.RentGrowthPct,
		OperatingExpenses:   &a.Expenses.OperatingExpenses,
		ExpenseGrowthPct:    &a.Expenses.ExpenseGrowthPct,
		ManagementFeePct:    &a.Expenses.ManagementFeePct,
		ReservesPerSF:       &a.Expenses.ReservesPerSF,
		LoanToValuePct:      &a.Financing.LoanToValuePct,
		MinDSCR:             &a.Financing.MinDSCR,
		MinDebtYieldPct:     &a.Financing.MinDebtYieldPct,
		InterestRatePct:     &a.Financing.InterestRatePct,
		AmortizationYears:   &a.Financing.AmortizationYears,
		InterestOnlyMonths:  &a.Financing.InterestOnlyMonths,
		LoanFeesPct:         &a.Financing.LoanFeesPct,
		HoldYears:           &a.Exit.HoldYears,
		ExitCapRatePct:      &a.Exit.ExitCapRatePct,
		DispositionCostsPct: &a.Exit.DispositionCostsPct,
		BuildableSF:         &a.BuildableSF,
	}
}

// Merge returns a patch where every field set in q overrides p.
func (p AssumptionsPatch) Merge(q AssumptionsPatch) AssumptionsPatch {
	mergePtr(&p.PurchasePrice, q.PurchasePrice)
	mergePtr(&p.ClosingCostsPct, q.ClosingCostsPct)
	mergePtr(&p.GrossPotentialRent, q.GrossPotentialRent)
	mergePtr(&p.OtherIncome, q.OtherIncome)
	mergePtr(&p.VacancyPct, q.VacancyPct)
	mergePtr(&p.CollectionLossPct, q.CollectionLossPct)
	mergePtr(&p.RentGrowthPct, q.RentGrowthPct)
	mergePtr(&p.OperatingExpenses, q.OperatingExpenses)
	mergePtr(&p.ExpenseGrowthPct, q.ExpenseGrowthPct)
	mergePtr(&p.ManagementFeePct, q.ManagementFeePct)
	mergePtr(&p.ReservesPerSF, q.ReservesPerSF)
	mergePtr(&p.LoanToValuePct, q.LoanToValuePct)
	mergePtr(&p.MinDSCR, q.MinDSCR)
	mergePtr(&p.MinDebtYieldPct, q.MinDebtYieldPct)
	mergePtr(&p.InterestRatePct, q.InterestRatePct)
	mergePtr(&p.AmortizationYears, q.AmortizationYears)
	mergePtr(&p.InterestOnlyMonths, q.InterestOnlyMonths)
	mergePtr(&p.LoanFeesPct, q.LoanFeesPct)
	mergePtr(&p.HoldYears, q.HoldYears)
	mergePtr(&p.ExitCapRatePct, q.ExitCapRatePct)
	mergePtr(&p.DispositionCostsPct, q.DispositionCostsPct)
	mergePtr(&p.BuildableSF, q.BuildableSF)
	return p
}

func mergePtr[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}
