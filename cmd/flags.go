package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/underwriting"
)

// assumptionFlags override the assumptions of a deal from the command line.
// Only the flags actually given are applied.
type assumptionFlags struct {
	price, gpr, otherIncome, opex, reserves, buildable float64
	closing, vacancy, collection, rentGrowth           float64
	expenseGrowth, mgmtFee                             float64
	ltv, minDSCR, minDebtYield, rate, loanFees         float64
	exitCap, disposition                               float64
	amort, ioMonths, hold                              int
}

func (a *assumptionFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&a.price, "price", 0, "Purchase price")
	f.Float64Var(&a.closing, "closing", 0, "Closing costs, in percent of the price")
	f.Float64Var(&a.gpr, "gpr", 0, "Year 1 gross potential rent, when the deal has no rent roll")
	f.Float64Var(&a.otherIncome, "other-income", 0, "Year 1 other income")
	f.Float64Var(&a.vacancy, "vacancy", 0, "Vacancy, in percent of the gross potential rent")
	f.Float64Var(&a.collection, "collection-loss", 0, "Collection loss, in percent")
	f.Float64Var(&a.rentGrowth, "rent-growth", 0, "Annual rent growth, in percent")
	f.Float64Var(&a.opex, "opex", 0, "Year 1 operating expenses, excluding the management fee")
	f.Float64Var(&a.expenseGrowth, "expense-growth", 0, "Annual expense growth, in percent")
	f.Float64Var(&a.mgmtFee, "mgmt-fee", 0, "Management fee, in percent of the effective gross income")
	f.Float64Var(&a.reserves, "reserves", 0, "Annual replacement reserves per buildable SF")
	f.Float64Var(&a.buildable, "sf", 0, "Buildable square feet")
	f.Float64Var(&a.ltv, "ltv", 0, "Maximum loan to value, in percent")
	f.Float64Var(&a.minDSCR, "min-dscr", 0, "Minimum debt service coverage, 0 to disable")
	f.Float64Var(&a.minDebtYield, "min-debt-yield", 0, "Minimum debt yield, in percent, 0 to disable")
	f.Float64Var(&a.rate, "rate", 0, "Loan interest rate, in percent")
	f.IntVar(&a.amort, "amort", 0, "Amortization in years, 0 for interest only")
	f.IntVar(&a.ioMonths, "io-months", 0, "Interest only months before amortization")
	f.Float64Var(&a.loanFees, "loan-fees", 0, "Loan fees, in percent of the loan")
	f.IntVar(&a.hold, "hold", 0, "Hold period in years")
	f.Float64Var(&a.exitCap, "exit-cap", 0, "Exit cap rate, in percent")
	f.Float64Var(&a.disposition, "disposition", 0, "Disposition costs, in percent of the sale price")
}

// patch returns the assumptions set on the command line f.
func (a *assumptionFlags) patch(f *flag.FlagSet) underwriting.AssumptionsPatch {
	var p underwriting.AssumptionsPatch
	pct := func(v float64) *underwriting.Percent { return ref(underwriting.Percent(v)) }
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "price":
			p.PurchasePrice = ref(a.price)
		case "closing":
			p.ClosingCostsPct = pct(a.closing)
		case "gpr":
			p.GrossPotentialRent = ref(a.gpr)
		case "other-income":
			p.OtherIncome = ref(a.otherIncome)
		case "vacancy":
			p.VacancyPct = pct(a.vacancy)
		case "collection-loss":
			p.CollectionLossPct = pct(a.collection)
		case "rent-growth":
			p.RentGrowthPct = pct(a.rentGrowth)
		case "opex":
			p.OperatingExpenses = ref(a.opex)
		case "expense-growth":
			p.ExpenseGrowthPct = pct(a.expenseGrowth)
		case "mgmt-fee":
			p.ManagementFeePct = pct(a.mgmtFee)
		case "reserves":
			p.ReservesPerSF = ref(a.reserves)
		case "sf":
			p.BuildableSF = ref(a.buildable)
		case "ltv":
			p.LoanToValuePct = pct(a.ltv)
		case "min-dscr":
			p.MinDSCR = ref(a.minDSCR)
		case "min-debt-yield":
			p.MinDebtYieldPct = pct(a.minDebtYield)
		case "rate":
			p.InterestRatePct = pct(a.rate)
		case "amort":
			p.AmortizationYears = ref(a.amort)
		case "io-months":
			p.InterestOnlyMonths = ref(a.ioMonths)
		case "loan-fees":
			p.LoanFeesPct = pct(a.loanFees)
		case "hold":
			p.HoldYears = ref(a.hold)
		case "exit-cap":
			p.ExitCapRatePct = pct(a.exitCap)
		case "disposition":
			p.DispositionCostsPct = pct(a.disposition)
		}
	})
	return p
}

// loadDeal reads the deal file name, if any, and applies the assumptions
// given on the command line f and the configured index rate.
func (a *assumptionFlags) loadDeal(f *flag.FlagSet, name string) (underwriting.DealInput, error) {
	var deal underwriting.DealInput
	if name != "" {
		var err error
		if deal, err = decodeFile[underwriting.DealInput](name); err != nil {
			return deal, err
		}
	}
	deal.Assumptions = deal.Assumptions.Merge(a.patch(f))

	cfg, err := config()
	if err != nil {
		return deal, err
	}
	if deal.Debt != nil && deal.Debt.IndexRatePct == 0 {
		deal.Debt.IndexRatePct = cfg.IndexRatePct
	}
	return deal, nil
}

// parseValues parses a comma separated list of numbers.
func parseValues(s string) ([]float64, error) {
	var res []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", field, err)
		}
		res = append(res, v)
	}
	return res, nil
}
