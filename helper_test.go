package underwriting

import (
	"math"
	"testing"

	"github.com/etnz/underwriting/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats to the cent, and dates by value.
var approx = cmp.Options{cmpopts.EquateApprox(0, 0.01), cmpopts.EquateComparable(date.Date{})}

// d is a helper for test to create dates from const
func d(s string) date.Date { return date.MustParse(s) }

// ptr is a helper for test to create patch fields
func ptr[T any](v T) *T { return &v }

// near fails the test when got is further than tolerance from want.
func near(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tolerance)
	}
}

// diff fails the test when got and want differ by more than a cent.
func diff(t *testing.T, name string, got, want any) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, d)
	}
}

// stabilizedAssumptions returns a 5M, 8% cap deal growing at 2% a year,
// financed at 70% LTV, 6% fixed, 25-year amortization, held 10 years.
func stabilizedAssumptions() Assumptions {
	return Assumptions{
		Acquisition: Acquisition{PurchasePrice: 5_000_000},
		Income:      Income{GrossPotentialRent: 400_000, RentGrowthPct: 2},
		Expenses:    Expenses{ExpenseGrowthPct: 2},
		Financing: Financing{
			LoanToValuePct:    70,
			InterestRatePct:   6,
			AmortizationYears: 25,
		},
		Exit: Exit{HoldYears: 10, ExitCapRatePct: 8},
	}
}
