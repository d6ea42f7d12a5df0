package underwriting

import "testing"

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		principal, rate float64
		months          int
		want            float64
	}{
		{100_000, 0.06, 360, 599.55},
		{1200, 0, 12, 100},
		{0, 0.06, 360, 0},
		{100_000, 0.06, 0, 0},
	}
	for _, tt := range tests {
		near(t, "MonthlyPayment", MonthlyPayment(tt.principal, tt.rate, tt.months), tt.want, 0.005)
	}
}

func TestLoanTermsSchedule(t *testing.T) {
	loan := LoanTerms{
		Principal:          1_000_000,
		AnnualRate:         0.06,
		InterestOnlyMonths: 12,
		AmortizationMonths: 360,
	}
	got := loan.Schedule(3)
	want := []LoanYear{
		{Year: 1, BeginningBalance: 1_000_000, Interest: 60_000, Principal: 0, DebtService: 60_000, EndingBalance: 1_000_000},
		{Year: 2, BeginningBalance: 1_000_000, Interest: 59_665.95, Principal: 12_280.12, DebtService: 71_946.06, EndingBalance: 987_719.88},
		{Year: 3, BeginningBalance: 987_719.88, Interest: 58_908.54, Principal: 13_037.53, DebtService: 71_946.06, EndingBalance: 974_682.36},
	}
	diff(t, "Schedule(3)", got, want)
}

func TestLoanTermsFullyAmortizes(t *testing.T) {
	loan := LoanTerms{Principal: 1_000_000, AnnualRate: 0.06, AmortizationMonths: 120}
	years := loan.Schedule(12)
	if len(years) != 12 {
		t.Fatalf("len(Schedule(12)) = %d, want 12", len(years))
	}
	if got := years[9].EndingBalance; got != 0 {
		t.Errorf("balance at maturity = %v, want 0", got)
	}
	if got := years[11].DebtService; got != 0 {
		t.Errorf("debt service after maturity = %v, want 0", got)
	}
	var principal float64
	for _, y := range years {
		principal += y.Principal
	}
	near(t, "total principal", principal, 1_000_000, 0.01)
}

func TestLoanTermsInterestOnly(t *testing.T) {
	loan := LoanTerms{Principal: 500_000, AnnualRate: 0.05}
	for _, y := range loan.Schedule(5) {
		if y.Principal != 0 || y.EndingBalance != 500_000 {
			t.Fatalf("year %d: principal %v balance %v, want no amortization", y.Year, y.Principal, y.EndingBalance)
		}
		near(t, "interest", y.Interest, 25_000, 1e-6)
	}
}
