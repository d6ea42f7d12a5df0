package underwriting

import "testing"

func TestSizeLoan(t *testing.T) {
	tests := []struct {
		name        string
		in          LoanSizingInput
		wantAmount  float64
		wantBinding string
	}{
		{
			name: "ltv binds",
			in: LoanSizingInput{
				NOI: 400_000, PropertyValue: 5_000_000,
				Constraints:     SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25, MinDebtYieldPct: 8},
				InterestRatePct: 6, AmortizationYears: 25,
			},
			wantAmount:  3_750_000,
			wantBinding: "ltv",
		},
		{
			name: "dscr binds",
			in: LoanSizingInput{
				NOI: 400_000, PropertyValue: 10_000_000,
				Constraints:     SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25, MinDebtYieldPct: 8},
				InterestRatePct: 6, AmortizationYears: 25,
			},
			wantAmount:  4_138_849.71,
			wantBinding: "dscr",
		},
		{
			name: "debt yield binds",
			in: LoanSizingInput{
				NOI: 400_000, PropertyValue: 10_000_000,
				Constraints:     SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25, MinDebtYieldPct: 10},
				InterestRatePct: 6, AmortizationYears: 25,
			},
			wantAmount:  4_000_000,
			wantBinding: "debt_yield",
		},
		{
			name: "interest only",
			in: LoanSizingInput{
				NOI: 400_000, PropertyValue: 10_000_000,
				Constraints:     SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25},
				InterestRatePct: 6,
			},
			wantAmount:  5_333_333.33,
			wantBinding: "dscr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeLoan(tt.in)
			near(t, "LoanAmount", got.LoanAmount, tt.wantAmount, 0.01)
			if got.BindingConstraint != tt.wantBinding {
				t.Errorf("BindingConstraint = %q, want %q", got.BindingConstraint, tt.wantBinding)
			}
			near(t, "LTVPct", float64(got.LTVPct), 100*got.LoanAmount/tt.in.PropertyValue, 1e-9)
		})
	}
}

func TestSizeLoan_DisabledConstraints(t *testing.T) {
	got := SizeLoan(LoanSizingInput{
		NOI:             10,
		PropertyValue:   1_000_000,
		Constraints:     SizingConstraints{MaxLTVPct: 60},
		InterestRatePct: 6,
	})
	if got.MaxByDSCR != nil || got.MaxByDebtYield != nil {
		t.Errorf("SizeLoan() sized on disabled constraints: %v %v", got.MaxByDSCR, got.MaxByDebtYield)
	}
	near(t, "LoanAmount", got.LoanAmount, 600_000, 1e-9)
}

func TestSizeLoan_NegativeNOI(t *testing.T) {
	got := SizeLoan(LoanSizingInput{
		NOI:             -50_000,
		PropertyValue:   1_000_000,
		Constraints:     LoanTypeConstraints(PermanentLoan),
		InterestRatePct: 6, AmortizationYears: 30,
	})
	if got.LoanAmount != 0 {
		t.Errorf("LoanAmount = %v, want 0 for a negative NOI", got.LoanAmount)
	}
}

func TestLoanTypeConstraints(t *testing.T) {
	tests := []struct {
		s    string
		want SizingConstraints
	}{
		{"permanent", SizingConstraints{MaxLTVPct: 75, MinDSCR: 1.25, MinDebtYieldPct: 8}},
		{"Construction", SizingConstraints{MaxLTVPct: 65, MinDSCR: 1.20, MinDebtYieldPct: 10}},
		{"bridge", SizingConstraints{MaxLTVPct: 70, MinDSCR: 1.15, MinDebtYieldPct: 9}},
	}
	for _, tt := range tests {
		lt, err := ParseLoanType(tt.s)
		if err != nil {
			t.Fatalf("ParseLoanType(%q) error = %v", tt.s, err)
		}
		if got := LoanTypeConstraints(lt); got != tt.want {
			t.Errorf("LoanTypeConstraints(%q) = %+v, want %+v", lt, got, tt.want)
		}
	}
	if _, err := ParseLoanType("mezzanine"); err == nil {
		t.Error("ParseLoanType(\"mezzanine\") error = nil, want an error")
	}
}
