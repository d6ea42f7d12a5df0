package underwriting

import (
	"errors"
	"testing"
)

func TestCalculateWaterfall(t *testing.T) {
	tests := []struct {
		name       string
		structure  WaterfallStructure
		cashFlows  []float64
		wantLP     float64
		wantGP     float64
		wantLPIRR  float64
		wantActive string
	}{
		{
			name:       "pro rata residual",
			structure:  WaterfallStructure{TotalEquity: 1000, GPCoinvestPct: 10, PreferredReturnPct: 10},
			cashFlows:  []float64{1500},
			wantLP:     1350,
			wantGP:     150,
			wantLPIRR:  0.5,
			wantActive: "pro rata",
		},
		{
			name: "catch-up",
			structure: WaterfallStructure{
				TotalEquity: 1000, PreferredReturnPct: 10, CatchUpPct: 20,
				Tiers: []PromoteTier{{HurdleIRRPct: 0, LPDistributionPct: 80, GPDistributionPct: 20}},
			},
			cashFlows:  []float64{1500},
			wantLP:     1400,
			wantGP:     100,
			wantLPIRR:  0.4,
			wantActive: "tier 1 (0.00% hurdle)",
		},
		{
			name: "hurdle crossed within the year",
			structure: WaterfallStructure{
				TotalEquity: 1000,
				Tiers: []PromoteTier{
					{HurdleIRRPct: 0, LPDistributionPct: 100, GPDistributionPct: 0},
					{HurdleIRRPct: 10, LPDistributionPct: 50, GPDistributionPct: 50},
				},
			},
			cashFlows:  []float64{1500},
			wantLP:     1300,
			wantGP:     200,
			wantLPIRR:  0.3,
			wantActive: "tier 2 (10.00% hurdle)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWaterfall(WaterfallInput{Structure: tt.structure, CashFlows: tt.cashFlows})
			near(t, "LPTotalReturn", got.LPTotalReturn, tt.wantLP, 1e-6)
			near(t, "GPTotalReturn", got.GPTotalReturn, tt.wantGP, 1e-6)
			if got.LPIRR == nil {
				t.Fatal("LPIRR unavailable")
			}
			near(t, "LPIRR", *got.LPIRR, tt.wantLPIRR, 1e-6)
			if last := got.Years[len(got.Years)-1]; last.ActiveTier != tt.wantActive {
				t.Errorf("ActiveTier = %q, want %q", last.ActiveTier, tt.wantActive)
			}
		})
	}
}

func TestCalculateWaterfall_CatchUpProfitShare(t *testing.T) {
	got := CalculateWaterfall(WaterfallInput{
		Structure: WaterfallStructure{
			TotalEquity: 1000, PreferredReturnPct: 10, CatchUpPct: 20,
			Tiers: []PromoteTier{{HurdleIRRPct: 0, LPDistributionPct: 80, GPDistributionPct: 20}},
		},
		CashFlows: []float64{1500},
	})
	near(t, "CatchUp", got.Years[0].CatchUp, 25, 1e-9)
	if !got.GPProfitSharePct.Equal(20) || !got.LPProfitSharePct.Equal(80) {
		t.Errorf("profit share LP %v GP %v, want 80/20", got.LPProfitSharePct, got.GPProfitSharePct)
	}
	if got.GPIRR != nil || got.GPMultiple != 0 {
		t.Errorf("GP without equity: IRR %v multiple %v, want unavailable", got.GPIRR, got.GPMultiple)
	}
}

func TestCalculateWaterfall_CompoundingPreferred(t *testing.T) {
	got := CalculateWaterfall(WaterfallInput{
		Structure: WaterfallStructure{TotalEquity: 1000, PreferredReturnPct: 10},
		CashFlows: []float64{-50, 0, 1500},
	})
	for _, y := range got.Years[:2] {
		if y.LPDistribution != 0 || y.GPDistribution != 0 || y.ActiveTier != "none" {
			t.Errorf("year %d distributed %v/%v (%s), want nothing", y.Year, y.LPDistribution, y.GPDistribution, y.ActiveTier)
		}
		if y.LPIRR != nil {
			t.Errorf("year %d trailing LP IRR = %v, want unavailable", y.Year, *y.LPIRR)
		}
	}
	y3 := got.Years[2]
	near(t, "PreferredReturn", y3.PreferredReturn, 331, 1e-6)
	near(t, "ReturnOfCapital", y3.ReturnOfCapital, 1000, 1e-6)
	near(t, "Residual", y3.Residual, 169, 1e-6)
	near(t, "LPMultiple", got.LPMultiple, 1.5, 1e-9)
}

func TestCalculateWaterfall_CapitalBeforePreferred(t *testing.T) {
	got := CalculateWaterfall(WaterfallInput{
		Structure: WaterfallStructure{TotalEquity: 1000, PreferredReturnPct: 10},
		CashFlows: []float64{150, 1500},
	})
	y1, y2 := got.Years[0], got.Years[1]
	near(t, "year 1 ReturnOfCapital", y1.ReturnOfCapital, 150, 1e-9)
	near(t, "year 1 PreferredReturn", y1.PreferredReturn, 0, 1e-9)
	if y1.ActiveTier != "return of capital" {
		t.Errorf("year 1 ActiveTier = %q, want return of capital", y1.ActiveTier)
	}
	// the unpaid 100 accrues with the 850 of capital left
	near(t, "year 2 ReturnOfCapital", y2.ReturnOfCapital, 850, 1e-9)
	near(t, "year 2 PreferredReturn", y2.PreferredReturn, 195, 1e-9)
	near(t, "year 2 Residual", y2.Residual, 455, 1e-9)
	near(t, "LPTotalReturn", got.LPTotalReturn, 1650, 1e-9)
}

func TestCalculateWaterfall_BelowFirstHurdle(t *testing.T) {
	// the LP never reaches 15%: every residual is split by the first tier
	got := CalculateWaterfall(WaterfallInput{
		Structure: WaterfallStructure{
			TotalEquity: 1000,
			Tiers: []PromoteTier{
				{HurdleIRRPct: 15, LPDistributionPct: 90, GPDistributionPct: 10},
				{HurdleIRRPct: 25, LPDistributionPct: 70, GPDistributionPct: 30},
			},
		},
		CashFlows: []float64{1100},
	})
	y := got.Years[0]
	near(t, "Residual", y.Residual, 100, 1e-9)
	near(t, "LPTotalReturn", got.LPTotalReturn, 1090, 1e-9)
	near(t, "GPTotalReturn", got.GPTotalReturn, 10, 1e-9)
	if y.ActiveTier != "tier 1 (15.00% hurdle)" {
		t.Errorf("ActiveTier = %q, want the first tier", y.ActiveTier)
	}
	if got.LPIRR == nil || *got.LPIRR >= 0.15 {
		t.Errorf("LPIRR = %v, want below the first hurdle", got.LPIRR)
	}
}

func TestCalculateWaterfall_FromProForma(t *testing.T) {
	pf := BuildProForma(ProFormaInput{Assumptions: stabilizedAssumptions()})
	s := NewWaterfallStructure(&SequenceGenerator{Prefix: "wf"}, "Standard", 0)
	got := CalculateWaterfall(WaterfallInputFromProForma(s, pf))

	near(t, "equity", got.LPEquity+got.GPEquity, pf.EquityRequired, 1e-6)
	if len(got.Years) != pf.HoldYears {
		t.Fatalf("len(Years) = %d, want %d", len(got.Years), pf.HoldYears)
	}
	var total float64
	for i, y := range got.Years {
		near(t, "year split", y.LPDistribution+y.GPDistribution, y.TotalCashFlow, 1e-6)
		if i > 0 {
			near(t, "LP cumulative", y.LPCumulative, got.Years[i-1].LPCumulative+y.LPDistribution, 1e-6)
		}
		total += y.TotalCashFlow
	}
	near(t, "total", total, sum(pf.OperatingCashFlows())+pf.Exit.NetExitProceeds, 1e-6)
	near(t, "distributed", got.LPTotalReturn+got.GPTotalReturn, total, 1e-6)

	if got.LPIRR == nil || got.GPIRR == nil {
		t.Fatal("IRR unavailable")
	}
	if *got.GPIRR <= *got.LPIRR {
		t.Errorf("GP IRR %.4f <= LP IRR %.4f, want the promote to favor the GP", *got.GPIRR, *got.LPIRR)
	}
	if got.LPMultiple <= 1 || got.GPMultiple <= got.LPMultiple {
		t.Errorf("multiples LP %.2f GP %.2f", got.LPMultiple, got.GPMultiple)
	}
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func TestWaterfallStructureValidate(t *testing.T) {
	valid := NewWaterfallStructure(&SequenceGenerator{Prefix: "wf"}, "Standard", 1_000_000)
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		modify func(*WaterfallStructure)
	}{
		{"split over 100", func(w *WaterfallStructure) { w.Tiers[0].GPDistributionPct = 25 }},
		{"split under 100", func(w *WaterfallStructure) { w.Tiers[1].LPDistributionPct = 60 }},
		{"hurdles not increasing", func(w *WaterfallStructure) { w.Tiers[1].HurdleIRRPct = 8 }},
		{"co-invest over 100", func(w *WaterfallStructure) { w.GPCoinvestPct = 120 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWaterfallStructure(&SequenceGenerator{Prefix: "wf"}, "Standard", 1_000_000)
			tt.modify(&w)
			if err := w.Validate(); !errors.Is(err, ErrInvalidWaterfall) {
				t.Errorf("Validate() error = %v, want ErrInvalidWaterfall", err)
			}
		})
	}
}

func TestPromoteTierValidate(t *testing.T) {
	if err := (PromoteTier{HurdleIRRPct: 8, LPDistributionPct: 70, GPDistributionPct: 30}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (PromoteTier{HurdleIRRPct: 8, LPDistributionPct: 70, GPDistributionPct: 20}).Validate(); err == nil {
		t.Error("Validate() error = nil for a 90% split")
	}
}
