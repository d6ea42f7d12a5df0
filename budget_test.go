package underwriting

import "testing"

func TestSummarizeDevelopmentBudget(t *testing.T) {
	tests := []struct {
		name        string
		items       []DevelopmentBudgetLineItem
		contingency ContingencyConfig
		want        DevelopmentBudgetSummary
	}{
		{
			name:        "single hard cost",
			items:       []DevelopmentBudgetLineItem{{Name: "Shell", Category: HardCost, Amount: 100_000}},
			contingency: ContingencyConfig{HardPct: 10},
			want: DevelopmentBudgetSummary{
				HardCostSubtotal:       100_000,
				HardContingencyAmount:  10_000,
				HardCostTotal:          110_000,
				TotalBeforeContingency: 100_000,
				TotalContingency:       10_000,
				TotalBudget:            110_000,
				LineItemCount:          1,
			},
		},
		{
			name: "every category",
			items: []DevelopmentBudgetLineItem{
				{Name: "Sitework", Category: HardCost, Amount: 250_000},
				{Name: "Vertical", Category: HardCost, Amount: 750_000},
				{Name: "Architect", Category: SoftCost, Amount: 80_000},
				{Name: "Permits", Category: SoftCost, Amount: 20_000},
				{Name: "Land carry", Category: OtherCost, Amount: 50_000},
			},
			contingency: ContingencyConfig{HardPct: 5, SoftPct: 10, OtherPct: 2},
			want: DevelopmentBudgetSummary{
				HardCostSubtotal:       1_000_000,
				SoftCostSubtotal:       100_000,
				OtherCostSubtotal:      50_000,
				HardContingencyAmount:  50_000,
				SoftContingencyAmount:  10_000,
				OtherContingencyAmount: 1000,
				HardCostTotal:          1_050_000,
				SoftCostTotal:          110_000,
				OtherCostTotal:         51_000,
				TotalBeforeContingency: 1_150_000,
				TotalContingency:       61_000,
				TotalBudget:            1_211_000,
				LineItemCount:          5,
			},
		},
		{
			name:  "unknown category is other",
			items: []DevelopmentBudgetLineItem{{Name: "Misc", Category: "furniture", Amount: 1000}},
			want: DevelopmentBudgetSummary{
				OtherCostSubtotal:      1000,
				OtherCostTotal:         1000,
				TotalBeforeContingency: 1000,
				TotalBudget:            1000,
				LineItemCount:          1,
			},
		},
		{
			name: "empty",
			want: DevelopmentBudgetSummary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeDevelopmentBudget(tt.items, tt.contingency)
			diff(t, "SummarizeDevelopmentBudget()", got, tt.want)
		})
	}
}

func TestSummarizeDevelopmentBudget_ExactSums(t *testing.T) {
	items := []DevelopmentBudgetLineItem{
		{Name: "a", Category: SoftCost, Amount: 0.1},
		{Name: "b", Category: SoftCost, Amount: 0.2},
	}
	got := SummarizeDevelopmentBudget(items, ContingencyConfig{})
	if got.SoftCostSubtotal != 0.3 {
		t.Errorf("SoftCostSubtotal = %v, want exactly 0.3", got.SoftCostSubtotal)
	}

	got = SummarizeDevelopmentBudget([]DevelopmentBudgetLineItem{
		{Name: "Paint", Category: HardCost, Amount: 333.33},
	}, ContingencyConfig{HardPct: 10})
	if got.HardContingencyAmount != 33.33 || got.TotalBudget != 366.66 {
		t.Errorf("contingency %v and total %v, want 33.33 and 366.66 rounded to cents", got.HardContingencyAmount, got.TotalBudget)
	}
}

func TestParseBudgetCategory(t *testing.T) {
	for _, s := range []string{"hard", " Soft ", "OTHER"} {
		if _, err := ParseBudgetCategory(s); err != nil {
			t.Errorf("ParseBudgetCategory(%q) error = %v", s, err)
		}
	}
	if _, err := ParseBudgetCategory("land"); err == nil {
		t.Error("ParseBudgetCategory(\"land\") error = nil, want an error")
	}
}
