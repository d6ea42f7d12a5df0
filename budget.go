package underwriting

import (
	"fmt"
	"strings"
)

// BudgetCategory classifies a development budget line item.
type BudgetCategory string

const (
	HardCost  BudgetCategory = "hard"
	SoftCost  BudgetCategory = "soft"
	OtherCost BudgetCategory = "other"
)

// ParseBudgetCategory parses "hard", "soft" or "other", case-insensitively.
func ParseBudgetCategory(s string) (BudgetCategory, error) {
	switch c := BudgetCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case HardCost, SoftCost, OtherCost:
		return c, nil
	default:
		return OtherCost, fmt.Errorf("unknown budget category %q, want hard, soft or other", s)
	}
}

// DevelopmentBudgetLineItem is a single cost of the development budget.
type DevelopmentBudgetLineItem struct {
	Name     string         `json:"name"`
	Category BudgetCategory `json:"category"`
	Amount   float64        `json:"amount"`
}

// ContingencyConfig holds one contingency percentage per category.
type ContingencyConfig struct {
	HardPct  Percent `json:"hardPct"`
	SoftPct  Percent `json:"softPct"`
	OtherPct Percent `json:"otherPct"`
}

// DevelopmentBudgetSummary is the rolled-up development budget.
type DevelopmentBudgetSummary struct {
	HardCostSubtotal       float64 `json:"hardCostSubtotal"`
	SoftCostSubtotal       float64 `json:"softCostSubtotal"`
	OtherCostSubtotal      float64 `json:"otherCostSubtotal"`
	HardContingencyAmount  float64 `json:"hardContingencyAmount"`
	SoftContingencyAmount  float64 `json:"softContingencyAmount"`
	OtherContingencyAmount float64 `json:"otherContingencyAmount"`
	HardCostTotal          float64 `json:"hardCostTotal"`
	SoftCostTotal          float64 `json:"softCostTotal"`
	OtherCostTotal         float64 `json:"otherCostTotal"`
	TotalBeforeContingency float64 `json:"totalBeforeContingency"`
	TotalContingency       float64 `json:"totalContingency"`
	TotalBudget            float64 `json:"totalBudget"`
	LineItemCount          int     `json:"lineItemCount"`
}

// SummarizeDevelopmentBudget sums the line items per category and applies each
// category's contingency to its own subtotal. Items of an unknown category are
// counted as other costs. Sums are exact; amounts are rounded to cents.
func SummarizeDevelopmentBudget(items []DevelopmentBudgetLineItem, contingency ContingencyConfig) DevelopmentBudgetSummary {
	subtotals := map[BudgetCategory]Money{HardCost: {}, SoftCost: {}, OtherCost: {}}
	for _, item := range items {
		c := item.Category
		if _, ok := subtotals[c]; !ok {
			c = OtherCost
		}
		subtotals[c] = subtotals[c].Add(M(item.Amount, ""))
	}

	hard := subtotals[HardCost]
	soft := subtotals[SoftCost]
	other := subtotals[OtherCost]
	hardC := hard.Mul(contingency.HardPct)
	softC := soft.Mul(contingency.SoftPct)
	otherC := other.Mul(contingency.OtherPct)

	before := hard.Add(soft).Add(other)
	totalC := hardC.Add(softC).Add(otherC)

	return DevelopmentBudgetSummary{
		HardCostSubtotal:       hard.Float64(),
		SoftCostSubtotal:       soft.Float64(),
		OtherCostSubtotal:      other.Float64(),
		HardContingencyAmount:  hardC.Float64(),
		SoftContingencyAmount:  softC.Float64(),
		OtherContingencyAmount: otherC.Float64(),
		HardCostTotal:          hard.Add(hardC).Float64(),
		SoftCostTotal:          soft.Add(softC).Float64(),
		OtherCostTotal:         other.Add(otherC).Float64(),
		TotalBeforeContingency: before.Float64(),
		TotalContingency:       totalC.Float64(),
		TotalBudget:            before.Add(totalC).Float64(),
		LineItemCount:          len(items),
	}
}
