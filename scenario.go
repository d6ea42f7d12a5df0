package underwriting

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultScenarioLimit is the number of scenarios run at once when no limit is
// given.
const DefaultScenarioLimit = 4

// Scenario is a named variant of a deal: Patch is applied over the deal
// assumptions.
type Scenario struct {
	Name  string           `json:"name"`
	Patch AssumptionsPatch `json:"patch"`
}

// ScenarioResult is the analysis of one scenario.
type ScenarioResult struct {
	Name     string       `json:"name"`
	Analysis DealAnalysis `json:"analysis"`
}

// RunScenarios underwrites each scenario of deal concurrently, at most limit
// at a time (DefaultScenarioLimit when limit is not positive). Results are in
// the order of scenarios. The first failure cancels the remaining scenarios.
func RunScenarios(ctx context.Context, deal DealInput, scenarios []Scenario, limit int) ([]ScenarioResult, error) {
	if limit <= 0 {
		limit = DefaultScenarioLimit
	}
	res := make([]ScenarioResult, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			variant := deal
			variant.Name = s.Name
			variant.Assumptions = deal.Assumptions.Merge(s.Patch)
			a, err := Underwrite(variant)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			// each goroutine owns its slot
			res[i] = ScenarioResult{Name: s.Name, Analysis: a}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
