package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/renderer"
	"github.com/google/subcommands"
)

// scenariosCmd holds the flags for the 'scenarios' subcommand.
type scenariosCmd struct {
	limit int
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "compare variants of a deal side by side" }
func (*scenariosCmd) Usage() string {
	return `uw scenarios [-limit <n>] <deal.yaml> <scenarios.yaml>

  Underwrites the deal once per scenario, concurrently. A scenarios file is a
  list of named assumption overrides:

    - name: Downside
      patch:
        vacancyPct: 10
        exitCapRatePct: 7.5
    - name: Upside
      patch:
        rentGrowthPct: 4

  Results are listed in the order of the file.

`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "Maximum scenarios underwritten at once (default $UW_SCENARIO_LIMIT or 4)")
}

func (c *scenariosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: scenarios requires a deal file and a scenarios file")
		return subcommands.ExitUsageError
	}
	var none assumptionFlags
	deal, err := none.loadDeal(f, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deal: %v\n", err)
		return subcommands.ExitFailure
	}
	scenarios, err := decodeFile[[]underwriting.Scenario](f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenarios: %v\n", err)
		return subcommands.ExitFailure
	}

	limit := c.limit
	if limit <= 0 {
		cfg, err := config()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			return subcommands.ExitUsageError
		}
		limit = cfg.ScenarioLimit
	}

	results, err := underwriting.RunScenarios(ctx, deal, scenarios, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenarios: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit("Scenario Comparison", results, func(opts renderer.Options) string {
		return renderer.RenderScenarios(results, opts)
	})
}
