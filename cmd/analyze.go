package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	assumptions assumptionFlags
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "underwrite a deal: rent roll, budget, pro forma, debt and waterfall"
}
func (*analyzeCmd) Usage() string {
	return `uw analyze [<assumption flags>] <deal.yaml|->

  Runs the whole analysis of a deal file (JSON or YAML, "-" reads JSON from
  stdin). The rent roll and the budget feed the pro forma, whose loan and cash
  flows feed the debt comparison and the equity waterfall. Sections missing
  from the deal are left out of the report.

  Assumption flags override the deal file.

Usage Examples:
$ uw analyze deal.yaml
$ uw analyze -exit-cap 7.5 -hold 7 deal.yaml
$ uw -format json analyze deal.yaml

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.assumptions.SetFlags(f)
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: analyze requires exactly one deal file")
		return subcommands.ExitUsageError
	}
	deal, err := c.assumptions.loadDeal(f, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deal: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := underwriting.Underwrite(deal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error underwriting deal: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(cmp.Or(a.Name, "Deal Analysis"), a, func(opts renderer.Options) string {
		return renderer.RenderDeal(&a, opts)
	})
}
