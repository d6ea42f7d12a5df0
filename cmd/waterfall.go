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

// waterfallCmd holds the flags for the 'waterfall' subcommand.
type waterfallCmd struct {
	assumptions assumptionFlags
	structure   string
}

func (*waterfallCmd) Name() string     { return "waterfall" }
func (*waterfallCmd) Synopsis() string { return "split a deal's cash flows between LP and GP" }
func (*waterfallCmd) Usage() string {
	return `uw waterfall [-s <waterfall.yaml>] [<assumption flags>] <deal.yaml|->

  Distributes the levered cash flows and the exit proceeds of the deal
  through the equity waterfall: preferred return, return of capital, GP
  catch-up and promote tiers.

  The structure is, in order: the -s file, the deal's own waterfall, or a
  standard 8% preferred return with a 30% promote above a 12% LP IRR.

`
}

func (c *waterfallCmd) SetFlags(f *flag.FlagSet) {
	c.assumptions.SetFlags(f)
	f.StringVar(&c.structure, "s", "", "Waterfall structure file, overriding the deal's")
}

func (c *waterfallCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: waterfall requires exactly one deal file")
		return subcommands.ExitUsageError
	}
	deal, err := c.assumptions.loadDeal(f, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deal: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.structure != "" {
		s, err := decodeFile[underwriting.WaterfallStructure](c.structure)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading waterfall structure: %v\n", err)
			return subcommands.ExitFailure
		}
		deal.Waterfall = &s
	}
	if deal.Waterfall == nil {
		s := underwriting.NewWaterfallStructure(underwriting.UUIDGenerator{}, "Standard", 0)
		deal.Waterfall = &s
	}

	a, err := underwriting.Underwrite(deal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error underwriting deal: %v\n", err)
		return subcommands.ExitFailure
	}
	w := a.Waterfall
	return emit("Equity Waterfall", w, func(opts renderer.Options) string {
		return renderer.RenderWaterfall(w, opts)
	})
}
