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

// proformaCmd holds the flags for the 'proforma' subcommand.
type proformaCmd struct {
	assumptions assumptionFlags
}

func (*proformaCmd) Name() string     { return "proforma" }
func (*proformaCmd) Synopsis() string { return "project the cash flows and returns of a deal" }
func (*proformaCmd) Usage() string {
	return `uw proforma [<assumption flags>] [<deal.yaml|->]

  Builds the pro forma of a deal: loan sizing, sources and uses, annual cash
  flows, exit, return metrics and the go/no-go recommendation.

  Without a deal file, the pro forma starts from the default assumptions and
  the assumption flags.

Usage Examples:
$ uw proforma -price 5000000 -gpr 600000 -opex 200000
$ uw proforma -ltv 60 deal.yaml

`
}

func (c *proformaCmd) SetFlags(f *flag.FlagSet) {
	c.assumptions.SetFlags(f)
}

func (c *proformaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: proforma accepts at most one deal file")
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
	return emit("Pro Forma", a.ProForma, func(opts renderer.Options) string {
		return renderer.RenderProForma(&a.ProForma, opts)
	})
}
