package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/date"
	"github.com/etnz/underwriting/renderer"
	"github.com/google/subcommands"
)

// rentrollCmd holds the flags for the 'rentroll' subcommand.
type rentrollCmd struct {
	hold  int
	start string
}

func (*rentrollCmd) Name() string     { return "rentroll" }
func (*rentrollCmd) Synopsis() string { return "aggregate a rent roll into annual revenue" }
func (*rentrollCmd) Usage() string {
	return `uw rentroll [-hold <years>] [-start <date>] <rentroll.yaml|->

  Converts the leases of a rent roll into an annual revenue schedule. Leases
  escalate each year of their term and roll to market rent, less the market
  vacancy, when they expire.

`
}

func (c *rentrollCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.hold, "hold", 0, "Years of the schedule, overriding the file")
	f.StringVar(&c.start, "start", "", "Start of the analysis as YYYY-MM-DD, overriding the file")
}

func (c *rentrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rentroll requires exactly one rent roll file")
		return subcommands.ExitUsageError
	}
	in, err := decodeFile[underwriting.RentRollInput](f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rent roll: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.hold > 0 {
		in.HoldYears = c.hold
	}
	if c.start != "" {
		if in.AnalysisStart, err = date.Parse(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	agg, err := underwriting.AggregateRentRoll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aggregating rent roll: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit("Rent Roll", agg, func(opts renderer.Options) string {
		return renderer.RenderRentRoll(&agg, opts)
	})
}
