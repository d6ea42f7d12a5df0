package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/underwriting"
	"github.com/google/subcommands"
)

// newCmd holds the flags for the 'new' subcommand.
type newCmd struct {
	name   string
	equity float64
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "print a new loan, waterfall or deal to edit" }
func (*newCmd) Usage() string {
	return `uw new [-name <name>] [-equity <amount>] loan|waterfall|deal

  Prints, as JSON, a new structure with a fresh identifier and the usual
  terms, ready to be edited and pasted into a deal file.

  loan       a 10-year fixed-rate loan amortizing over 30 years.
  waterfall  an 8% preferred return with promote tiers at 8% and 12%.
  deal       a deal with every default assumption spelled out.

Usage Examples:
$ uw new -name "Agency 10yr" loan > loan.json
$ uw new -equity 2500000 waterfall

`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the structure")
	f.Float64Var(&c.equity, "equity", 0, "Total equity of a waterfall, 0 to use the pro forma's")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: new requires one of loan, waterfall or deal")
		return subcommands.ExitUsageError
	}
	var v any
	switch f.Arg(0) {
	case "loan":
		v = underwriting.NewLoanStructure(underwriting.UUIDGenerator{}, c.name)
	case "waterfall":
		v = underwriting.NewWaterfallStructure(underwriting.UUIDGenerator{}, c.name, c.equity)
	case "deal":
		v = underwriting.DealInput{Name: c.name, Assumptions: underwriting.DefaultAssumptions().Patch()}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown structure %q, want loan, waterfall or deal\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err := writeJSON(stdout, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing structure: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
