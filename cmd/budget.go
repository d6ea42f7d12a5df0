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

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	hard, soft, other float64
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "roll up a development budget with contingency" }
func (*budgetCmd) Usage() string {
	return `uw budget [-hard <pct>] [-soft <pct>] [-other <pct>] <budget.yaml|->

  Sums the line items of a development budget per category (hard, soft,
  other) and adds each category's contingency.

`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.hard, "hard", 0, "Hard cost contingency in percent, overriding the file")
	f.Float64Var(&c.soft, "soft", 0, "Soft cost contingency in percent, overriding the file")
	f.Float64Var(&c.other, "other", 0, "Other cost contingency in percent, overriding the file")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: budget requires exactly one budget file")
		return subcommands.ExitUsageError
	}
	in, err := decodeFile[underwriting.BudgetInput](f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading budget: %v\n", err)
		return subcommands.ExitFailure
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "hard":
			in.Contingency.HardPct = underwriting.Percent(c.hard)
		case "soft":
			in.Contingency.SoftPct = underwriting.Percent(c.soft)
		case "other":
			in.Contingency.OtherPct = underwriting.Percent(c.other)
		}
	})

	s := underwriting.SummarizeDevelopmentBudget(in.Items, in.Contingency)
	return emit("Development Budget", s, func(opts renderer.Options) string {
		return renderer.RenderBudget(&s, opts)
	})
}
