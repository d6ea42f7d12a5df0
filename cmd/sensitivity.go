package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/renderer"
	"github.com/google/subcommands"
)

// sensitivityCmd holds the flags for the 'sensitivity' subcommand.
type sensitivityCmd struct {
	assumptions assumptionFlags
	variable    string
	values      string
	step        float64
	n           int
}

func (*sensitivityCmd) Name() string     { return "sensitivity" }
func (*sensitivityCmd) Synopsis() string { return "vary one assumption and compare the returns" }
func (*sensitivityCmd) Usage() string {
	return `uw sensitivity -var <variable> [-values <v1,v2,...> | -step <s> -n <n>] [<assumption flags>] [<deal.yaml>]

  Rebuilds the pro forma for each value of one assumption, every other input
  being unchanged. Without -values, n values are spread around the deal's
  own value, step apart.

  Variables: ` + strings.Join(underwriting.SensitivityVariables(), ", ") + `

Usage Examples:
$ uw sensitivity -var exit_cap_rate -values 6,6.5,7,7.5 deal.yaml
$ uw sensitivity -var purchase_price -n 7 deal.yaml

`
}

func (c *sensitivityCmd) SetFlags(f *flag.FlagSet) {
	c.assumptions.SetFlags(f)
	f.StringVar(&c.variable, "var", string(underwriting.SensitivityExitCapRate), "Assumption to vary")
	f.StringVar(&c.values, "values", "", "Comma separated values of the variable")
	f.Float64Var(&c.step, "step", 0, "Step between values (default 5% of the price, 1 year, or 0.5 point)")
	f.IntVar(&c.n, "n", 5, "Number of values around the deal's value")
}

func (c *sensitivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: sensitivity accepts at most one deal file")
		return subcommands.ExitUsageError
	}
	v, err := underwriting.ParseSensitivityVariable(c.variable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	values, err := parseValues(c.values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing values: %v\n", err)
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
	base := underwriting.ProFormaInput{Assumptions: a.Assumptions, RentRoll: a.RentRoll, Budget: a.Budget}

	if len(values) == 0 {
		// an empty run only reports the base value
		t, err := underwriting.RunSensitivity(base, v, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		values = underwriting.SensitivityRange(t.BaseValue, c.stepFor(v, t.BaseValue), c.n)
	}

	table, err := underwriting.RunSensitivity(base, v, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running sensitivity: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit("Sensitivity to "+string(v), table, func(opts renderer.Options) string {
		return renderer.RenderSensitivity(&table, opts)
	})
}

// stepFor returns the step between values of v.
func (c *sensitivityCmd) stepFor(v underwriting.SensitivityVariable, base float64) float64 {
	if c.step > 0 {
		return c.step
	}
	switch v {
	case underwriting.SensitivityPurchasePrice:
		return base * 0.05
	case underwriting.SensitivityHoldYears:
		return 1
	default:
		return 0.5
	}
}
