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

// sizeCmd holds the flags for the 'size' subcommand.
type sizeCmd struct {
	noi, value   float64
	loanType     string
	rate         float64
	amort        int
	maxLTV       float64
	minDSCR      float64
	minDebtYield float64
}

func (*sizeCmd) Name() string     { return "size" }
func (*sizeCmd) Synopsis() string { return "size the maximum loan on lender constraints" }
func (*sizeCmd) Usage() string {
	return `uw size -noi <noi> -value <value> [-type permanent|construction|bridge] [-rate <pct>] [-amort <years>]

  Returns the largest loan satisfying the loan to value, the debt service
  coverage and the debt yield constraints of the loan type, and which one
  binds. Constraint flags override the loan type.

Usage Examples:
$ uw size -noi 650000 -value 10000000
$ uw size -noi 650000 -value 10000000 -type bridge -min-dscr 0

`
}

func (c *sizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.noi, "noi", 0, "Net operating income the loan is sized on")
	f.Float64Var(&c.value, "value", 0, "Property value")
	f.StringVar(&c.loanType, "type", string(underwriting.PermanentLoan), "Loan type: permanent, construction or bridge")
	f.Float64Var(&c.rate, "rate", 6.5, "Interest rate, in percent")
	f.IntVar(&c.amort, "amort", 30, "Amortization in years, 0 for interest only")
	f.Float64Var(&c.maxLTV, "max-ltv", 0, "Maximum loan to value, in percent")
	f.Float64Var(&c.minDSCR, "min-dscr", 0, "Minimum debt service coverage, 0 to disable")
	f.Float64Var(&c.minDebtYield, "min-debt-yield", 0, "Minimum debt yield, in percent, 0 to disable")
}

func (c *sizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := underwriting.ParseLoanType(c.loanType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.value <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -value must be positive")
		return subcommands.ExitUsageError
	}
	constraints := underwriting.LoanTypeConstraints(t)
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "max-ltv":
			constraints.MaxLTVPct = underwriting.Percent(c.maxLTV)
		case "min-dscr":
			constraints.MinDSCR = c.minDSCR
		case "min-debt-yield":
			constraints.MinDebtYieldPct = underwriting.Percent(c.minDebtYield)
		}
	})

	s := underwriting.SizeLoan(underwriting.LoanSizingInput{
		NOI:               c.noi,
		PropertyValue:     c.value,
		Constraints:       constraints,
		InterestRatePct:   underwriting.Percent(c.rate),
		AmortizationYears: c.amort,
	})
	return emit("Loan Sizing", s, func(opts renderer.Options) string {
		return renderer.RenderSizing(&s, opts)
	})
}
