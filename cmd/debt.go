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

// debtCmd holds the flags for the 'debt' subcommand.
type debtCmd struct {
	loan         float64
	hold         int
	index        float64
	reinvestment float64
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "compare loan structures over a hold period" }
func (*debtCmd) Usage() string {
	return `uw debt -loan <amount> -hold <years> [-index <pct>] [-reinvestment <pct>] <loans.yaml|->

  Compares up to four loan structures for the same loan: debt service,
  interest, balance and prepayment penalty at exit. The optimal structure
  has the lowest total cost at the hold. The loans file holds the debt
  section of a deal: indexRatePct, reinvestmentRatePct and loans.

  Create a loan structure to edit with 'uw new loan'.

`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.loan, "loan", 0, "Loan amount")
	f.IntVar(&c.hold, "hold", 5, "Hold period in years")
	f.Float64Var(&c.index, "index", 0, "Index rate of floating loans in percent, overriding the file (default $UW_INDEX_RATE_PCT)")
	f.Float64Var(&c.reinvestment, "reinvestment", 0, "Defeasance reinvestment rate in percent, overriding the file")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: debt requires exactly one loans file")
		return subcommands.ExitUsageError
	}
	if c.loan <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -loan must be positive")
		return subcommands.ExitUsageError
	}
	in, err := decodeFile[underwriting.DebtOptions](f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading loans: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, err := config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if in.IndexRatePct == 0 {
		in.IndexRatePct = cfg.IndexRatePct
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "index":
			in.IndexRatePct = underwriting.Percent(c.index)
		case "reinvestment":
			in.ReinvestmentRatePct = underwriting.Percent(c.reinvestment)
		}
	})

	cmp, err := underwriting.AnalyzeDebtStructures(underwriting.DebtAnalysisInput{
		LoanAmount:          c.loan,
		HoldYears:           c.hold,
		IndexRatePct:        in.IndexRatePct,
		ReinvestmentRatePct: in.ReinvestmentRatePct,
		Loans:               in.Loans,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing loans: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit("Debt Structure Analysis", cmp, func(opts renderer.Options) string {
		return renderer.RenderDebt(&cmp, opts)
	})
}
