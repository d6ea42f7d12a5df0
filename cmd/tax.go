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

// depreciationCmd holds the flags for the 'depreciation' subcommand.
type depreciationCmd struct {
	basis  float64
	period float64
	year   int
	years  int
}

func (*depreciationCmd) Name() string     { return "depreciation" }
func (*depreciationCmd) Synopsis() string { return "compute a MACRS depreciation schedule" }
func (*depreciationCmd) Usage() string {
	return `uw depreciation -basis <amount> [-period <years>] [-year <year>] [-years <n>]

  Depreciates a basis with the half-year convention: 200% declining balance
  switching to straight line below 15 years, straight line otherwise.

Usage Examples:
$ uw depreciation -basis 3900000 -period 39
$ uw depreciation -basis 250000 -period 7 -year 2026

`
}

func (c *depreciationCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.basis, "basis", 0, "Depreciable basis, excluding land")
	f.Float64Var(&c.period, "period", underwriting.ResidentialRentalYears, "Recovery period in years")
	f.IntVar(&c.year, "year", date.Today().Year(), "Tax year the asset is placed in service")
	f.IntVar(&c.years, "years", 0, "Years to project, 0 for the whole recovery")
}

func (c *depreciationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.basis <= 0 || c.period <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -basis and -period must be positive")
		return subcommands.ExitUsageError
	}
	s := underwriting.CalculateDepreciationSchedule(underwriting.DepreciationInput{
		Basis:               c.basis,
		RecoveryPeriodYears: c.period,
		PlacedInServiceYear: c.year,
		ProjectionYears:     c.years,
	})
	return emit("Depreciation Schedule", s, func(opts renderer.Options) string {
		return renderer.RenderDepreciation(&s, opts)
	})
}

// costsegCmd holds the flags for the 'costseg' subcommand.
type costsegCmd struct {
	basis        float64
	propertyType string
	bonus        float64
	tax          float64
	discount     float64
}

func (*costsegCmd) Name() string     { return "costseg" }
func (*costsegCmd) Synopsis() string { return "estimate the benefit of a cost segregation study" }
func (*costsegCmd) Usage() string {
	return `uw costseg -basis <amount> [-type <property type>] [-bonus <pct>] [-tax <pct>] [-discount <pct>]

  Splits the building basis into personal property (7 years), land
  improvements (15 years) and the building itself, and compares the
  depreciation with and without the study.

  Property types: multifamily, office, retail, industrial, hospitality,
  self_storage, mixed_use, other.

`
}

func (c *costsegCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.basis, "basis", 0, "Building basis, excluding land")
	f.StringVar(&c.propertyType, "type", string(underwriting.Multifamily), "Property type")
	f.Float64Var(&c.bonus, "bonus", 0, "Bonus depreciation on the personal property, in percent")
	f.Float64Var(&c.tax, "tax", 37, "Marginal tax rate, in percent")
	f.Float64Var(&c.discount, "discount", 8, "Discount rate of the tax savings, in percent")
}

func (c *costsegCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := underwriting.ParsePropertyType(c.propertyType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.basis <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -basis must be positive")
		return subcommands.ExitUsageError
	}
	e := underwriting.CalculateCostSegregationEstimate(underwriting.CostSegregationInput{
		Basis:                c.basis,
		PropertyType:         t,
		BonusDepreciationPct: underwriting.Percent(c.bonus),
		TaxRatePct:           underwriting.Percent(c.tax),
		DiscountRatePct:      underwriting.Percent(c.discount),
	})
	return emit("Cost Segregation Estimate", e, func(opts renderer.Options) string {
		return renderer.RenderCostSegregation(&e, opts)
	})
}

// exchangeCmd holds the flags for the 'exchange' subcommand.
type exchangeCmd struct {
	sale string
	asOf string
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "track the deadlines of a 1031 exchange" }
func (*exchangeCmd) Usage() string {
	return `uw exchange -sale <date> [-d <date>]

  Computes the 45-day identification and the 180-day closing deadlines of a
  1031 exchange, and the days left on a given date.

`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sale, "sale", "", "Closing date of the relinquished property sale")
	f.StringVar(&c.asOf, "d", date.Today().String(), "Date the days left are counted from, as YYYY-MM-DD")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := underwriting.ParseExchange1031Input(c.sale, c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d := underwriting.Calculate1031Deadlines(in)
	return emit("1031 Exchange Deadlines", d, func(opts renderer.Options) string {
		return renderer.RenderExchange(&d, opts)
	})
}
