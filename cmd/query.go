package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/underwriting"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	assumptions assumptionFlags
	first       bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from a deal analysis with a JSONPath" }
func (*queryCmd) Usage() string {
	return `uw query [-first] [<assumption flags>] <jsonpath> <deal.yaml|->

  Underwrites the deal and prints the values the JSONPath selects in the JSON
  analysis, as JSON. Handy to script on a single metric.

Usage Examples:
$ uw query '$.proForma.leveredIrr' deal.yaml
$ uw query '$.proForma.annualCashFlows[*].noi' deal.yaml
$ uw query -first '$.debt.loans[?(@.isOptimal)].structure.name' deal.yaml

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	c.assumptions.SetFlags(f)
	f.BoolVar(&c.first, "first", false, "Print only the first value of a list result")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: query requires a JSONPath and a deal file")
		return subcommands.ExitUsageError
	}
	deal, err := c.assumptions.loadDeal(f, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deal: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := underwriting.Underwrite(deal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error underwriting deal: %v\n", err)
		return subcommands.ExitFailure
	}
	v, err := query(f.Arg(0), a, c.first)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := writeJSON(stdout, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query evaluates path on the JSON form of v.
func query(path string, v any, first bool) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	// filters and wildcards always return a list, even of one answer
	if jlist, ok := jval.([]any); ok && first {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("no value matches")
		}
		jval = jlist[0]
	}
	return jval, nil
}
