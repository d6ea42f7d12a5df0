package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/subcommands"
)

// approx compares floats to the cent.
var approx = cmpopts.EquateApprox(0, 0.01)

// testConfig writes JSON so outputs can be decoded.
var testConfig = Config{Currency: "USD", IndexRatePct: 4, Format: FormatJSON, Style: "notty", WordWrap: 80, ScenarioLimit: 2}

// run executes the subcommand c with args under cfg and returns what it wrote.
func run(t *testing.T, c subcommands.Command, cfg Config, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	oldConfig, oldStdout := config, stdout
	t.Cleanup(func() { config, stdout = oldConfig, oldStdout })

	config = func() (Config, error) { return cfg, nil }
	var b bytes.Buffer
	stdout = &b

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", c.Name(), args, err)
	}
	status := c.Execute(context.Background(), fs)
	return b.String(), status
}

// runJSON runs c and decodes its JSON output into a T.
func runJSON[T any](t *testing.T, c subcommands.Command, args ...string) T {
	t.Helper()
	out, status := run(t, c, testConfig, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %q exited with %v", c.Name(), args, status)
	}
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("%s %q: cannot decode output: %v\n%s", c.Name(), args, err, out)
	}
	return v
}

// writeFile writes content to name in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", name, err)
	}
	return path
}

const dealYAML = `
name: Maple Street
assumptions:
  purchasePrice: 5000000
  grossPotentialRent: 600000
  operatingExpenses: 200000
  holdYears: 5
  exitCapRatePct: 7
debt:
  loans:
    - id: agency
      name: Agency
      rateType: fixed
      ratePct: 6
      amortizationYears: 30
      termYears: 10
      prepaymentType: none
    - id: bank
      name: Bank
      rateType: floating
      spreadBps: 250
      amortizationYears: 25
      termYears: 7
      prepaymentType: step_down
      stepDownSchedule: [5, 4, 3, 2, 1, 1, 1]
`
