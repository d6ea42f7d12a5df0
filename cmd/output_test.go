package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/renderer"
)

func TestWrite(t *testing.T) {
	s := underwriting.SizeLoan(underwriting.LoanSizingInput{
		NOI:               650_000,
		PropertyValue:     10_000_000,
		Constraints:       underwriting.LoanTypeConstraints(underwriting.PermanentLoan),
		InterestRatePct:   6.5,
		AmortizationYears: 30,
	})
	report := func(opts renderer.Options) string { return renderer.RenderSizing(&s, opts) }

	tests := []struct {
		format string
		want   []string
	}{
		{FormatRaw, []string{"# Loan Sizing", "|"}},
		{FormatHTML, []string{"<!DOCTYPE html>", "<title>Loan Sizing</title>", "<table>"}},
		{FormatMarkdown, []string{"Loan Sizing"}},
	}
	for _, test := range tests {
		cfg := testConfig
		cfg.Format = test.format
		var b bytes.Buffer
		if err := write(&b, cfg, "Loan Sizing", s, report); err != nil {
			t.Errorf("write(%s) error = %v", test.format, err)
			continue
		}
		for _, want := range test.want {
			if !strings.Contains(b.String(), want) {
				t.Errorf("write(%s) does not contain %q:\n%s", test.format, want, b.String())
			}
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	s := underwriting.LoanSizing{LoanAmount: 1_000_000, BindingConstraint: "dscr"}
	var b bytes.Buffer
	if err := write(&b, testConfig, "Loan Sizing", s, nil); err != nil {
		t.Fatalf("write() error = %v", err)
	}
	var got underwriting.LoanSizing
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, b.String())
	}
	if got.LoanAmount != s.LoanAmount || got.BindingConstraint != s.BindingConstraint {
		t.Errorf("decoded %+v, want %+v", got, s)
	}
}

func TestWrite_Currency(t *testing.T) {
	budget := underwriting.SummarizeDevelopmentBudget([]underwriting.DevelopmentBudgetLineItem{
		{Name: "Shell", Category: underwriting.HardCost, Amount: 100_000},
	}, underwriting.ContingencyConfig{})
	cfg := testConfig
	cfg.Format, cfg.Currency = FormatRaw, "EUR"

	var b bytes.Buffer
	err := write(&b, cfg, "Budget", budget, func(opts renderer.Options) string { return renderer.RenderBudget(&budget, opts) })
	if err != nil {
		t.Fatalf("write() error = %v", err)
	}
	if !strings.Contains(b.String(), "€") {
		t.Errorf("report is not in euros:\n%s", b.String())
	}
}
