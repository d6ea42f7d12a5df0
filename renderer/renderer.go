package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/underwriting"
)

//go:embed *.md
var templates embed.FS

// Options holds configuration for rendering a report.
type Options struct {
	Currency string // ISO 4217 code of the amounts, USD when empty.
}

// RenderDeal renders a whole deal analysis to a markdown string. Sections the
// deal does not have are left out.
func RenderDeal(a *underwriting.DealAnalysis, opts Options) string {
	partials := partialsOf(
		"proforma_returns", "proforma_sources", "proforma_cashflows", "proforma_exit",
		"rentroll_schedule", "budget_summary", "debt_comparison", "waterfall_distributions",
	)
	return renderTemplate("deal", "deal.md", partials, a, opts)
}

// RenderProForma renders a pro forma to a markdown string.
func RenderProForma(pf *underwriting.ProFormaResults, opts Options) string {
	partials := partialsOf("proforma_returns", "proforma_sources", "proforma_cashflows", "proforma_exit")
	return renderTemplate("proforma", "proforma.md", partials, pf, opts)
}

// RenderSizing renders a loan sizing to a markdown string.
func RenderSizing(s *underwriting.LoanSizing, opts Options) string {
	return renderTemplate("sizing", "sizing.md", nil, s, opts)
}

// RenderRentRoll renders a rent roll schedule to a markdown string.
func RenderRentRoll(rr *underwriting.RentRollAggregation, opts Options) string {
	return renderTemplate("rentroll", "rentroll.md", partialsOf("rentroll_schedule"), rr, opts)
}

// RenderBudget renders a development budget summary to a markdown string.
func RenderBudget(b *underwriting.DevelopmentBudgetSummary, opts Options) string {
	return renderTemplate("budget", "budget.md", partialsOf("budget_summary"), b, opts)
}

// RenderDebt renders a debt comparison with the yearly ledger of every loan.
func RenderDebt(c *underwriting.DebtComparison, opts Options) string {
	return renderTemplate("debt", "debt.md", partialsOf("debt_comparison", "debt_ledger"), c, opts)
}

// RenderWaterfall renders an equity waterfall to a markdown string.
func RenderWaterfall(w *underwriting.WaterfallResults, opts Options) string {
	return renderTemplate("waterfall", "waterfall.md", partialsOf("waterfall_distributions"), w, opts)
}

// RenderDepreciation renders a depreciation schedule to a markdown string.
func RenderDepreciation(s *underwriting.DepreciationSchedule, opts Options) string {
	return renderTemplate("depreciation", "depreciation.md", nil, s, opts)
}

// RenderCostSegregation renders a cost segregation estimate to a markdown string.
func RenderCostSegregation(e *underwriting.CostSegregationEstimate, opts Options) string {
	return renderTemplate("costseg", "costseg.md", nil, e, opts)
}

// RenderExchange renders 1031 exchange deadlines to a markdown string.
func RenderExchange(d *underwriting.Exchange1031Deadlines, opts Options) string {
	return renderTemplate("exchange", "exchange.md", nil, d, opts)
}

// RenderSensitivity renders a sensitivity table to a markdown string.
func RenderSensitivity(s *underwriting.SensitivityTable, opts Options) string {
	return renderTemplate("sensitivity", "sensitivity.md", nil, s, opts)
}

// RenderScenarios renders the side by side comparison of scenarios.
func RenderScenarios(results []underwriting.ScenarioResult, opts Options) string {
	return renderTemplate("scenarios", "scenarios.md", nil, results, opts)
}

// partialsOf maps each partial name to its file.
func partialsOf(names ...string) map[string]string {
	res := make(map[string]string, len(names))
	for _, name := range names {
		res[name] = name + ".md"
	}
	return res
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any, opts Options) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(opts)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
