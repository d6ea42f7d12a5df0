package renderer

import (
	"cmp"
	"fmt"
	"text/template"

	"github.com/etnz/underwriting"
)

// funcs returns the formatting functions available to every template.
func funcs(opts Options) template.FuncMap {
	currency := cmp.Or(opts.Currency, underwriting.DefaultCurrency)
	return template.FuncMap{
		// money is an amount with cents, whole an amount rounded to the unit.
		"money":    func(v float64) string { return underwriting.M(v, currency).String() },
		"whole":    func(v float64) string { return underwriting.M(v, currency).Whole() },
		"pct":      func(p underwriting.Percent) string { return p.String() },
		"rate":     func(r float64) string { return underwriting.PercentOf(r).String() },
		"irr":      irr,
		"multiple": func(m float64) string { return fmt.Sprintf("%.2fx", m) },
		"dscr":     dscr,
		"sf":       func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"years":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"value":    value(currency),
	}
}

// irr formats an IRR that may be unavailable.
func irr(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return underwriting.PercentOf(*r).String()
}

func dscr(v float64) string {
	if v >= underwriting.DSCRNotApplicable {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", v)
}

// value formats a sensitivity value: a price in whole units, years as an
// integer and everything else as a percentage.
func value(currency string) func(underwriting.SensitivityVariable, float64) string {
	return func(v underwriting.SensitivityVariable, x float64) string {
		switch v {
		case underwriting.SensitivityPurchasePrice:
			return underwriting.M(x, currency).Whole()
		case underwriting.SensitivityHoldYears:
			return fmt.Sprintf("%.0f", x)
		default:
			return underwriting.Percent(x).String()
		}
	}
}
