package underwriting

import (
	"strings"
	"testing"
)

const dealJSON = `{
  "name": "Elm Court",
  "assumptions": {"purchasePrice": 4000000, "grossPotentialRent": 420000, "holdYears": 7},
  "rentRoll": {
    "leases": [
      {"tenantId": "a", "name": "Grocer", "startDate": "2026-01-01", "endDate": "2035-12-31", "areaSf": 20000, "rentPerSf": 18}
    ],
    "marketRentPerSf": 20
  },
  "debt": {"loans": [{"id": "l1", "rateType": "fixed", "ratePct": 6, "amortizationYears": 30, "termYears": 10, "prepaymentType": "none"}]}
}`

const dealYAML = `
name: Elm Court
assumptions:
  purchasePrice: 4000000
  grossPotentialRent: 420000
  holdYears: 7
rentRoll:
  leases:
    - tenantId: a
      name: Grocer
      startDate: 2026-01-01
      endDate: "2035-12-31"
      areaSf: 20000
      rentPerSf: 18
  marketRentPerSf: 20
debt:
  loans:
    - id: l1
      rateType: fixed
      ratePct: 6
      amortizationYears: 30
      termYears: 10
      prepaymentType: none
`

func TestDecodeDeal(t *testing.T) {
	fromJSON, err := DecodeDeal(strings.NewReader(dealJSON), JSON)
	if err != nil {
		t.Fatalf("DecodeDeal(json) error = %v", err)
	}
	if fromJSON.Name != "Elm Court" || *fromJSON.Assumptions.HoldYears != 7 {
		t.Errorf("DecodeDeal(json) = %q, hold %v", fromJSON.Name, fromJSON.Assumptions.HoldYears)
	}
	if fromJSON.Assumptions.VacancyPct != nil {
		t.Errorf("VacancyPct = %v, want unset", *fromJSON.Assumptions.VacancyPct)
	}
	lease := fromJSON.RentRoll.Leases[0]
	if lease.StartDate != d("2026-01-01") || lease.EndDate != d("2035-12-31") {
		t.Errorf("lease term %s, want 2026-01-01..2035-12-31", lease.Term())
	}

	fromYAML, err := DecodeDeal(strings.NewReader(dealYAML), YAML)
	if err != nil {
		t.Fatalf("DecodeDeal(yaml) error = %v", err)
	}
	diff(t, "DecodeDeal(yaml)", fromYAML, fromJSON)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		f    Format
	}{
		{"unknown field", `{"name": "x", "color": "blue"}`, JSON},
		{"bad date", `{"rentRoll": {"leases": [{"startDate": "01/01/2026"}]}}`, JSON},
		{"malformed json", `{"name": `, JSON},
		{"malformed yaml", "name: [x", YAML},
		{"unknown yaml field", "color: blue", YAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeDeal(strings.NewReader(tt.doc), tt.f); err == nil {
				t.Error("DecodeDeal() error = nil")
			}
		})
	}
}

func TestDecode_Scenarios(t *testing.T) {
	got, err := Decode[[]Scenario](strings.NewReader("- name: downside\n  patch:\n    exitCapRatePct: 8.5\n- name: base\n"), YAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "downside" || *got[0].Patch.ExitCapRatePct != 8.5 || got[1].Patch.ExitCapRatePct != nil {
		t.Errorf("Decode() = %+v", got)
	}
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"deal.json": JSON,
		"deal.YML":  YAML,
		"deal.yaml": YAML,
		"deal":      JSON,
	} {
		if got := FormatOf(name); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", name, got, want)
		}
	}
}
