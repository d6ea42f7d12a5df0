package underwriting

import "testing"

func TestCalculate1031Deadlines(t *testing.T) {
	tests := []struct {
		asOf                      string
		wantIdentify, wantClose   int
		identifyExp, closeExpired bool
	}{
		{"2026-01-01", 45, 180, false, false},
		{"2026-02-15", 0, 135, false, false},
		{"2026-02-16", 0, 134, true, false},
		{"2026-06-30", 0, 0, true, false},
		{"2026-07-01", 0, 0, true, true},
		{"2025-12-01", 76, 211, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.asOf, func(t *testing.T) {
			got := Calculate1031Deadlines(Exchange1031Input{SaleCloseDate: d("2026-01-01"), AsOf: d(tt.asOf)})
			if got.IdentificationDeadline != d("2026-02-15") || got.ClosingDeadline != d("2026-06-30") {
				t.Errorf("deadlines %s/%s, want 2026-02-15/2026-06-30", got.IdentificationDeadline, got.ClosingDeadline)
			}
			if got.DaysToIdentification != tt.wantIdentify || got.DaysToClosing != tt.wantClose {
				t.Errorf("days %d/%d, want %d/%d", got.DaysToIdentification, got.DaysToClosing, tt.wantIdentify, tt.wantClose)
			}
			if got.IdentificationExpired != tt.identifyExp || got.ClosingExpired != tt.closeExpired {
				t.Errorf("expired %v/%v, want %v/%v", got.IdentificationExpired, got.ClosingExpired, tt.identifyExp, tt.closeExpired)
			}
		})
	}
}

func TestParseExchange1031Input(t *testing.T) {
	in, err := ParseExchange1031Input("2026-03-10", "2026-04-01")
	if err != nil {
		t.Fatalf("ParseExchange1031Input() error = %v", err)
	}
	if in.SaleCloseDate != d("2026-03-10") || in.AsOf != d("2026-04-01") {
		t.Errorf("ParseExchange1031Input() = %+v", in)
	}

	in, err = ParseExchange1031Input("2026-03-10", "")
	if err != nil {
		t.Fatalf("ParseExchange1031Input() error = %v", err)
	}
	if in.AsOf.IsZero() {
		t.Error("AsOf is zero, want today")
	}

	if _, err := ParseExchange1031Input("10/03/2026", ""); err == nil {
		t.Error("ParseExchange1031Input(bad sale date) error = nil")
	}
	if _, err := ParseExchange1031Input("2026-03-10", "soon"); err == nil {
		t.Error("ParseExchange1031Input(bad as-of date) error = nil")
	}
}
