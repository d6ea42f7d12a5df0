package underwriting

import "testing"

func TestRecommend(t *testing.T) {
	tests := []struct {
		irr      *float64
		multiple float64
		dscr     float64
		want     Decision
	}{
		{ptr(0.22), 2.1, 1.30, Proceed},
		{ptr(0.20), 2.0, 1.25, Proceed},
		{ptr(0.22), 1.9, 1.30, Conditional},
		{ptr(0.16), 2.5, 1.21, Conditional},
		{ptr(0.15), 1.8, 1.20, Conditional},
		{ptr(0.14), 2.5, 1.50, Pass},
		{ptr(0.25), 2.5, 1.10, Pass},
		{nil, 3, 2, Pass},
	}
	for _, tt := range tests {
		got := Recommend(tt.irr, tt.multiple, tt.dscr)
		if got.Decision != tt.want {
			t.Errorf("Recommend(%s, %v, %v) = %v, want %v", pct(tt.irr), tt.multiple, tt.dscr, got.Decision, tt.want)
		}
		if got.Reason == "" {
			t.Errorf("Recommend(%s, %v, %v) has no reason", pct(tt.irr), tt.multiple, tt.dscr)
		}
	}
}
