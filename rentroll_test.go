package underwriting

import (
	"errors"
	"testing"
)

func TestAggregateRentRoll_FullOccupancy(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{TenantID: "t1", Name: "Anchor", StartDate: d("2026-01-01"), EndDate: d("2035-12-31"), AreaSF: 10_000, RentPerSF: 25},
		},
		HoldYears:     3,
		AnalysisStart: d("2026-01-01"),
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	if !rr.HasLeases || len(rr.Years) != 3 {
		t.Fatalf("AggregateRentRoll() = %d years, has leases %v, want 3 years with leases", len(rr.Years), rr.HasLeases)
	}
	for _, y := range rr.Years {
		near(t, "contracted revenue", y.ContractedRevenue, 250_000, 1e-6)
		near(t, "rollover revenue", y.PotentialRolloverRevenue, 0, 1e-9)
		near(t, "leased area", y.LeasedAreaSF, 10_000, 1e-9)
	}
	near(t, "total revenue", rr.TotalRevenue, 750_000, 1e-6)
	if got := rr.Years[1].StartDate; got != d("2027-01-01") {
		t.Errorf("year 2 start = %s, want 2027-01-01", got)
	}
}

func TestAggregateRentRoll_EscalationOnAnniversary(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "Suite 100", StartDate: d("2025-07-01"), EndDate: d("2030-06-30"), AreaSF: 1000, RentPerSF: 10, EscalationPct: 10},
		},
		HoldYears:     1,
		AnalysisStart: d("2026-01-01"),
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	// 181 days at $10 then 184 days at $11
	near(t, "contracted revenue", rr.Years[0].ContractedRevenue, 10_504.11, 0.01)
}

func TestAggregateRentRoll_BeforeCommencement(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "Future", StartDate: d("2026-07-02"), EndDate: d("2030-12-31"), AreaSF: 5000, RentPerSF: 20},
		},
		HoldYears:       1,
		MarketRentPerSF: 30,
		TotalAreaSF:     10_000,
		AnalysisStart:   d("2026-01-01"),
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	y := rr.Years[0]
	// 183 of 365 days occupied, the 182 days before earn nothing
	near(t, "contracted revenue", y.ContractedRevenue, 5000*20*183/365.0, 1e-6)
	near(t, "leased area", y.LeasedAreaSF, 5000*183/365.0, 1e-9)
	// only the 5,000 unleased SF earn market rent
	near(t, "rollover revenue", y.PotentialRolloverRevenue, 150_000, 1e-6)
}

func TestAggregateRentRoll_Rollover(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "Short", StartDate: d("2024-01-01"), EndDate: d("2026-06-30"), AreaSF: 1000, RentPerSF: 10},
		},
		HoldYears:        2,
		MarketRentPerSF:  20,
		MarketVacancyPct: 10,
		AnalysisStart:    d("2026-01-01"),
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	want := RentRollYear{
		Year:                     1,
		StartDate:                d("2026-01-01"),
		EndDate:                  d("2026-12-31"),
		ContractedRevenue:        4958.90,
		PotentialRolloverRevenue: 10_082.19,
		RolloverVacancyLoss:      1008.22,
		NetRolloverRevenue:       9073.97,
		TotalRevenue:             14_032.88,
		LeasedAreaSF:             495.89,
	}
	diff(t, "year 1", rr.Years[0], want)
	near(t, "year 2 total revenue", rr.Years[1].TotalRevenue, 18_000, 1e-6)
	near(t, "year 2 contracted revenue", rr.Years[1].ContractedRevenue, 0, 1e-9)
}

func TestAggregateRentRoll_UnleasedArea(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "A", StartDate: d("2026-01-01"), EndDate: d("2030-12-31"), AreaSF: 1000, RentPerSF: 10},
		},
		HoldYears:           2,
		MarketRentPerSF:     20,
		MarketRentGrowthPct: 5,
		TotalAreaSF:         1500,
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	near(t, "year 1 rollover", rr.Years[0].PotentialRolloverRevenue, 10_000, 1e-6)
	near(t, "year 2 rollover", rr.Years[1].PotentialRolloverRevenue, 10_500, 1e-6)
}

func TestAggregateRentRoll_DefaultStart(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "B", StartDate: d("2027-03-01"), EndDate: d("2030-12-31"), AreaSF: 1000, RentPerSF: 10},
			{Name: "A", StartDate: d("2026-05-01"), EndDate: d("2030-12-31"), AreaSF: 1000, RentPerSF: 10},
		},
		HoldYears: 1,
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	if rr.AnalysisStart != d("2026-05-01") {
		t.Errorf("AnalysisStart = %s, want the earliest lease start 2026-05-01", rr.AnalysisStart)
	}
}

func TestAggregateRentRoll_NoLeases(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{HoldYears: 5, MarketRentPerSF: 30})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	if rr.HasLeases {
		t.Error("HasLeases = true, want false")
	}
	if len(rr.Years) != 5 {
		t.Fatalf("len(Years) = %d, want 5", len(rr.Years))
	}
	for _, y := range rr.Years {
		if y.TotalRevenue != 0 {
			t.Errorf("year %d revenue = %v, want 0", y.Year, y.TotalRevenue)
		}
	}
	if _, ok := rr.Revenue(1); ok {
		t.Error("Revenue(1) ok = true, want false without leases")
	}
}

func TestAggregateRentRoll_HoldClamp(t *testing.T) {
	for _, tt := range []struct{ hold, want int }{{0, 1}, {-3, 1}, {12, 12}, {50, MaxHoldYears}} {
		rr, err := AggregateRentRoll(RentRollInput{HoldYears: tt.hold})
		if err != nil {
			t.Fatalf("AggregateRentRoll() error = %v", err)
		}
		if len(rr.Years) != tt.want || rr.HoldYears != tt.want {
			t.Errorf("hold %d: %d years, want %d", tt.hold, len(rr.Years), tt.want)
		}
	}
}

func TestAggregateRentRoll_InvalidLease(t *testing.T) {
	_, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{{Name: "Backwards", StartDate: d("2027-01-01"), EndDate: d("2026-01-01"), AreaSF: 100, RentPerSF: 10}},
	})
	if !errors.Is(err, ErrInvalidLease) {
		t.Errorf("AggregateRentRoll() error = %v, want ErrInvalidLease", err)
	}
}

func TestWALT(t *testing.T) {
	rr, err := AggregateRentRoll(RentRollInput{
		Leases: []Lease{
			{Name: "A", StartDate: d("2020-01-01"), EndDate: d("2030-12-31"), AreaSF: 1000, RentPerSF: 10},
			{Name: "B", StartDate: d("2020-01-01"), EndDate: d("2027-12-31"), AreaSF: 3000, RentPerSF: 10},
			{Name: "Expired", StartDate: d("2020-01-01"), EndDate: d("2025-12-31"), AreaSF: 5000, RentPerSF: 10},
		},
		HoldYears:     1,
		AnalysisStart: d("2026-01-01"),
	})
	if err != nil {
		t.Fatalf("AggregateRentRoll() error = %v", err)
	}
	near(t, "WALT", rr.WALTYears, 2.75, 1e-9)
}
