package underwriting

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/underwriting/date"
)

// MaxHoldYears bounds every yearly schedule the engine produces.
const MaxHoldYears = 30

// ErrInvalidLease is returned for a lease that does not end after it starts.
var ErrInvalidLease = errors.New("invalid lease")

// Lease is a single tenant lease of the rent roll.
type Lease struct {
	TenantID      string    `json:"tenantId"`
	Name          string    `json:"name"`
	StartDate     date.Date `json:"startDate"`
	EndDate       date.Date `json:"endDate"` // last occupied day
	AreaSF        float64   `json:"areaSf"`
	RentPerSF     float64   `json:"rentPerSf"` // annual, in the first lease year
	EscalationPct Percent   `json:"escalationPct"`
}

// Term returns the days occupied by the lease.
func (l Lease) Term() date.Range { return date.Range{From: l.StartDate, To: l.EndDate} }

// Validate checks that the lease ends after it starts.
func (l Lease) Validate() error {
	if !l.EndDate.After(l.StartDate) {
		return fmt.Errorf("%w %q: end date %s is not after start date %s", ErrInvalidLease, l.label(), l.EndDate, l.StartDate)
	}
	return nil
}

func (l Lease) label() string {
	if l.Name != "" {
		return l.Name
	}
	return l.TenantID
}

// RentRollInput holds the leases and market assumptions of a rent roll.
type RentRollInput struct {
	Leases              []Lease   `json:"leases"`
	HoldYears           int       `json:"holdYears"`
	MarketRentPerSF     float64   `json:"marketRentPerSf"`
	MarketVacancyPct    Percent   `json:"marketVacancyPct"`
	MarketRentGrowthPct Percent   `json:"marketRentGrowthPct"`
	TotalAreaSF         float64   `json:"totalAreaSf"` // optional; the unleased remainder earns market rent
	AnalysisStart       date.Date `json:"analysisStart"`
}

// RentRollYear is the revenue of one annual period of the rent roll.
type RentRollYear struct {
	Year                     int       `json:"year"`
	StartDate                date.Date `json:"startDate"`
	EndDate                  date.Date `json:"endDate"`
	ContractedRevenue        float64   `json:"contractedRevenue"`
	PotentialRolloverRevenue float64   `json:"potentialRolloverRevenue"`
	RolloverVacancyLoss      float64   `json:"rolloverVacancyLoss"`
	NetRolloverRevenue       float64   `json:"netRolloverRevenue"`
	TotalRevenue             float64   `json:"totalRevenue"`
	LeasedAreaSF             float64   `json:"leasedAreaSf"` // day-weighted average
}

// RentRollAggregation is the annual revenue schedule of a rent roll.
type RentRollAggregation struct {
	HasLeases              bool           `json:"hasLeases"`
	HoldYears              int            `json:"holdYears"`
	AnalysisStart          date.Date      `json:"analysisStart"`
	Years                  []RentRollYear `json:"years"`
	TotalLeasedSF          float64        `json:"totalLeasedSf"`
	WALTYears              float64        `json:"waltYears"`
	TotalContractedRevenue float64        `json:"totalContractedRevenue"`
	TotalRevenue           float64        `json:"totalRevenue"`
}

// Revenue returns the total revenue of year (1-based) and whether the
// schedule covers it.
func (r RentRollAggregation) Revenue(year int) (float64, bool) {
	if !r.HasLeases || year < 1 || year > len(r.Years) {
		return 0, false
	}
	return r.Years[year-1].TotalRevenue, true
}

func clampHold(years int) int { return max(1, min(MaxHoldYears, years)) }

// AggregateRentRoll converts the leases into an annual revenue schedule.
//
// Contracted rent escalates on each lease anniversary and is prorated by the
// days the lease overlaps the period. Days after a lease expires, and the
// unleased area, earn market rent less the market vacancy. The area of a
// lease not yet commenced is held for its tenant and earns nothing.
func AggregateRentRoll(in RentRollInput) (RentRollAggregation, error) {
	hold := clampHold(in.HoldYears)
	start := in.AnalysisStart
	for _, l := range in.Leases {
		if err := l.Validate(); err != nil {
			return RentRollAggregation{}, err
		}
		// without an explicit start the analysis begins with the earliest lease
		if in.AnalysisStart.IsZero() && (start.IsZero() || l.StartDate.Before(start)) {
			start = l.StartDate
		}
	}

	res := RentRollAggregation{
		HasLeases:     len(in.Leases) > 0,
		HoldYears:     hold,
		AnalysisStart: start,
		Years:         make([]RentRollYear, hold),
	}
	for i, period := range date.Years(start, hold) {
		res.Years[i] = RentRollYear{Year: i + 1, StartDate: period.From, EndDate: period.To}
	}
	if !res.HasLeases {
		return res, nil
	}

	var leasedSF float64
	for _, l := range in.Leases {
		leasedSF += l.AreaSF
	}
	res.TotalLeasedSF = leasedSF
	unleasedSF := math.Max(0, in.TotalAreaSF-leasedSF)
	vacancy := in.MarketVacancyPct.Rate()

	for i, period := range date.Years(start, hold) {
		y := &res.Years[i]
		days := float64(period.Days())
		marketRent := in.MarketRentPerSF * math.Pow(1+in.MarketRentGrowthPct.Rate(), float64(i))

		for _, l := range in.Leases {
			occupied := period.Intersect(l.Term())
			y.ContractedRevenue += contractedRent(l, occupied) / days
			y.LeasedAreaSF += l.AreaSF * float64(occupied.Days()) / days

			expired := period.Intersect(date.Range{From: l.EndDate.Add(1), To: period.To})
			y.PotentialRolloverRevenue += l.AreaSF * marketRent * float64(expired.Days()) / days
		}
		y.PotentialRolloverRevenue += unleasedSF * marketRent
		y.RolloverVacancyLoss = y.PotentialRolloverRevenue * vacancy
		y.NetRolloverRevenue = y.PotentialRolloverRevenue - y.RolloverVacancyLoss
		y.TotalRevenue = y.ContractedRevenue + y.NetRolloverRevenue

		res.TotalContractedRevenue += y.ContractedRevenue
		res.TotalRevenue += y.TotalRevenue
	}
	res.WALTYears = walt(in.Leases, start)
	return res, nil
}

// contractedRent returns the rent of l over the occupied days, times the
// number of days: the caller prorates by the period length.
func contractedRent(l Lease, occupied date.Range) float64 {
	if occupied.Empty() {
		return 0
	}
	var total float64
	for k := occupied.From.YearsSince(l.StartDate); ; k++ {
		leaseYear := date.Year(l.StartDate, k)
		if leaseYear.From.After(occupied.To) {
			break
		}
		days := leaseYear.Intersect(occupied).Days()
		rent := l.RentPerSF * math.Pow(1+l.EscalationPct.Rate(), float64(k))
		total += l.AreaSF * rent * float64(days)
	}
	return total
}

// walt returns the area-weighted remaining term, in years, of the leases
// not yet expired on start.
func walt(leases []Lease, start date.Date) float64 {
	var area, weighted float64
	for _, l := range leases {
		if l.EndDate.Before(start) || l.AreaSF <= 0 {
			continue
		}
		area += l.AreaSF
		weighted += l.AreaSF * yearFraction(start, l.EndDate.Add(1))
	}
	if area == 0 {
		return 0
	}
	return weighted / area
}

// yearFraction returns the number of years from from to to: whole
// anniversaries plus the elapsed fraction of the next one.
func yearFraction(from, to date.Date) float64 {
	if !to.After(from) {
		return 0
	}
	n := to.YearsSince(from)
	rest := date.Range{From: from.AddYears(n), To: to.Add(-1)}
	return float64(n) + float64(rest.Days())/float64(date.Year(from, n).Days())
}
