package underwriting

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator returns identifiers for new loan and waterfall structures.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator returns random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator returns Prefix-1, Prefix-2, ... and is safe for
// concurrent use. It makes runs reproducible.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}

// NewLoanStructure returns a 10-year fixed-rate loan amortizing over 30 years
// with a 1% origination fee and no prepayment penalty, to be edited.
func NewLoanStructure(ids IDGenerator, name string) LoanStructure {
	return LoanStructure{
		ID:                ids.NewID(),
		Name:              name,
		RateType:          FixedRate,
		RatePct:           6.5,
		AmortizationYears: 30,
		TermYears:         10,
		OriginationFeePct: 1,
		PrepaymentType:    NoPrepaymentPenalty,
	}
}

// NewWaterfallStructure returns a 10% GP co-invest, 8% preferred return
// structure promoting the GP to 30% above a 12% LP IRR, to be edited.
func NewWaterfallStructure(ids IDGenerator, name string, totalEquity float64) WaterfallStructure {
	return WaterfallStructure{
		ID:                 ids.NewID(),
		Name:               name,
		TotalEquity:        totalEquity,
		GPCoinvestPct:      10,
		PreferredReturnPct: 8,
		Tiers: []PromoteTier{
			{HurdleIRRPct: 8, LPDistributionPct: 80, GPDistributionPct: 20},
			{HurdleIRRPct: 12, LPDistributionPct: 70, GPDistributionPct: 30},
		},
	}
}
