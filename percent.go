package underwriting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a quantity expressed in percentage points: 6.5 means 6.5%.
type Percent float64

// Rate returns p as a fraction (6.5% is 0.065).
func (p Percent) Rate() float64 { return float64(p) / 100 }

// PercentOf returns rate (0.065) as a Percent (6.5).
func PercentOf(rate float64) Percent { return Percent(rate * 100) }

func (p Percent) decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
