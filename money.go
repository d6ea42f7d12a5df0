package underwriting

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when a report does not specify one.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in currency. The empty currency is
// DefaultCurrency, and adopts the currency of the amounts it is added to.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// String returns the string representation of the money value, rounded to
// the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Whole returns the string representation of the money value without minor units.
func (m Money) Whole() string {
	cur := m.currency()
	cur.Fraction = 0
	return cur.Formatter().Format(m.value.Round(0).IntPart())
}

func (m Money) Add(n Money) Money   { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Mul(p Percent) Money { return Money{value: m.value.Mul(p.decimal()), cur: m.cur} }

// Float64 returns the value rounded to the currency's minor unit.
func (m Money) Float64() float64 {
	return m.value.Round(int32(m.currency().Fraction)).InexactFloat64()
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
