package networth

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money value from a float amount and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// AsFloat returns the amount as a float64, for reporting computations that
// cross currencies.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Decimal returns the exact decimal amount, for persistence.
func (m Money) Decimal() decimal.Decimal { return m.value }

// moneyFromDecimal builds a Money from an exact decimal amount, as read back
// from the ledger file.
func moneyFromDecimal(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// cur makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic(fmt.Sprintf("currency mismatch %s != %s", a.cur, b.cur))
	}
	return a.cur
}
