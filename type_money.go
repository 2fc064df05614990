package hourbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal value with a display currency. It exists
// for report surfaces only; the book itself is currency-agnostic.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from an Amount and a 3-letter currency code.
func M(a Amount, currency string) Money {
	return Money{value: a.value, cur: currency}
}

// MB builds a Money from a Balance and a 3-letter currency code.
func MB(b Balance, currency string) Money {
	return Money{value: b.value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// String formats the value with the currency's symbol and grouping
// rules, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsZero() bool     { return m.value.IsZero() }
