package hourbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a non-negative monetary figure: an amount billed per hour or
// an amount deposited. Arithmetic is exact; rounding happens only when
// formatting for display.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a raw form field into an Amount. The empty string is
// a missing field and parses to zero; anything else must be a
// non-negative decimal number or the result is an ErrValidation.
func ParseAmount(field, input string) (Amount, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%s %q is not a number: %w", field, input, ErrValidation)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%s %q must not be negative: %w", field, input, ErrValidation)
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount  { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Balance { return Balance{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool  { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool         { return a.value.IsZero() }

// String renders the amount rounded to 2 decimal places for display.
// The stored value keeps its full precision.
func (a Amount) String() string { return a.value.StringFixed(2) }

func (a Amount) MarshalJSON() ([]byte, error)  { return a.value.MarshalJSON() }
func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }

// Balance is the signed difference of two Amounts, typically
// deposit - amountPerHour. A positive balance means the client has a
// credit; a negative one means the client still owes.
type Balance struct {
	value decimal.Decimal
}

// B builds a Balance from a numeric value.
func B[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Balance {
	return Balance{value: newDecimal(value)}
}

func (b Balance) Add(c Balance) Balance { return Balance{value: b.value.Add(c.value)} }
func (b Balance) Equal(c Balance) bool  { return b.value.Equal(c.value) }
func (b Balance) IsNegative() bool      { return b.value.IsNegative() }
func (b Balance) IsZero() bool          { return b.value.IsZero() }

// String renders the raw signed value rounded to 2 decimal places.
func (b Balance) String() string { return b.value.StringFixed(2) }

// Display renders the balance with the ledger's historical sign
// convention: a non-negative balance shows as "-<magnitude>" and a
// negative one as "+<magnitude>". The inversion reads as "minus means
// settled or in credit, plus means still to collect" and is kept for
// parity with every report this system ever printed. It is a quirk, not
// a bug to fix.
func (b Balance) Display() string {
	if b.value.IsNegative() {
		return "+" + b.value.Abs().StringFixed(2)
	}
	return "-" + b.value.StringFixed(2)
}
