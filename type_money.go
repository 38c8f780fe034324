package perfsynth

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a value is displayed without an explicit currency.
const DefaultCurrency = "USD"

// Money is an amount in a currency, used to display portfolio values.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money value in currency cur.
func M[T float64 | int64 | decimal.Decimal](value T, cur string) Money {
	switch v := any(value).(type) {
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: cur}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: cur}
	case decimal.Decimal:
		return Money{value: v, cur: cur}
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses an amount such as "100000" or "2500.50".
func ParseMoney(amount, cur string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	cur = strings.ToUpper(cur)
	if money.GetCurrency(cur) == nil {
		return Money{}, fmt.Errorf("unknown currency %q: %w", cur, ErrInvalidParameter)
	}
	return Money{value: v, cur: cur}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted according to its currency.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Float64() float64         { return m.value.InexactFloat64() }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places), cur: m.cur} }
