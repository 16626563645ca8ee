package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money pairs a decimal amount with its ISO 4217 currency code, the way
// the gateway transmits prices (element text plus a currency attribute).
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney builds a Money from a decimal amount. An empty currency
// defaults to USD, matching the gateway's cart defaults.
func NewMoney(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = "USD"
	}
	return Money{Amount: amount, Currency: currency}
}

// MoneyFromFloat is a convenience constructor for literal prices.
func MoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ParseMoney parses the textual amount the gateway sends, e.g. "190.98"
// with currency "USD".
func ParseMoney(text, currency string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", text, err)
	}
	return NewMoney(amount, currency), nil
}

// Cents returns the amount in hundredths, rounded to the nearest cent.
func (m Money) Cents() int64 {
	return m.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// String renders the wire format: two fixed decimal places.
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}
