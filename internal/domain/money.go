package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units (cents).
type Money int64

const moneyScale = 2

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// ParseMoney parses a decimal amount such as "20" or "19.99".
// Amounts with more than two fractional digits are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal converts a decimal to minor units, rejecting sub-cent
// precision and amounts that do not fit in int64 cents.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Round(moneyScale)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", d.String(), moneyScale)
	}
	minor := d.Shift(moneyScale)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return 0, fmt.Errorf("amount %s is out of range", d.String())
	}
	return Money(minor.IntPart()), nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -moneyScale)
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.Decimal().StringFixed(moneyScale)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// MarshalJSON encodes the amount as a JSON number in major units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	v, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
