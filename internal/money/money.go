// Package money converts between decimal currency amounts and integer minor units.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountTooLarge = errors.New("amount does not fit in int64 cents")
)

var hundred = decimal.NewFromInt(100)

// DollarsToCents parses a decimal amount such as "99.99" and returns it in cents,
// rounding half away from zero past the second decimal place.
func DollarsToCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	cents := d.Mul(hundred).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}

// CentsToDollars formats cents as a two-decimal amount, e.g. 9999 -> "99.99".
func CentsToDollars(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
