package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates invalid amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Decimal exponents outside of this range cannot be represented by a positive float64.
const (
	maxAmountExponent = 308
	minAmountExponent = -324
)

// ParseAmount converts a user supplied amount into a positive finite float.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	if d.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	// exponent of the most significant digit, checked before any rescaling
	exp := int64(d.Exponent()) + int64(len(d.Coefficient().String())) - 1
	if exp > maxAmountExponent || exp < minAmountExponent {
		return 0, ErrInvalidAmount
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) || f <= 0 {
		return 0, ErrInvalidAmount
	}

	return f, nil
}

// FormatAmount renders amount in its shortest decimal form.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}
