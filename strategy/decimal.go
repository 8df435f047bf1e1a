package strategy

import (
	"fmt"
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"columngen/dtype"
	"columngen/utils"
)

const (
	// MaxDecimalPrecision is the widest precision a Decimal dtype may declare.
	MaxDecimalPrecision = 38

	// decimalContextDigits is the number of significant digits kept when the
	// bounds are computed; beyond it 10^k - 10^-s rounds onto 10^k.
	decimalContextDigits = 28
	// decimalShrinkDigits: a collapsed limit is multiplied by 1 - 10^-decimalShrinkDigits.
	decimalShrinkDigits = 20
)

// DecimalLimit returns the largest magnitude a Decimal(precision, scale)
// generator draws: 10^(precision-scale) - 10^-scale, pulled strictly below
// 10^(precision-scale) when context rounding collapses the two.
func DecimalLimit(precision, scale int) decimal.Decimal {
	exclusive := decimal.New(1, int32(precision-scale))
	epsilon := decimal.New(1, int32(-scale))

	limit := contextRound(exclusive.Sub(epsilon))
	if limit.Equal(exclusive) {
		multiplier := decimal.New(1, 0).Sub(decimal.New(1, -decimalShrinkDigits))
		limit = contextRound(limit.Mul(multiplier))
	}

	return limit
}

// contextRound rounds half-to-even to decimalContextDigits significant digits.
func contextRound(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return d
	}

	adjusted := d.NumDigits() - 1 + int(d.Exponent())

	return d.RoundBank(int32(decimalContextDigits - 1 - adjusted))
}

func validateDecimal(precision, scale int) error {
	if !utils.IsInRange(1, precision, MaxDecimalPrecision) {
		return configErr("decimal", fmt.Sprintf("precision must be in [1, %d], got %d", MaxDecimalPrecision, precision))
	}

	if !utils.IsInRange(0, scale, precision) {
		return configErr("decimal", fmt.Sprintf("scale must be in [0, %d], got %d", precision, scale))
	}

	return nil
}

// newDecimalGenerator draws decimals in [-limit, limit] with exactly scale
// fractional digits.
func newDecimalGenerator(precision, scale int) (*Generator, error) {
	if err := validateDecimal(precision, scale); err != nil {
		return nil, err
	}

	bound := DecimalLimit(precision, scale).Shift(int32(scale)).BigInt()
	modulus := new(big.Int).Add(bound, big.NewInt(1))
	ten := big.NewInt(10)

	digitCount := rapid.IntRange(0, precision)
	digit := rapid.Int64Range(0, 9)
	negative := rapid.Bool()

	gen := rapid.Custom(func(t *rapid.T) decimal.Decimal {
		coef := new(big.Int)
		for range digitCount.Draw(t, "digits") {
			coef.Mul(coef, ten)
			coef.Add(coef, big.NewInt(digit.Draw(t, "digit")))
		}

		if coef.Cmp(bound) > 0 {
			coef.Mod(coef, modulus)
		}

		if negative.Draw(t, "negative") {
			coef.Neg(coef)
		}

		return decimal.NewFromBigInt(coef, int32(-scale))
	})

	return FromRapid(dtype.Decimal(precision, scale), gen), nil
}

// Decimal128 converts a drawn decimal to Arrow's 128-bit representation at
// the given scale.
func Decimal128(d decimal.Decimal, scale int) (decimal128.Num, error) {
	coef := d.Shift(int32(scale)).BigInt()
	if coef.BitLen() > 127 {
		return decimal128.Num{}, fmt.Errorf("decimal %s does not fit in 128 bits at scale %d", d, scale)
	}

	return decimal128.FromBigInt(coef), nil
}
