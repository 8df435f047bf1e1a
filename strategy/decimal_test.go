package strategy_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"columngen/strategy"
)

func TestDecimalLimit(t *testing.T) {
	t.Parallel()

	t.Run("exact", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "99999999.99", strategy.DecimalLimit(10, 2).String())
		assert.Equal(t, "0.999", strategy.DecimalLimit(3, 3).String())
		assert.Equal(t, "9", strategy.DecimalLimit(1, 0).String())
	})

	t.Run("collapsed by context rounding", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct{ p, s int }{{38, 0}, {38, 10}, {30, 0}, {29, 1}} {
			limit := strategy.DecimalLimit(tc.p, tc.s)
			exclusive := decimal.New(1, int32(tc.p-tc.s))
			assert.True(t, limit.LessThan(exclusive), "Decimal(%d, %d) limit %s", tc.p, tc.s, limit)
			assert.True(t, limit.GreaterThan(exclusive.Div(decimal.New(2, 0))), "Decimal(%d, %d) limit %s", tc.p, tc.s, limit)
		}
	})
}

func TestDecimalDraws(t *testing.T) {
	t.Parallel()

	factory := strategy.NewNested(strategy.ScalarLookup(), strategy.WithSeed(1))

	rapid.Check(t, func(t *rapid.T) {
		p := rapid.IntRange(1, strategy.MaxDecimalPrecision).Draw(t, "precision")
		s := rapid.IntRange(0, p).Draw(t, "scale")

		g, err := factory.Decimal(strategy.Precision(p), strategy.Scale(s))
		if err != nil {
			t.Fatalf("Decimal(%d, %d): %v", p, s, err)
		}

		d := g.Draw(t, "value").(decimal.Decimal)
		if d.Exponent() != int32(-s) {
			t.Fatalf("%s has exponent %d, want %d", d, d.Exponent(), -s)
		}

		if d.Abs().GreaterThan(strategy.DecimalLimit(p, s)) {
			t.Fatalf("%s exceeds the Decimal(%d, %d) limit", d, p, s)
		}

		if !d.Abs().LessThan(decimal.New(1, int32(p-s))) {
			t.Fatalf("%s does not fit Decimal(%d, %d)", d, p, s)
		}
	})
}

func TestDecimalParameters(t *testing.T) {
	t.Parallel()

	factory := strategy.NewNested(strategy.ScalarLookup(), strategy.WithSeed(42))

	t.Run("given", func(t *testing.T) {
		t.Parallel()

		g, err := factory.Decimal(strategy.Precision(10), strategy.Scale(2))
		require.NoError(t, err)
		assert.Equal(t, "Decimal(10, 2)", g.DataType().String())
	})

	t.Run("drawn", func(t *testing.T) {
		for range 50 {
			g, err := factory.Decimal()
			require.NoError(t, err)

			p, ok := g.DataType().Precision()
			require.True(t, ok)
			s, ok := g.DataType().Scale()
			require.True(t, ok)

			assert.True(t, 1 <= p && p <= strategy.MaxDecimalPrecision, "precision %d", p)
			assert.True(t, 0 <= s && s <= p, "scale %d of precision %d", s, p)
		}
	})

	t.Run("drawn precision covers scale", func(t *testing.T) {
		for range 50 {
			g, err := factory.Decimal(strategy.Scale(30))
			require.NoError(t, err)

			p, _ := g.DataType().Precision()
			assert.GreaterOrEqual(t, p, 30)
		}
	})
}

func TestDecimalConfigurationErrors(t *testing.T) {
	t.Parallel()

	factory := strategy.NewNested(strategy.ScalarLookup(), strategy.WithSeed(1))

	for name, params := range map[string][]strategy.Param{
		"zero precision":     {strategy.Precision(0), strategy.Scale(0)},
		"precision above 38": {strategy.Precision(39)},
		"scale above prec":   {strategy.Precision(3), strategy.Scale(5)},
		"negative scale":     {strategy.Precision(3), strategy.Scale(-1)},
		"list parameter":     {strategy.Size(2)},
		"uniqueness":         {strategy.Unique()},
	} {
		_, err := factory.Decimal(params...)
		require.ErrorIs(t, err, strategy.ErrConfiguration, name)
	}
}

func TestDecimal128(t *testing.T) {
	t.Parallel()

	num, err := strategy.Decimal128(decimal.RequireFromString("-123.45"), 2)
	require.NoError(t, err)
	assert.Equal(t, decimal128.FromI64(-12345), num)

	num, err = strategy.Decimal128(decimal.RequireFromString("1.5"), 3)
	require.NoError(t, err)
	assert.Equal(t, decimal128.FromI64(1500), num)

	_, err = strategy.Decimal128(decimal.New(1, 40), 0)
	require.Error(t, err)
}
