package strategy_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"columngen/dtype"
	"columngen/strategy"
)

func TestStrategiesFor(t *testing.T) {
	t.Parallel()

	s := strategy.New(strategy.WithSeed(11))

	t.Run("scalar", func(t *testing.T) {
		g, err := s.For(dtype.Int8)
		require.NoError(t, err)

		want, err := s.Scalars().Get(dtype.Int8)
		require.NoError(t, err)
		assert.Same(t, want, g)
	})

	t.Run("list", func(t *testing.T) {
		g, err := s.For(dtype.MustParse("List(Int32)"))
		require.NoError(t, err)
		assert.Equal(t, "List(Int32)", g.DataType().String())
	})

	t.Run("array with width", func(t *testing.T) {
		g, err := s.For(dtype.Array(dtype.Int8, 3))
		require.NoError(t, err)
		assert.Equal(t, "Array(Int8, 3)", g.DataType().String())
		assert.Len(t, g.Example(0), 3)
	})

	t.Run("array without width", func(t *testing.T) {
		g, err := s.For(dtype.Array(dtype.Int8, 0))
		require.NoError(t, err)

		inner, ok := g.DataType().Inner()
		require.True(t, ok)
		assert.Equal(t, dtype.Int8, inner)
		assert.Positive(t, g.DataType().Width())
	})

	t.Run("datetime family", func(t *testing.T) {
		g, err := s.For(dtype.Datetime(dtype.UnitUnset))
		require.NoError(t, err)
		assert.Equal(t, "Datetime", g.DataType().String())
	})

	t.Run("decimal", func(t *testing.T) {
		g, err := s.For(dtype.Decimal(10, 2))
		require.NoError(t, err)
		assert.Equal(t, "Decimal(10, 2)", g.DataType().String())
		assert.IsType(t, decimal.Decimal{}, g.Example(0))

		g, err = s.For(dtype.Of(dtype.KindDecimal))
		require.NoError(t, err)
		_, ok := g.DataType().Precision()
		assert.True(t, ok)
	})

	t.Run("deeply nested", func(t *testing.T) {
		dt := dtype.MustParse("List(Array(List(Decimal(5, 1)), 2))")

		g, err := s.For(dt)
		require.NoError(t, err)
		assert.True(t, g.DataType().Equal(dt), "got %s", g.DataType())
	})
}

func TestStrategiesRegistrations(t *testing.T) {
	t.Parallel()

	s := strategy.New(strategy.WithSeed(2))
	assert.Equal(t, 26, s.All().Len())

	custom := strategy.FromRapid(dtype.List(dtype.Int8), rapid.Just([]any{int8(7)}))
	s.Scalars().Set(dtype.List(dtype.Int8), strategy.Ready(custom))

	g, err := s.For(dtype.List(dtype.Int8))
	require.NoError(t, err)
	assert.Same(t, custom, g)

	g, err = s.For(dtype.List(dtype.Int16))
	require.NoError(t, err)
	assert.NotSame(t, custom, g)

	s.Scalars().Delete(dtype.Binary)
	_, err = s.For(dtype.Binary)
	require.ErrorIs(t, err, strategy.ErrUnsupportedType)
}

func TestStrategiesLiveUniverse(t *testing.T) {
	t.Parallel()

	s := strategy.New(strategy.WithSeed(4), strategy.WithMaxDepth(0))
	for _, k := range s.Scalars().Keys() {
		if !k.Equal(dtype.UInt16) {
			s.Scalars().Delete(k)
		}
	}

	for range 10 {
		g, err := s.List()
		require.NoError(t, err)
		assert.Equal(t, "List(UInt16)", g.DataType().String())
	}
}

func TestStrategiesSeedDeterminism(t *testing.T) {
	t.Parallel()

	a := strategy.New(strategy.WithSeed(123))
	b := strategy.New(strategy.WithSeed(123))

	for range 10 {
		ga, err := a.Array()
		require.NoError(t, err)
		gb, err := b.Array()
		require.NoError(t, err)
		assert.True(t, ga.DataType().Equal(gb.DataType()))

		da, err := a.Decimal()
		require.NoError(t, err)
		db, err := b.Decimal()
		require.NoError(t, err)
		assert.Equal(t, da.DataType().String(), db.DataType().String())
		assert.True(t, da.Example(9).(decimal.Decimal).Equal(db.Example(9).(decimal.Decimal)))
	}
}

func TestStrategiesLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := strategy.New(strategy.WithSeed(8), strategy.WithLogger(logger))
	_, err := s.Array(strategy.Inner(dtype.Int8))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "seed=8")
	assert.Contains(t, buf.String(), "random array width")
}
