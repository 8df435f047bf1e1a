package profile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"columngen/dtype"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	ok := []struct {
		dtype string
		in    any
		want  any
	}{
		{"Boolean", true, true},
		{"Int8", -128, int8(-128)},
		{"UInt16", 65535, uint16(65535)},
		{"UInt64", uint64(1) << 63, uint64(1) << 63},
		{"Int64", 3.0, int64(3)},
		{"Float32", 2, float32(2)},
		{"Float64", 0.5, 0.5},
		{"Categorical", "AB", "AB"},
		{"Binary", "hi", []byte("hi")},
		{"Date", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"Datetime(ms)", "2024-01-02T03:04:05.678912Z", time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC)},
		{"Datetime", time.Date(2024, 1, 2, 3, 4, 5, 678912345, time.UTC), time.Date(2024, 1, 2, 3, 4, 5, 678912000, time.UTC)},
		{"Time", "13:30:00.5", 13*time.Hour + 30*time.Minute + 500*time.Millisecond},
		{"Duration(us)", "1.5s", 1500 * time.Millisecond},
	}

	for _, tc := range ok {
		got, err := coerce(dtype.MustParse(tc.dtype), tc.in)
		require.NoError(t, err, tc.dtype)
		assert.Equal(t, tc.want, got, tc.dtype)
	}

	bad := []struct {
		dtype string
		in    any
	}{
		{"Int8", 128},
		{"UInt8", -1},
		{"UInt64", -5},
		{"Int32", 1.5},
		{"Boolean", "yes"},
		{"Date", "29/02/2024"},
		{"Duration", "soon"},
		{"Decimal(4, 1)", "1.25"},
		{"Decimal(4, 1)", "1000"},
		{"Decimal", "1"},
		{"List(Int8)", 1},
	}

	for _, tc := range bad {
		_, err := coerce(dtype.MustParse(tc.dtype), tc.in)
		require.ErrorIs(t, err, errCoerce, "%s from %v", tc.dtype, tc.in)
	}
}

func TestCoerceDecimalRescales(t *testing.T) {
	t.Parallel()

	got, err := coerce(dtype.Decimal(6, 3), "1.5")
	require.NoError(t, err)

	d := got.(decimal.Decimal)
	assert.Equal(t, int32(-3), d.Exponent())
	assert.Equal(t, "1.5", d.String())

	got, err = coerce(dtype.Decimal(6, 3), 2)
	require.NoError(t, err)
	assert.Equal(t, "2.000", got.(decimal.Decimal).StringFixed(3))
}
