package profile

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"columngen/dtype"
	"columngen/utils"
)

var errCoerce = errors.New("cannot coerce")

// coerceAll converts YAML scalars to the Go values dt draws as.
func coerceAll(dt dtype.DataType, values []any) ([]any, error) {
	if len(values) == 0 {
		return nil, nil
	}

	out := make([]any, len(values))
	for i, v := range values {
		c, err := coerce(dt, v)
		if err != nil {
			return nil, fmt.Errorf("select_from[%d]: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

func coerce(dt dtype.DataType, v any) (any, error) {
	fail := func() (any, error) {
		return nil, fmt.Errorf("%w %v (%T) to %s", errCoerce, v, v, dt)
	}

	kind := dt.Kind()
	switch {
	case kind == dtype.KindBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case kind.IsInteger():
		if u, ok := v.(uint64); ok && kind == dtype.KindUInt64 {
			return u, nil
		}

		n, ok := integral(v)
		if !ok {
			return fail()
		}

		return fitInteger(kind, n)
	case kind.IsFloat():
		f, ok := float(v)
		if !ok {
			return fail()
		}

		if kind == dtype.KindFloat32 {
			return float32(f), nil
		}

		return f, nil
	case kind == dtype.KindString, kind == dtype.KindCategorical:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case kind == dtype.KindBinary:
		if s, ok := v.(string); ok {
			return []byte(s), nil
		}
	case kind == dtype.KindDecimal:
		return coerceDecimal(dt, v)
	case kind == dtype.KindDate:
		t, ok := instant(v, time.DateOnly)
		if !ok {
			return fail()
		}

		y, m, d := t.Date()

		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case kind == dtype.KindDatetime:
		t, ok := instant(v, time.RFC3339Nano)
		if !ok {
			return fail()
		}

		return t.UTC().Truncate(dt.Unit().Arrow().Multiplier()), nil
	case kind == dtype.KindTime:
		t, ok := instant(v, "15:04:05.999999")
		if !ok {
			return fail()
		}

		h, m, s := t.Clock()
		clock := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second

		return clock + time.Duration(t.Nanosecond()).Truncate(time.Microsecond), nil
	case kind == dtype.KindDuration:
		if s, ok := v.(string); ok {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("%w %q to %s: %w", errCoerce, s, dt, err)
			}

			return d.Truncate(dt.Unit().Arrow().Multiplier()), nil
		}
	}

	return fail()
}

func integral(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	default:
		return 0, false
	}
}

func float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

func fitInteger(kind dtype.Kind, n int64) (any, error) {
	bits := kind.Bits()
	if kind.IsUnsigned() {
		if n < 0 || (bits < 64 && !utils.IsInRange(0, uint64(n), uint64(1)<<bits-1)) {
			return nil, fmt.Errorf("%w %d to %s: out of range", errCoerce, n, kind.Name())
		}
	} else if bits < 64 && !utils.IsInRange(-int64(1)<<(bits-1), n, int64(1)<<(bits-1)-1) {
		return nil, fmt.Errorf("%w %d to %s: out of range", errCoerce, n, kind.Name())
	}

	switch kind {
	case dtype.KindInt8:
		return int8(n), nil
	case dtype.KindInt16:
		return int16(n), nil
	case dtype.KindInt32:
		return int32(n), nil
	case dtype.KindInt64:
		return n, nil
	case dtype.KindUInt8:
		return uint8(n), nil
	case dtype.KindUInt16:
		return uint16(n), nil
	case dtype.KindUInt32:
		return uint32(n), nil
	default:
		return uint64(n), nil
	}
}

// coerceDecimal parses v and rescales it to the dtype's scale, so that
// selected values compare equal to drawn ones.
func coerceDecimal(dt dtype.DataType, v any) (any, error) {
	precision, hasPrecision := dt.Precision()
	scale, hasScale := dt.Scale()
	if !hasPrecision || !hasScale {
		return nil, fmt.Errorf("%w %v to %s: precision and scale are required", errCoerce, v, dt)
	}

	d, err := decimal.NewFromString(fmt.Sprint(v))
	if err != nil {
		return nil, fmt.Errorf("%w %v to %s: %w", errCoerce, v, dt, err)
	}

	if !d.Equal(d.Truncate(int32(scale))) {
		return nil, fmt.Errorf("%w %s to %s: too many fractional digits", errCoerce, d, dt)
	}

	if !d.Abs().LessThan(decimal.New(1, int32(precision-scale))) {
		return nil, fmt.Errorf("%w %s to %s: out of range", errCoerce, d, dt)
	}

	return decimal.NewFromBigInt(d.Shift(int32(scale)).BigInt(), int32(-scale)), nil
}

// instant accepts a time.Time as decoded by YAML, or a string in layout.
func instant(v any, layout string) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		t, err := time.Parse(layout, x)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}
