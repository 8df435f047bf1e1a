// Package columnar materializes drawn values into Apache Arrow arrays.
package columnar

import (
	"errors"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"columngen/dtype"
	"columngen/strategy"
)

// ErrValueType is returned when a value does not have the Go type its dtype
// draws as.
var ErrValueType = errors.New("value does not match dtype")

// Build appends values, in order, to a builder for dt's Arrow type and
// returns the resulting array. A nil value becomes a null slot.
// The caller owns the returned array and must Release it.
func Build(mem memory.Allocator, dt dtype.DataType, values []any) (arrow.Array, error) {
	arrowType, err := dt.ArrowType()
	if err != nil {
		return nil, err
	}

	b := array.NewBuilder(mem, arrowType)
	defer b.Release()

	b.Reserve(len(values))
	for row, v := range values {
		if err := appendValue(b, dt, v); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", dt, row, err)
		}
	}

	return b.NewArray(), nil
}

// Draw draws n values from g and builds them into an array of g's dtype.
func Draw(t *rapid.T, g *strategy.Generator, n int, mem memory.Allocator) (arrow.Array, error) {
	values := make([]any, n)
	for i := range values {
		values[i] = g.Draw(t, fmt.Sprintf("row %d", i))
	}

	return Build(mem, g.DataType(), values)
}

func mismatch(dt dtype.DataType, v any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrValueType, dt, v)
}

func appendAs[V any](b interface{ Append(V) }, dt dtype.DataType, v any) error {
	x, ok := v.(V)
	if !ok {
		return mismatch(dt, v)
	}

	b.Append(x)

	return nil
}

func appendValue(b array.Builder, dt dtype.DataType, v any) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch b := b.(type) {
	case *array.BooleanBuilder:
		return appendAs[bool](b, dt, v)
	case *array.Int8Builder:
		return appendAs[int8](b, dt, v)
	case *array.Int16Builder:
		return appendAs[int16](b, dt, v)
	case *array.Int32Builder:
		return appendAs[int32](b, dt, v)
	case *array.Int64Builder:
		return appendAs[int64](b, dt, v)
	case *array.Uint8Builder:
		return appendAs[uint8](b, dt, v)
	case *array.Uint16Builder:
		return appendAs[uint16](b, dt, v)
	case *array.Uint32Builder:
		return appendAs[uint32](b, dt, v)
	case *array.Uint64Builder:
		return appendAs[uint64](b, dt, v)
	case *array.Float32Builder:
		return appendAs[float32](b, dt, v)
	case *array.Float64Builder:
		return appendAs[float64](b, dt, v)
	case *array.StringBuilder:
		return appendAs[string](b, dt, v)
	case *array.BinaryBuilder:
		return appendAs[[]byte](b, dt, v)
	case *array.BinaryDictionaryBuilder:
		s, ok := v.(string)
		if !ok {
			return mismatch(dt, v)
		}

		return b.AppendString(s)
	case *array.Time64Builder:
		d, ok := v.(time.Duration)
		if !ok {
			return mismatch(dt, v)
		}

		b.Append(arrow.Time64(d.Nanoseconds()))
	case *array.Date32Builder:
		t, ok := v.(time.Time)
		if !ok {
			return mismatch(dt, v)
		}

		b.Append(arrow.Date32FromTime(t))
	case *array.TimestampBuilder:
		t, ok := v.(time.Time)
		if !ok {
			return mismatch(dt, v)
		}

		b.Append(timestamp(t, dt.Unit()))
	case *array.DurationBuilder:
		d, ok := v.(time.Duration)
		if !ok {
			return mismatch(dt, v)
		}

		b.Append(arrow.Duration(d / dt.Unit().Arrow().Multiplier()))
	case *array.Decimal128Builder:
		d, ok := v.(decimal.Decimal)
		if !ok {
			return mismatch(dt, v)
		}

		scale, _ := dt.Scale()
		num, err := strategy.Decimal128(d, scale)
		if err != nil {
			return err
		}

		b.Append(num)
	case *array.ListBuilder:
		return appendSequence(b, b.ValueBuilder(), dt, v, -1)
	case *array.FixedSizeListBuilder:
		return appendSequence(b, b.ValueBuilder(), dt, v, dt.Width())
	default:
		return fmt.Errorf("%w: no builder for %s", dtype.ErrNoArrowType, dt)
	}

	return nil
}

// timestamp counts units since the epoch. Nanoseconds overflow outside
// [strategy.DatetimeNsMin, strategy.DatetimeNsMax].
func timestamp(t time.Time, unit dtype.TimeUnit) arrow.Timestamp {
	switch unit {
	case dtype.Nanoseconds:
		return arrow.Timestamp(t.UnixNano())
	case dtype.Milliseconds:
		return arrow.Timestamp(t.UnixMilli())
	default:
		return arrow.Timestamp(t.UnixMicro())
	}
}

// appendSequence appends one list slot; width < 0 accepts any length.
func appendSequence(b interface{ Append(bool) }, values array.Builder, dt dtype.DataType, v any, width int) error {
	seq, ok := v.([]any)
	if !ok {
		return mismatch(dt, v)
	}

	if width >= 0 && len(seq) != width {
		return fmt.Errorf("%w: %s needs %d elements, got %d", ErrValueType, dt, width, len(seq))
	}

	inner, _ := dt.Inner()

	b.Append(true)
	for i, elem := range seq {
		if err := appendValue(values, inner, elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
