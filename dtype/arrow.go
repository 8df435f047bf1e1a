package dtype

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// ErrNoArrowType is returned when a dtype is not concrete enough to have an
// Arrow equivalent (e.g. the List family, or a Decimal without precision).
var ErrNoArrowType = errors.New("no arrow equivalent")

// Arrow returns the Arrow time unit for u. The unset unit maps to
// microseconds, matching the Datetime family's canonical generator.
func (u TimeUnit) Arrow() arrow.TimeUnit {
	switch u {
	case Nanoseconds:
		return arrow.Nanosecond
	case Milliseconds:
		return arrow.Millisecond
	default:
		return arrow.Microsecond
	}
}

// ArrowType returns the Arrow data type that holds values of d.
//
// Categorical maps to a uint32-indexed string dictionary, Time to
// time64[ns] and Date to date32.
func (d DataType) ArrowType() (arrow.DataType, error) {
	switch d.kind {
	case KindBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case KindInt8:
		return arrow.PrimitiveTypes.Int8, nil
	case KindInt16:
		return arrow.PrimitiveTypes.Int16, nil
	case KindInt32:
		return arrow.PrimitiveTypes.Int32, nil
	case KindInt64:
		return arrow.PrimitiveTypes.Int64, nil
	case KindUInt8:
		return arrow.PrimitiveTypes.Uint8, nil
	case KindUInt16:
		return arrow.PrimitiveTypes.Uint16, nil
	case KindUInt32:
		return arrow.PrimitiveTypes.Uint32, nil
	case KindUInt64:
		return arrow.PrimitiveTypes.Uint64, nil
	case KindFloat32:
		return arrow.PrimitiveTypes.Float32, nil
	case KindFloat64:
		return arrow.PrimitiveTypes.Float64, nil
	case KindString:
		return arrow.BinaryTypes.String, nil
	case KindBinary:
		return arrow.BinaryTypes.Binary, nil
	case KindCategorical:
		return &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Uint32, ValueType: arrow.BinaryTypes.String}, nil
	case KindTime:
		return arrow.FixedWidthTypes.Time64ns, nil
	case KindDate:
		return arrow.FixedWidthTypes.Date32, nil
	case KindDatetime:
		return &arrow.TimestampType{Unit: d.unit.Arrow()}, nil
	case KindDuration:
		return &arrow.DurationType{Unit: d.unit.Arrow()}, nil
	case KindDecimal:
		scale, ok := d.Scale()
		if d.precision == 0 || !ok {
			return nil, fmt.Errorf("%w: %s needs precision and scale", ErrNoArrowType, d)
		}

		return &arrow.Decimal128Type{Precision: int32(d.precision), Scale: int32(scale)}, nil
	case KindList, KindArray:
		inner, ok := d.Inner()
		if !ok {
			return nil, fmt.Errorf("%w: %s has no inner dtype", ErrNoArrowType, d)
		}

		innerType, err := inner.ArrowType()
		if err != nil {
			return nil, err
		}

		if d.kind == KindList {
			return arrow.ListOf(innerType), nil
		}

		if d.width == 0 {
			return nil, fmt.Errorf("%w: %s has no width", ErrNoArrowType, d)
		}

		return arrow.FixedSizeListOf(int32(d.width), innerType), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoArrowType, d)
	}
}
