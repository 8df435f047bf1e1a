package dtype

import (
	"strconv"
	"strings"
)

// DataType identifies a column type: a scalar kind, or a composite kind
// carrying parameters (inner dtype, width, precision/scale, time unit).
//
// A DataType whose parameters are all unset is a family (see BaseType).
// DataType values are immutable; compare them with Equal.
type DataType struct {
	kind      Kind
	unit      TimeUnit
	inner     *DataType
	width     int
	precision int
	scale     int
	hasScale  bool
}

// Scalar dtypes.
var (
	Boolean     = Of(KindBoolean)
	Int8        = Of(KindInt8)
	Int16       = Of(KindInt16)
	Int32       = Of(KindInt32)
	Int64       = Of(KindInt64)
	UInt8       = Of(KindUInt8)
	UInt16      = Of(KindUInt16)
	UInt32      = Of(KindUInt32)
	UInt64      = Of(KindUInt64)
	Float32     = Of(KindFloat32)
	Float64     = Of(KindFloat64)
	String      = Of(KindString)
	Binary      = Of(KindBinary)
	Categorical = Of(KindCategorical)
	Time        = Of(KindTime)
	Date        = Of(KindDate)
)

// Of returns the unparametrized dtype of the given kind.
func Of(kind Kind) DataType {
	return DataType{kind: kind}
}

// Datetime returns a Datetime dtype at the given resolution. UnitUnset
// yields the Datetime family.
func Datetime(unit TimeUnit) DataType {
	return DataType{kind: KindDatetime, unit: unit}
}

// Duration returns a Duration dtype at the given resolution.
func Duration(unit TimeUnit) DataType {
	return DataType{kind: KindDuration, unit: unit}
}

// List returns List(inner). A zero inner yields the List family.
func List(inner DataType) DataType {
	return DataType{kind: KindList, inner: innerPtr(inner)}
}

// Array returns Array(inner, width). A zero inner or a zero width leave the
// respective parameter unset.
func Array(inner DataType, width int) DataType {
	return DataType{kind: KindArray, inner: innerPtr(inner), width: width}
}

// Decimal returns the fully parametrized Decimal(precision, scale).
func Decimal(precision, scale int) DataType {
	return DataType{kind: KindDecimal, precision: precision, scale: scale, hasScale: true}
}

func innerPtr(inner DataType) *DataType {
	if inner.IsZero() {
		return nil
	}

	return &inner
}

// WithPrecision returns a copy of a Decimal dtype with the precision set.
func (d DataType) WithPrecision(precision int) DataType {
	d.precision = precision
	return d
}

// WithScale returns a copy of a Decimal dtype with the scale set.
func (d DataType) WithScale(scale int) DataType {
	d.scale = scale
	d.hasScale = true

	return d
}

// Kind returns the family kind.
func (d DataType) Kind() Kind { return d.kind }

// IsZero reports whether d is the zero DataType (no kind at all).
func (d DataType) IsZero() bool { return d.kind == KindUnknown }

// Unit returns the time unit of Datetime and Duration dtypes.
func (d DataType) Unit() TimeUnit { return d.unit }

// Width returns the fixed width of an Array dtype, or 0 when unset.
func (d DataType) Width() int { return d.width }

// Inner returns the element dtype of List and Array dtypes.
func (d DataType) Inner() (DataType, bool) {
	if d.inner == nil {
		return DataType{}, false
	}

	return *d.inner, true
}

// Precision returns the Decimal precision, if set.
func (d DataType) Precision() (int, bool) {
	return d.precision, d.precision != 0
}

// Scale returns the Decimal scale, if set.
func (d DataType) Scale() (int, bool) {
	return d.scale, d.hasScale
}

// IsNested reports whether d is a List or an Array.
func (d DataType) IsNested() bool { return d.kind.IsNested() }

// BaseType strips every parameter, leaving the family.
func (d DataType) BaseType() DataType {
	return Of(d.kind)
}

// IsFamily reports whether d carries no parameters.
func (d DataType) IsFamily() bool {
	return d.Equal(d.BaseType())
}

// Equal reports structural equality.
func (d DataType) Equal(other DataType) bool {
	if d.kind != other.kind || d.unit != other.unit || d.width != other.width ||
		d.precision != other.precision || d.hasScale != other.hasScale || d.scale != other.scale {
		return false
	}

	if d.inner == nil || other.inner == nil {
		return d.inner == nil && other.inner == nil
	}

	return d.inner.Equal(*other.inner)
}

// Innermost unwraps nested dtypes down to the first non-nested one. The
// result is zero when some level leaves its inner dtype unset.
func (d DataType) Innermost() DataType {
	for d.IsNested() {
		inner, ok := d.Inner()
		if !ok {
			return DataType{}
		}

		d = inner
	}

	return d
}

// String returns the canonical text form accepted by Parse.
func (d DataType) String() string {
	var b strings.Builder
	d.write(&b)

	return b.String()
}

func (d DataType) write(b *strings.Builder) {
	b.WriteString(d.kind.Name())

	switch d.kind {
	case KindDatetime, KindDuration:
		if d.unit != UnitUnset {
			b.WriteString("(" + d.unit.String() + ")")
		}
	case KindList:
		if d.inner != nil {
			b.WriteByte('(')
			d.inner.write(b)
			b.WriteByte(')')
		}
	case KindArray:
		if d.inner == nil && d.width == 0 {
			return
		}

		b.WriteByte('(')
		if d.inner != nil {
			d.inner.write(b)
		} else {
			b.WriteByte('*')
		}

		if d.width != 0 {
			b.WriteString(", " + strconv.Itoa(d.width))
		}
		b.WriteByte(')')
	case KindDecimal:
		if d.precision == 0 && !d.hasScale {
			return
		}

		b.WriteByte('(')
		if d.precision != 0 {
			b.WriteString(strconv.Itoa(d.precision))
		} else {
			b.WriteByte('*')
		}

		if d.hasScale {
			b.WriteString(", " + strconv.Itoa(d.scale))
		}
		b.WriteByte(')')
	}
}
