package dtype

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies a dtype family.
type Kind int

const (
	KindUnknown Kind = iota // zero value, never a valid family

	KindBoolean
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindFloat32
	KindFloat64
	KindString
	KindBinary
	KindCategorical
	KindTime
	KindDate
	KindDatetime
	KindDuration
	KindDecimal
	KindList
	KindArray

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindUnknown:     "Unknown",
	KindBoolean:     "Boolean",
	KindInt8:        "Int8",
	KindInt16:       "Int16",
	KindInt32:       "Int32",
	KindInt64:       "Int64",
	KindUInt8:       "UInt8",
	KindUInt16:      "UInt16",
	KindUInt32:      "UInt32",
	KindUInt64:      "UInt64",
	KindFloat32:     "Float32",
	KindFloat64:     "Float64",
	KindString:      "String",
	KindBinary:      "Binary",
	KindCategorical: "Categorical",
	KindTime:        "Time",
	KindDate:        "Date",
	KindDatetime:    "Datetime",
	KindDuration:    "Duration",
	KindDecimal:     "Decimal",
	KindList:        "List",
	KindArray:       "Array",
}

// Name returns the dtype name used in canonical strings, e.g. "UInt8".
func (k Kind) Name() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat() || k == KindDecimal
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUInt8, KindUInt16, KindUInt32, KindUInt64:
		return true
	}
}

// IsTemporal reports whether values of the kind are times, dates or durations.
func (k Kind) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindTime, KindDate, KindDatetime, KindDuration:
		return true
	}
}

// IsNested reports whether the kind wraps an inner dtype.
func (k Kind) IsNested() bool {
	return k == KindList || k == KindArray
}

// Bits returns the storage width of integer and float kinds.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt8, KindUInt8:
		return 8
	case KindInt16, KindUInt16:
		return 16
	case KindInt32, KindUInt32, KindFloat32:
		return 32
	case KindInt64, KindUInt64, KindFloat64:
		return 64
	}
}

// KindFromName is the inverse of Kind.Name. It returns KindUnknown for
// unrecognized names.
func KindFromName(name string) Kind {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if kindNames[k] == name {
			return k
		}
	}

	return KindUnknown
}
