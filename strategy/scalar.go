package strategy

import (
	"time"
	"unicode"

	"pgregory.net/rapid"

	"columngen/dtype"
)

const (
	stringMaxRunes      = 8
	stringMaxCodepoint  = 1000
	categoricalMaxRunes = 2
	categoricalAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// durations span ±2^46 microseconds
	durationLimitMicros = int64(1) << 46

	microsPerDay = int64(24 * time.Hour / time.Microsecond)
)

// Windows of the canonical temporal generators. Nanosecond datetimes are
// restricted to what an int64 nanosecond counter can hold.
var (
	DatetimeNsMin = time.Date(1677, 9, 22, 0, 12, 43, 145225000, time.UTC)
	DatetimeNsMax = time.Date(2262, 4, 11, 23, 47, 16, 854775000, time.UTC)
	DatetimeMin   = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	DatetimeMax   = time.Date(9999, 12, 31, 23, 59, 59, 999000000, time.UTC)
	DateMin       = DatetimeMin
	DateMax       = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// ScalarLookup builds the canonical generator table for scalar dtypes. Each
// call builds a fresh table; within a table each generator is built once.
func ScalarLookup() *Lookup {
	l := NewLookup()
	bind := func(dt dtype.DataType, gen *rapid.Generator[any]) {
		l.Set(dt, Ready(NewGenerator(dt, gen)))
	}

	bind(dtype.Boolean, Erase(rapid.Bool()))
	bind(dtype.Float32, Erase(rapid.Float32()))
	bind(dtype.Float64, Erase(rapid.Float64()))
	bind(dtype.Int8, Erase(rapid.Int8()))
	bind(dtype.Int16, Erase(rapid.Int16()))
	bind(dtype.Int32, Erase(rapid.Int32()))
	bind(dtype.Int64, Erase(rapid.Int64()))
	bind(dtype.UInt8, Erase(rapid.Uint8()))
	bind(dtype.UInt16, Erase(rapid.Uint16()))
	bind(dtype.UInt32, Erase(rapid.Uint32()))
	bind(dtype.UInt64, Erase(rapid.Uint64()))
	bind(dtype.Time, timeGenerator())
	bind(dtype.Date, dateGenerator())

	for _, unit := range dtype.TimeUnits {
		bind(dtype.Datetime(unit), datetimeGenerator(unit))
	}
	bind(dtype.Datetime(dtype.UnitUnset), datetimeGenerator(dtype.Microseconds))

	durations := durationGenerator()
	for _, unit := range dtype.TimeUnits {
		bind(dtype.Duration(unit), durations)
	}
	bind(dtype.Duration(dtype.UnitUnset), durations)

	bind(dtype.Categorical, Erase(rapid.StringOfN(rapid.RuneFrom([]rune(categoricalAlphabet)), 0, categoricalMaxRunes, -1)))
	bind(dtype.String, Erase(rapid.StringOfN(rapid.RuneFrom(stringRunes()), 0, stringMaxRunes, -1)))
	bind(dtype.Binary, Erase(rapid.SliceOf(rapid.Byte())))

	return l
}

// stringRunes lists the codepoints up to stringMaxCodepoint outside the
// control (Cc) and surrogate (Cs) categories.
func stringRunes() []rune {
	runes := make([]rune, 0, stringMaxCodepoint+1)
	for r := rune(0); r <= stringMaxCodepoint; r++ {
		if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cs, r) {
			continue
		}
		runes = append(runes, r)
	}

	return runes
}

func datetimeGenerator(unit dtype.TimeUnit) *rapid.Generator[any] {
	switch unit {
	case dtype.Nanoseconds:
		return rapid.Map(rapid.Int64Range(DatetimeNsMin.UnixNano(), DatetimeNsMax.UnixNano()),
			func(n int64) any { return time.Unix(0, n).UTC() })
	case dtype.Milliseconds:
		return rapid.Map(rapid.Int64Range(DatetimeMin.UnixMilli(), DatetimeMax.UnixMilli()),
			func(n int64) any { return time.UnixMilli(n).UTC() })
	default:
		return rapid.Map(rapid.Int64Range(DatetimeMin.UnixMicro(), DatetimeMax.UnixMicro()),
			func(n int64) any { return time.UnixMicro(n).UTC() })
	}
}

// timeGenerator draws a time of day as the offset since midnight.
func timeGenerator() *rapid.Generator[any] {
	return rapid.Map(rapid.Int64Range(0, microsPerDay-1),
		func(n int64) any { return time.Duration(n) * time.Microsecond })
}

func dateGenerator() *rapid.Generator[any] {
	days := (DateMax.Unix() - DateMin.Unix()) / 86400

	return rapid.Map(rapid.Int64Range(0, days),
		func(n int64) any { return DateMin.AddDate(0, 0, int(n)) })
}

func durationGenerator() *rapid.Generator[any] {
	return rapid.Map(rapid.Int64Range(-durationLimitMicros, durationLimitMicros-1),
		func(n int64) any { return time.Duration(n) * time.Microsecond })
}
