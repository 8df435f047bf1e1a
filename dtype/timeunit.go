package dtype

import "fmt"

// TimeUnit is the resolution of Datetime and Duration dtypes.
type TimeUnit int

const (
	UnitUnset TimeUnit = iota // family level, no resolution chosen
	Nanoseconds
	Microseconds
	Milliseconds
)

// TimeUnits lists every concrete unit, finest first.
var TimeUnits = []TimeUnit{Nanoseconds, Microseconds, Milliseconds}

// String returns the short unit name: "ns", "us" or "ms".
func (u TimeUnit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case UnitUnset:
		return ""
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// ParseTimeUnit parses "ns", "us" or "ms".
func ParseTimeUnit(s string) (TimeUnit, error) {
	for _, u := range TimeUnits {
		if u.String() == s {
			return u, nil
		}
	}

	return UnitUnset, fmt.Errorf("%w: unknown time unit %q", ErrSyntax, s)
}
