package strategy

import (
	"slices"
	"strings"

	"pgregory.net/rapid"

	"columngen/dtype"
)

// Interval closures accepted by window and range operations.
const (
	ClosedLeft  = "left"
	ClosedRight = "right"
	ClosedBoth  = "both"
	ClosedNone  = "none"
)

var formatTokens = []string{
	"%m", "%b", "%B", "%d", "%j", "%a", "%A", "%w",
	"%H", "%I", "%p", "%M", "%S", "%U", "%W", "%%",
}

// Closed draws an interval closure.
func Closed() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{ClosedLeft, ClosedRight, ClosedBoth, ClosedNone})
}

// TimeUnits draws a concrete time unit.
func TimeUnits() *rapid.Generator[dtype.TimeUnit] {
	return rapid.SampledFrom(slices.Clone(dtype.TimeUnits))
}

// DatetimeFormat draws a strftime-style format: a random subset of date and
// time directives, always including %Y, in random order, space separated.
func DatetimeFormat() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		chosen := []string{"%Y"}
		for _, token := range formatTokens {
			if rapid.Bool().Draw(t, token) {
				chosen = append(chosen, token)
			}
		}

		return strings.Join(rapid.Permutation(chosen).Draw(t, "order"), " ")
	})
}
