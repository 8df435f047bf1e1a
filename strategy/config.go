package strategy

import (
	"fmt"
	"strings"

	"columngen/dtype"
)

// Default length bounds for list generators.
const (
	DefaultMaxSize = 3 // max size when no min size is given
	maxSizeFactor  = 2 // otherwise max size = factor * min size

	minRandomWidth = 1
	maxRandomWidth = 8
)

// GenerationConfig holds the parameters of one generator construction.
// Nil pointers mean "not given".
type GenerationConfig struct {
	Inner      *dtype.DataType
	SelectFrom []any
	Size       *int
	MinSize    *int
	MaxSize    *int
	Width      *int // arrays only
	Unique     bool
	Precision  *int // decimals only
	Scale      *int // decimals only
}

// Param sets one field of a GenerationConfig.
type Param func(*GenerationConfig)

// NewGenerationConfig applies params in order.
func NewGenerationConfig(params ...Param) GenerationConfig {
	var cfg GenerationConfig
	for _, p := range params {
		p(&cfg)
	}

	return cfg
}

// Inner sets the element dtype. The zero DataType leaves it unset, in which
// case a random family is chosen.
func Inner(dt dtype.DataType) Param {
	return func(c *GenerationConfig) {
		if dt.IsZero() {
			c.Inner = nil
			return
		}
		c.Inner = &dt
	}
}

// SelectFrom restricts innermost values to a uniform choice over values.
func SelectFrom(values ...any) Param {
	return func(c *GenerationConfig) { c.SelectFrom = values }
}

// Size fixes the exact sequence length.
func Size(n int) Param {
	return func(c *GenerationConfig) { c.Size = &n }
}

// MinSize sets the minimum sequence length.
func MinSize(n int) Param {
	return func(c *GenerationConfig) { c.MinSize = &n }
}

// MaxSize sets the maximum sequence length.
func MaxSize(n int) Param {
	return func(c *GenerationConfig) { c.MaxSize = &n }
}

// Width fixes the width of an array.
func Width(n int) Param {
	return func(c *GenerationConfig) { c.Width = &n }
}

// Unique requires the elements of every drawn sequence to be structurally distinct.
func Unique() Param {
	return func(c *GenerationConfig) { c.Unique = true }
}

// Precision sets the total number of decimal digits.
func Precision(p int) Param {
	return func(c *GenerationConfig) { c.Precision = &p }
}

// Scale sets the number of fractional decimal digits.
func Scale(s int) Param {
	return func(c *GenerationConfig) { c.Scale = &s }
}

// sizeBounds resolves the inclusive length bounds: an exact size wins,
// otherwise max size defaults to DefaultMaxSize, or twice the min size when
// one is given.
func (c GenerationConfig) sizeBounds(op string) (minSize, maxSize int, err error) {
	if c.Size != nil {
		if c.MinSize != nil || c.MaxSize != nil {
			return 0, 0, configErr(op, "size cannot be combined with min_size/max_size")
		}

		if *c.Size < 0 {
			return 0, 0, configErr(op, fmt.Sprintf("size must be non-negative, got %d", *c.Size))
		}

		return *c.Size, *c.Size, nil
	}

	if c.MinSize != nil {
		minSize = *c.MinSize
	}

	if minSize < 0 {
		return 0, 0, configErr(op, fmt.Sprintf("min_size must be non-negative, got %d", minSize))
	}

	switch {
	case c.MaxSize != nil:
		maxSize = *c.MaxSize
	case minSize == 0:
		maxSize = DefaultMaxSize
	default:
		maxSize = maxSizeFactor * minSize
	}

	if maxSize < minSize {
		return 0, 0, configErr(op, fmt.Sprintf("max_size %d is below min_size %d", maxSize, minSize))
	}

	return minSize, maxSize, nil
}

// reject fails when any of the named parameters is set.
func (c GenerationConfig) reject(op string, names ...string) error {
	var given []string
	for _, name := range names {
		if c.isSet(name) {
			given = append(given, name)
		}
	}

	if len(given) == 0 {
		return nil
	}

	return configErr(op, "unsupported parameter(s): "+strings.Join(given, ", "))
}

func (c GenerationConfig) isSet(name string) bool {
	switch name {
	case "inner_dtype":
		return c.Inner != nil
	case "select_from":
		return len(c.SelectFrom) > 0
	case "size":
		return c.Size != nil
	case "min_size":
		return c.MinSize != nil
	case "max_size":
		return c.MaxSize != nil
	case "width":
		return c.Width != nil
	case "unique":
		return c.Unique
	case "precision":
		return c.Precision != nil
	case "scale":
		return c.Scale != nil
	default:
		panic("strategy: unknown parameter " + name)
	}
}
