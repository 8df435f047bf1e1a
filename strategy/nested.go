package strategy

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"

	"pgregory.net/rapid"

	"columngen/dtype"
	"columngen/internal/common"
)

// Nested builds List and Array generators (and Decimal generators, whose
// parameters may also be drawn). Leaves resolve through the scalar lookup;
// nested inner dtypes recurse back into the factory.
//
// Construction-time choices come from a seeded source, so a factory built
// with the same seed and asked the same questions builds the same generators.
type Nested struct {
	leaves   *Lookup
	universe []*Lookup
	rng      *rand.Rand
	seed     uint64
	maxDepth int
	logger   *slog.Logger
}

// NewNested returns a factory resolving leaf dtypes through leaves. Unless
// WithUniverse says otherwise, random inner dtypes are drawn from the
// families of leaves plus List and Array.
func NewNested(leaves *Lookup, opts ...Option) *Nested {
	s := newSettings(opts)
	s.logger.Debug("nested factory seeded", "seed", s.seed)

	return &Nested{
		leaves:   leaves,
		universe: s.universe,
		rng:      rand.New(rand.NewPCG(s.seed, s.seed)),
		seed:     s.seed,
		maxDepth: s.maxDepth,
		logger:   s.logger,
	}
}

// Seed returns the seed of the construction-time source.
func (n *Nested) Seed() uint64 { return n.seed }

// Families returns the candidate families for a random inner dtype at the
// given nesting depth.
func (n *Nested) Families(depth int) []dtype.DataType {
	var families []dtype.DataType
	if common.IsEmpty(n.universe) {
		families = append(n.leaves.Families(), dtype.Of(dtype.KindList), dtype.Of(dtype.KindArray))
	}

	for _, l := range n.universe {
		families = append(families, l.Families()...)
	}

	families = slices.DeleteFunc(families, func(family dtype.DataType) bool {
		return depth >= n.maxDepth && family.IsNested()
	})

	return common.UniqueFunc(families, dtype.DataType.Equal)
}

func (n *Nested) randomInner(depth int) (dtype.DataType, error) {
	families := n.Families(depth)
	if common.IsEmpty(families) {
		return dtype.DataType{}, configErr("list", "no dtype families available for a random inner dtype")
	}

	pick := families[n.rng.IntN(len(families))]
	n.logger.Debug("random inner dtype", "dtype", pick.String(), "depth", depth)

	return pick, nil
}

func (n *Nested) randomWidth() int {
	width := minRandomWidth + n.rng.IntN(maxRandomWidth-minRandomWidth+1)
	n.logger.Debug("random array width", "width", width)

	return width
}

// List builds a generator of variable-length sequences.
//
// Accepted params: Inner, SelectFrom, Size, MinSize, MaxSize, Unique.
// The result reports List(inner) as its dtype, where inner is the concrete
// element dtype actually produced.
func (n *Nested) List(params ...Param) (*Generator, error) {
	return n.list(NewGenerationConfig(params...), 0)
}

// Array builds a generator of fixed-width sequences. Width defaults to a
// random value in [1, 8].
//
// Accepted params: Inner, Width, SelectFrom, Unique.
func (n *Nested) Array(params ...Param) (*Generator, error) {
	return n.array(NewGenerationConfig(params...), 0)
}

func (n *Nested) list(cfg GenerationConfig, depth int) (*Generator, error) {
	if err := cfg.reject("list", "width", "precision", "scale"); err != nil {
		return nil, err
	}

	if len(cfg.SelectFrom) > 0 && cfg.Inner == nil {
		return nil, configErr("list", "select_from requires an inner dtype")
	}

	minSize, maxSize, err := cfg.sizeBounds("list")
	if err != nil {
		return nil, err
	}

	var inner dtype.DataType
	if cfg.Inner != nil {
		inner = *cfg.Inner
	} else if inner, err = n.randomInner(depth); err != nil {
		return nil, err
	}

	elem, err := n.element(inner, cfg.SelectFrom, minSize, maxSize, depth)
	if err != nil {
		return nil, err
	}

	var seq *rapid.Generator[[]any]
	if cfg.Unique {
		seq = rapid.SliceOfNDistinct(elem.Rapid(), minSize, maxSize, FlexHash)
	} else {
		seq = rapid.SliceOfN(elem.Rapid(), minSize, maxSize)
	}

	// nested and decimal inner dtypes may have been completed while
	// building the elements; report the concrete shape
	label := inner
	if inner.IsNested() || inner.Kind() == dtype.KindDecimal {
		label = elem.DataType()
	}

	return newSequence(dtype.List(label), Erase(seq), minSize, maxSize), nil
}

// element builds the generator for the elements of a list of inner. Nested
// inner dtypes recurse; the returned generator reports the concrete dtype.
func (n *Nested) element(inner dtype.DataType, selectFrom []any, minSize, maxSize, depth int) (*Generator, error) {
	sub := GenerationConfig{SelectFrom: selectFrom}
	if innerInner, ok := inner.Inner(); ok {
		sub.Inner = &innerInner
	}

	switch inner.Kind() {
	case dtype.KindArray:
		width := inner.Width()
		if width == 0 {
			width = n.randomWidth()
		}
		sub.Width = &width

		return n.array(sub, depth+1)
	case dtype.KindList:
		sub.MinSize, sub.MaxSize = &minSize, &maxSize

		return n.list(sub, depth+1)
	}

	if len(selectFrom) > 0 {
		return FromRapid(inner, rapid.SampledFrom(selectFrom)), nil
	}

	return n.leaf(inner)
}

// leaf resolves a non-nested dtype: exact binding, then family binding, then
// the decimal factory for Decimal dtypes.
func (n *Nested) leaf(dt dtype.DataType) (*Generator, error) {
	g, err := n.leaves.Resolve(dt)
	if err == nil || dt.Kind() != dtype.KindDecimal || !errors.Is(err, ErrUnsupportedType) {
		return g, err
	}

	return n.decimalFor(dt)
}

func (n *Nested) array(cfg GenerationConfig, depth int) (*Generator, error) {
	if err := cfg.reject("array", "size", "min_size", "max_size", "precision", "scale"); err != nil {
		return nil, err
	}

	var width int
	if cfg.Width != nil {
		width = *cfg.Width
		if width < 1 {
			return nil, configErr("array", "width must be positive")
		}
	} else {
		width = n.randomWidth()
	}

	sub := cfg
	sub.Width = nil
	sub.Size = &width

	g, err := n.list(sub, depth)
	if err != nil {
		return nil, err
	}

	inner, _ := g.DataType().Inner()

	return g.relabel(dtype.Array(inner, width)), nil
}

// Decimal builds a decimal generator. Accepted params: Precision, Scale;
// omitted ones are drawn from the factory's source.
func (n *Nested) Decimal(params ...Param) (*Generator, error) {
	cfg := NewGenerationConfig(params...)
	if err := cfg.reject("decimal", "inner_dtype", "select_from", "size", "min_size", "max_size", "width", "unique"); err != nil {
		return nil, err
	}

	return n.decimal(cfg.Precision, cfg.Scale)
}

func (n *Nested) decimalFor(dt dtype.DataType) (*Generator, error) {
	var precision, scale *int
	if p, ok := dt.Precision(); ok {
		precision = &p
	}

	if s, ok := dt.Scale(); ok {
		scale = &s
	}

	return n.decimal(precision, scale)
}

func (n *Nested) decimal(precision, scale *int) (*Generator, error) {
	if scale != nil && (*scale < 0 || *scale > MaxDecimalPrecision) {
		return nil, validateDecimal(MaxDecimalPrecision, *scale)
	}

	var p int
	if precision != nil {
		p = *precision
	} else {
		lowest := 1
		if scale != nil && *scale > lowest {
			lowest = *scale
		}
		p = lowest + n.rng.IntN(MaxDecimalPrecision-lowest+1)
		n.logger.Debug("random decimal precision", "precision", p)
	}

	var s int
	if scale != nil {
		s = *scale
	} else {
		if p < 1 {
			return nil, validateDecimal(p, 0)
		}
		s = n.rng.IntN(p + 1)
		n.logger.Debug("random decimal scale", "scale", s)
	}

	return newDecimalGenerator(p, s)
}
