package strategy

import (
	"pgregory.net/rapid"

	"columngen/dtype"
)

// Generator produces values of one dtype. It wraps a rapid generator, so it
// draws and shrinks under rapid.Check, and records the dtype it produces and,
// for sequences, the length bounds it was built with.
type Generator struct {
	gen     *rapid.Generator[any]
	dtype   dtype.DataType
	sized   bool
	minSize int
	maxSize int
}

// NewGenerator labels gen with the dtype of the values it produces.
func NewGenerator(dt dtype.DataType, gen *rapid.Generator[any]) *Generator {
	return &Generator{gen: gen, dtype: dt}
}

// FromRapid wraps a typed rapid generator. It is the usual way to register a
// custom generator:
//
//	lookup.Set(dtype.Int8, strategy.Ready(strategy.FromRapid(dtype.Int8, rapid.Int8Range(0, 9))))
func FromRapid[V any](dt dtype.DataType, gen *rapid.Generator[V]) *Generator {
	return NewGenerator(dt, Erase(gen))
}

// Erase converts a typed rapid generator into one producing `any`.
func Erase[V any](gen *rapid.Generator[V]) *rapid.Generator[any] {
	return rapid.Map(gen, func(v V) any { return v })
}

func newSequence(dt dtype.DataType, gen *rapid.Generator[any], minSize, maxSize int) *Generator {
	return &Generator{gen: gen, dtype: dt, sized: true, minSize: minSize, maxSize: maxSize}
}

// DataType returns the dtype of the produced values.
func (g *Generator) DataType() dtype.DataType { return g.dtype }

// SizeBounds returns the inclusive length bounds of a sequence generator.
// ok is false for scalar generators.
func (g *Generator) SizeBounds() (minSize, maxSize int, ok bool) {
	return g.minSize, g.maxSize, g.sized
}

// Rapid exposes the underlying rapid generator for composition.
func (g *Generator) Rapid() *rapid.Generator[any] { return g.gen }

// Draw produces one value inside a rapid property.
func (g *Generator) Draw(t *rapid.T, label string) any {
	return g.gen.Draw(t, label)
}

// Example produces one value outside of a property; equal seeds give equal values.
func (g *Generator) Example(seed int) any {
	return g.gen.Example(seed)
}

func (g *Generator) String() string {
	return "Generator(" + g.dtype.String() + ")"
}

// relabel returns a copy of g that reports dt as its dtype.
func (g *Generator) relabel(dt dtype.DataType) *Generator {
	out := *g
	out.dtype = dt

	return &out
}
