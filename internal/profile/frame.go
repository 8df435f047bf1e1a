package profile

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"pgregory.net/rapid"

	"columngen/dtype"
	"columngen/internal/columnar"
	"columngen/internal/common"
	"columngen/strategy"
)

// Frame is a built profile: one generator per column and the Arrow schema
// of the records it draws.
type Frame struct {
	rows       int
	schema     *arrow.Schema
	generators []*strategy.Generator
}

// Build validates the profile and resolves every column to a generator.
// The profile's seed and max_depth apply first; opts may add a logger or
// override them.
func (p *Profile) Build(opts ...strategy.Option) (*Frame, error) {
	if diags := Validate(p); diags.HasErrors() {
		return nil, fmt.Errorf("invalid profile: %w", diags.Error())
	}

	var base []strategy.Option
	if p.Seed != nil {
		base = append(base, strategy.WithSeed(*p.Seed))
	}

	if p.MaxDepth != nil {
		base = append(base, strategy.WithMaxDepth(*p.MaxDepth))
	}

	s := strategy.New(append(base, opts...)...)

	f := &Frame{rows: p.Rows}
	fields := make([]arrow.Field, 0, len(p.Columns))

	for i := range p.Columns {
		c := &p.Columns[i]

		g, err := buildColumn(s, c)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}

		arrowType, err := g.DataType().ArrowType()
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}

		f.generators = append(f.generators, g)
		fields = append(fields, arrow.Field{Name: c.Name, Type: arrowType})
	}

	f.schema = arrow.NewSchema(fields, nil)

	return f, nil
}

func buildColumn(s *strategy.Strategies, c *Column) (*strategy.Generator, error) {
	dt, err := dtype.Parse(c.DType)
	if err != nil {
		return nil, err
	}

	selectFrom, err := coerceAll(dt.Innermost(), c.SelectFrom)
	if err != nil {
		return nil, err
	}

	var params []strategy.Param
	if inner, ok := dt.Inner(); ok {
		params = append(params, strategy.Inner(inner))
	}

	if len(selectFrom) > 0 {
		params = append(params, strategy.SelectFrom(selectFrom...))
	}

	if c.Unique {
		params = append(params, strategy.Unique())
	}

	switch dt.Kind() {
	case dtype.KindList:
		if c.Size != nil {
			params = append(params, strategy.Size(*c.Size))
		}

		if c.MinSize != nil {
			params = append(params, strategy.MinSize(*c.MinSize))
		}

		if c.MaxSize != nil {
			params = append(params, strategy.MaxSize(*c.MaxSize))
		}

		return s.List(params...)
	case dtype.KindArray:
		if w := dt.Width(); w != 0 {
			params = append(params, strategy.Width(w))
		} else if c.Width != nil {
			params = append(params, strategy.Width(*c.Width))
		}

		return s.Array(params...)
	}

	if len(selectFrom) > 0 {
		return strategy.FromRapid(dt, rapid.SampledFrom(selectFrom)), nil
	}

	return s.For(dt)
}

// Rows returns the number of rows per record.
func (f *Frame) Rows() int { return f.rows }

// Schema returns the schema of drawn records.
func (f *Frame) Schema() *arrow.Schema { return f.schema }

// Generator returns the generator of the named column.
func (f *Frame) Generator(name string) (*strategy.Generator, bool) {
	i, ok := common.First(f.schema.FieldIndices(name))
	if !ok {
		return nil, false
	}

	return f.generators[i], true
}

// Record draws one record inside a rapid property. The caller owns the
// record and must Release it.
func (f *Frame) Record(t *rapid.T, mem memory.Allocator) (arrow.Record, error) {
	cols := make([]arrow.Array, 0, len(f.generators))
	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()

	for i, g := range f.generators {
		col, err := columnar.Draw(t, g, f.rows, mem)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.schema.Field(i).Name, err)
		}

		cols = append(cols, col)
	}

	return array.NewRecord(f.schema, cols, int64(f.rows)), nil
}
