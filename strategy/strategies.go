package strategy

import (
	"errors"
	"log/slog"

	"columngen/dtype"
)

// Strategies is the dispatch surface: it owns a scalar registry, a nested
// registry binding the List and Array families to the nested factory, and
// the factory itself, whose random inner-dtype choices range over both
// registries.
//
// Registrations made through Scalars or NestedLookup after New are seen by
// For and by random inner-dtype choices.
type Strategies struct {
	scalars *Lookup
	nested  *Lookup
	factory *Nested
	logger  *slog.Logger
}

// New builds a Strategies value. Options apply to the nested factory;
// WithUniverse overrides the default universe of both registries.
func New(opts ...Option) *Strategies {
	scalars := ScalarLookup()
	nested := NewLookup()

	opts = append([]Option{WithUniverse(scalars, nested)}, opts...)
	factory := NewNested(scalars, opts...)

	nested.Set(dtype.Of(dtype.KindList), Deferred(func(inner dtype.DataType) (*Generator, error) {
		return factory.List(Inner(inner))
	}))
	nested.Set(dtype.Of(dtype.KindArray), Deferred(func(inner dtype.DataType) (*Generator, error) {
		return factory.Array(Inner(inner))
	}))

	return &Strategies{
		scalars: scalars,
		nested:  nested,
		factory: factory,
		logger:  factory.logger,
	}
}

// Scalars returns the live scalar registry.
func (s *Strategies) Scalars() *Lookup { return s.scalars }

// NestedLookup returns the live registry of nested families.
func (s *Strategies) NestedLookup() *Lookup { return s.nested }

// Factory returns the nested factory.
func (s *Strategies) Factory() *Nested { return s.factory }

// All returns a snapshot merging the scalar and nested registries, nested
// bindings winning.
func (s *Strategies) All() *Lookup {
	return s.scalars.Merge(s.nested)
}

// For resolves a generator for dt: an exact registration first, then a
// width-carrying Array, then the registration of dt's family, then the
// decimal factory.
func (s *Strategies) For(dt dtype.DataType) (*Generator, error) {
	all := s.All()

	if all.Has(dt) {
		return all.Get(dt)
	}

	if dt.Kind() == dtype.KindArray && dt.Width() > 0 {
		inner, _ := dt.Inner()
		return s.factory.Array(Inner(inner), Width(dt.Width()))
	}

	g, err := all.Resolve(dt)
	if err == nil {
		s.logger.Debug("resolved through family", "dtype", dt.String(), "family", dt.BaseType().String())
		return g, nil
	}

	if dt.Kind() == dtype.KindDecimal && errors.Is(err, ErrUnsupportedType) {
		return s.factory.decimalFor(dt)
	}

	return nil, err
}

// List forwards to the nested factory.
func (s *Strategies) List(params ...Param) (*Generator, error) {
	return s.factory.List(params...)
}

// Array forwards to the nested factory.
func (s *Strategies) Array(params ...Param) (*Generator, error) {
	return s.factory.Array(params...)
}

// Decimal forwards to the nested factory.
func (s *Strategies) Decimal(params ...Param) (*Generator, error) {
	return s.factory.Decimal(params...)
}
