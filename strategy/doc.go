// Package strategy builds randomized value generators for column dtypes.
//
// Generators are rapid generators labelled with the dtype they produce.
// Scalar dtypes map to one canonical generator each (ScalarLookup); List and
// Array generators are built on demand by the Nested factory, recursing
// through inner dtypes to any depth; Decimal generators honour precision and
// scale.
//
// A Lookup maps dtypes to entries that are either ready generators or
// deferred builders, so callers can register custom generators for any
// dtype, parametrized or not, and merge lookups with the right-hand side
// winning. Strategies ties the pieces together:
//
//	s := strategy.New(strategy.WithSeed(7))
//	g, err := s.For(dtype.MustParse("List(Array(Int8, 3))"))
//	if err != nil {
//		return err
//	}
//	rapid.Check(t, func(t *rapid.T) {
//		rows := g.Draw(t, "rows").([]any)
//		...
//	})
//
// Invalid parameter combinations fail at construction with a
// *ConfigurationError; dtypes with no generator fail with an
// *UnsupportedTypeError.
package strategy
