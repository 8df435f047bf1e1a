// Package dtype models the column data types that generators are built for.
//
// Key types:
//   - Kind: the dtype family (Int8, String, Datetime, List, ...)
//   - TimeUnit: resolution of Datetime and Duration
//   - DataType: a kind plus its parameters (inner dtype, width, time unit,
//     precision/scale), with structural equality and BaseType for
//     family-level fallback
//
// Every DataType has a canonical string form (see Parse) and, when concrete,
// an Apache Arrow equivalent (see DataType.ArrowType).
package dtype
