// Package profile handles YAML column profiles: declarative descriptions of
// a table whose columns are filled with generated values.
//
// A profile names each column with a dtype in canonical text form and, for
// nested columns, the size constraints of the generated sequences:
//
//	version: "1"
//	seed: 7
//	rows: 16
//	columns:
//	  - name: tags
//	    dtype: List(String)
//	    min_size: 1
//	    unique: true
//	  - name: price
//	    dtype: Decimal(10, 2)
//	  - name: side
//	    dtype: Categorical
//	    select_from: [BUY, SELL]
//
// Build resolves every column to a generator; Frame.Record draws one Arrow
// record batch inside a rapid property.
package profile
