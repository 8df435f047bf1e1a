package profile

// DefaultRows is the number of rows drawn per record when a profile does not
// say otherwise.
const DefaultRows = 8

// Profile represents a complete column profile document.
type Profile struct {
	// Version of the profile schema.
	Version string `yaml:"version"`
	// Seed fixes construction-time choices (random inner dtypes, widths,
	// decimal parameters). Unset means a fresh seed per Build.
	Seed *uint64 `yaml:"seed,omitempty"`
	// MaxDepth bounds random nesting; see strategy.WithMaxDepth.
	MaxDepth *int `yaml:"max_depth,omitempty"`
	// Rows is the number of rows per drawn record.
	Rows int `yaml:"rows,omitempty"`
	// Columns in schema order.
	Columns []Column `yaml:"columns"`
}

// Column describes one generated column.
type Column struct {
	Name string `yaml:"name"`
	// DType is the canonical text form, e.g. "List(Array(Int8, 3))".
	DType string `yaml:"dtype"`

	Size    *int `yaml:"size,omitempty"`
	MinSize *int `yaml:"min_size,omitempty"`
	MaxSize *int `yaml:"max_size,omitempty"`
	// Width of an Array column; may instead be given in DType.
	Width  *int `yaml:"width,omitempty"`
	Unique bool `yaml:"unique,omitempty"`
	// SelectFrom restricts innermost values. Entries are coerced to the
	// innermost dtype.
	SelectFrom []any `yaml:"select_from,omitempty"`
}
