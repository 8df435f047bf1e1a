package profile

import (
	"fmt"

	"columngen/dtype"
	"columngen/internal/diagnostic"
)

// Validate checks a profile without building any generator. Findings that
// would make Build fail are errors; settings that build but are likely to
// exhaust the engine at draw time are warnings.
func Validate(p *Profile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError("profile_is_nil", "profile is nil", "", "")
		return res
	}

	if p.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported profile version %q", p.Version), "", "version")
	}

	if p.Rows < 0 {
		res.AddError("negative_rows", fmt.Sprintf("rows must be non-negative, got %d", p.Rows), "", "rows")
	}

	if p.MaxDepth != nil && *p.MaxDepth < 0 {
		res.AddError("negative_max_depth", fmt.Sprintf("max_depth must be non-negative, got %d", *p.MaxDepth), "", "max_depth")
	}

	if len(p.Columns) == 0 {
		res.AddError("missing_columns", "profile has no columns", "", "columns")
	}

	seen := map[string]struct{}{}

	for i := range p.Columns {
		c := &p.Columns[i]
		if c.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("column %d has no name", i), "", "name")
		} else if _, ok := seen[c.Name]; ok {
			res.AddError("duplicate_column", fmt.Sprintf("duplicate column %q", c.Name), c.Name, "name")
		}

		seen[c.Name] = struct{}{}

		validateColumn(res, c)
	}

	return res
}

func validateColumn(res *diagnostic.Diagnostics, c *Column) {
	dt, err := dtype.Parse(c.DType)
	if err != nil {
		res.AddError("unknown_dtype", err.Error(), c.Name, "dtype")
		return
	}

	unsupported := func(field string) {
		res.AddError("unsupported_setting", fmt.Sprintf("%s is not supported for %s", field, dt), c.Name, field)
	}

	switch dt.Kind() {
	case dtype.KindList:
		if c.Width != nil {
			unsupported("width")
		}

		validateSizes(res, c)
	case dtype.KindArray:
		for _, s := range c.settings()[:3] {
			if s.set {
				unsupported(s.field)
			}
		}

		validateWidth(res, c, dt)
	default:
		for _, s := range c.settings() {
			if s.set {
				unsupported(s.field)
			}
		}
	}

	validateSelectFrom(res, c, dt)
}

type setting struct {
	field string
	set   bool
	n     *int
}

// settings lists the sequence settings of c: the three size settings first.
func (c *Column) settings() []setting {
	return []setting{
		{"size", c.Size != nil, c.Size},
		{"min_size", c.MinSize != nil, c.MinSize},
		{"max_size", c.MaxSize != nil, c.MaxSize},
		{"width", c.Width != nil, c.Width},
		{"unique", c.Unique, nil},
	}
}

func validateSizes(res *diagnostic.Diagnostics, c *Column) {
	for _, s := range c.settings()[:3] {
		if s.set && *s.n < 0 {
			res.AddError("negative_size", fmt.Sprintf("%s must be non-negative, got %d", s.field, *s.n), c.Name, s.field)
		}
	}

	if c.Size != nil && (c.MinSize != nil || c.MaxSize != nil) {
		res.AddError("size_conflict", "size cannot be combined with min_size/max_size", c.Name, "size")
	}

	if c.MinSize != nil && c.MaxSize != nil && *c.MaxSize < *c.MinSize {
		res.AddError("size_range", fmt.Sprintf("max_size %d is below min_size %d", *c.MaxSize, *c.MinSize), c.Name, "max_size")
	}
}

func validateWidth(res *diagnostic.Diagnostics, c *Column, dt dtype.DataType) {
	if c.Width == nil {
		return
	}

	if *c.Width < 1 {
		res.AddError("invalid_width", fmt.Sprintf("width must be positive, got %d", *c.Width), c.Name, "width")
	}

	if dt.Width() != 0 && dt.Width() != *c.Width {
		res.AddError("width_mismatch", fmt.Sprintf("width %d contradicts %s", *c.Width, dt), c.Name, "width")
	}
}

func validateSelectFrom(res *diagnostic.Diagnostics, c *Column, dt dtype.DataType) {
	if len(c.SelectFrom) == 0 {
		return
	}

	if dt.IsNested() {
		if _, ok := dt.Inner(); !ok {
			res.AddError("select_from_without_inner", "select_from requires an inner dtype", c.Name, "select_from")
			return
		}
	}

	if _, err := coerceAll(dt.Innermost(), c.SelectFrom); err != nil {
		res.AddError("invalid_select_from", err.Error(), c.Name, "select_from")
		return
	}

	inner, ok := dt.Inner()
	if !c.Unique || !ok || inner.IsNested() {
		return
	}

	need := minElements(c, dt)
	if distinct := len(c.SelectFrom); need > distinct {
		res.AddWarning("unique_exhaustion",
			fmt.Sprintf("unique sequences need %d distinct values but select_from offers %d", need, distinct),
			c.Name, "unique")
	}
}

// minElements is the shortest sequence length a column can produce.
func minElements(c *Column, dt dtype.DataType) int {
	switch {
	case dt.Width() != 0:
		return dt.Width()
	case c.Width != nil:
		return *c.Width
	case c.Size != nil:
		return *c.Size
	case c.MinSize != nil:
		return *c.MinSize
	default:
		return 0
	}
}
