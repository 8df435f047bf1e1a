package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  *Profile
		errors   []string
		warnings []string
	}{
		{
			name:    "nil",
			profile: nil,
			errors:  []string{"profile_is_nil"},
		},
		{
			name:    "empty",
			profile: &Profile{Version: "1"},
			errors:  []string{"missing_columns"},
		},
		{
			name: "header",
			profile: &Profile{
				Version:  "2",
				Rows:     -1,
				MaxDepth: intPtr(-1),
				Columns:  []Column{{Name: "a", DType: "Int8"}},
			},
			errors: []string{"unsupported_version", "negative_rows", "negative_max_depth"},
		},
		{
			name: "names",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "Int8"},
				{Name: "a", DType: "Int16"},
				{DType: "Int32"},
			}},
			errors: []string{"duplicate_column", "missing_name"},
		},
		{
			name: "dtype",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "Lsit(Int8)"},
			}},
			errors: []string{"unknown_dtype"},
		},
		{
			name: "list sizes",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "List(Int8)", Size: intPtr(-1)},
				{Name: "b", DType: "List(Int8)", Size: intPtr(1), MinSize: intPtr(0)},
				{Name: "c", DType: "List(Int8)", MinSize: intPtr(3), MaxSize: intPtr(2)},
				{Name: "d", DType: "List(Int8)", Width: intPtr(2)},
			}},
			errors: []string{"negative_size", "size_conflict", "size_range", "unsupported_setting"},
		},
		{
			name: "array settings",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "Array(Int8, 2)", MinSize: intPtr(1)},
				{Name: "b", DType: "Array(Int8, 2)", Width: intPtr(3)},
				{Name: "c", DType: "Array(Int8)", Width: intPtr(0)},
			}},
			errors: []string{"unsupported_setting", "width_mismatch", "invalid_width"},
		},
		{
			name: "scalar settings",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "String", Unique: true},
			}},
			errors: []string{"unsupported_setting"},
		},
		{
			name: "select_from",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "List", SelectFrom: []any{1}},
				{Name: "b", DType: "List(UInt8)", SelectFrom: []any{300}},
				{Name: "c", DType: "Decimal", SelectFrom: []any{"1.5"}},
				{Name: "d", DType: "List(UInt8)", SelectFrom: []any{1, 2}, Unique: true, MinSize: intPtr(3)},
			}},
			errors:   []string{"select_from_without_inner", "invalid_select_from", "invalid_select_from"},
			warnings: []string{"unique_exhaustion"},
		},
		{
			name: "valid",
			profile: &Profile{Version: "1", Columns: []Column{
				{Name: "a", DType: "List(Array(Int8, 2))", MinSize: intPtr(1), Unique: true},
				{Name: "b", DType: "Array(String)", Width: intPtr(4), SelectFrom: []any{"x", "y", "z", "w"}, Unique: true},
				{Name: "c", DType: "Datetime(ms)", SelectFrom: []any{"2024-01-02T03:04:05.678Z"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(tt.profile)
			require.NotNil(t, res)

			var errCodes, warnCodes []string
			for _, e := range res.Errors {
				errCodes = append(errCodes, e.Code)
			}

			for _, w := range res.Warnings {
				warnCodes = append(warnCodes, w.Code)
			}

			assert.Equal(t, tt.errors, errCodes)
			assert.Equal(t, tt.warnings, warnCodes)
		})
	}
}
