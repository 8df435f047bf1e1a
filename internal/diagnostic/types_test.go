package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	require.NoError(t, d.Error())
	assert.False(t, d.HasErrors())

	d.AddWarning("unique_exhaustion", "select_from has fewer values than size", "tags", "unique")
	require.NoError(t, d.Error())

	d.AddError("unknown_dtype", `cannot parse "Lsit(Int8)"`, "tags", "dtype")
	d.AddError("missing_columns", "profile has no columns", "", "")

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{"unknown_dtype", "missing_columns", "unique_exhaustion"}, d.Codes())
	assert.EqualError(t, d.Error(),
		`tags.dtype: [unknown_dtype] cannot parse "Lsit(Int8)"; [missing_columns] profile has no columns`)
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())
}
