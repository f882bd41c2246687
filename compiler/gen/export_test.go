package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckModule(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		m := &Module{Name: "ISO3166", Exports: []string{"Country", "all", "countryUS"}, Definitions: []string{"countryUS", "all", "Country"}}
		assert.NoError(t, CheckModule(m))
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, CheckModule(&Module{Name: "Empty"}))
	})

	t.Run("undefined export", func(t *testing.T) {
		m := &Module{Name: "ISO3166", Exports: []string{"countryUS", "countryZZ"}, Definitions: []string{"countryUS"}}
		err := CheckModule(m)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExportMismatch)
		var mismatch *ExportMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "ISO3166", mismatch.Module)
		assert.Equal(t, []string{"countryZZ"}, mismatch.Undefined)
		assert.Empty(t, mismatch.Unexported)
	})

	t.Run("unexported definition", func(t *testing.T) {
		m := &Module{Name: "ISO3166", Exports: []string{"countryUS"}, Definitions: []string{"countryUS", "countryUSSubdivisions", "countryDE"}}
		var mismatch *ExportMismatchError
		require.ErrorAs(t, CheckModule(m), &mismatch)
		assert.Equal(t, []string{"countryDE", "countryUSSubdivisions"}, mismatch.Unexported)
		assert.Contains(t, mismatch.Error(), "defined but not exported: countryDE, countryUSSubdivisions")
	})

	t.Run("duplicate", func(t *testing.T) {
		m := &Module{Name: "ISO3166", Exports: []string{"countryUS", "countryUS"}, Definitions: []string{"countryUS"}}
		var mismatch *ExportMismatchError
		require.ErrorAs(t, CheckModule(m), &mismatch)
		assert.Equal(t, []string{"countryUS"}, mismatch.Duplicated)

		m = &Module{Name: "ISO3166", Exports: []string{"countryUS"}, Definitions: []string{"countryUS", "countryUS"}}
		require.ErrorAs(t, CheckModule(m), &mismatch)
		assert.Equal(t, []string{"countryUS"}, mismatch.Duplicated)
	})
}
