package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/countrygen/compiler/load"
)

func TestNewGraph(t *testing.T) {
	d := &load.Dataset{Countries: []*load.Country{
		unitedStates(),
		{Alpha2: "AQ", Alpha3: "ATA", Name: "Antarctica", Continent: "Antarctica"},
		{Alpha2: "DE", Alpha3: "DEU", Name: "Germany", Continent: "Europe", Region: "Europe",
			Subdivisions: []*load.Subdivision{{Code: "BE", Name: "Berlin"}, {Code: "XX"}}},
	}}
	g, err := NewGraph(&Config{}, d)
	require.NoError(t, err)

	t.Run("order", func(t *testing.T) {
		assert.Equal(t, []string{"countryAQ", "countryDE", "countryUS"}, g.CountryNames())
		assert.Equal(t, []string{"countryDESubdivisions", "countryUSSubdivisions"}, g.SubdivisionNames())
		assert.Equal(t, []string{
			"countryAQ", "countryDE", "countryUS",
			"countryDESubdivisions", "countryUSSubdivisions",
		}, g.FunctionNames())
	})

	t.Run("enums", func(t *testing.T) {
		assert.Equal(t, []string{"Antarctica", "Europe", "NorthAmerica"}, g.Enums.Continent.Idents())
		assert.Equal(t, []string{"Americas", "Europe", NoneIdent}, g.Enums.Region.Idents())
	})

	t.Run("dropped", func(t *testing.T) {
		assert.Equal(t, []DroppedSubdivision{{Country: "DE", Code: "XX"}}, g.Dropped)
	})

	t.Run("new york", func(t *testing.T) {
		us, ok := g.FromAlpha2("US")
		require.True(t, ok)
		assert.Equal(t, "countryUSSubdivisions", us.Subdivisions)
		ny, ok := g.FindSubdivisionByCode(us, "NY")
		require.True(t, ok)
		assert.Equal(t, "New York", ny.Name)
		_, ok = g.FindSubdivisionByCode(us, "XX")
		assert.False(t, ok)
	})

	t.Run("lookups", func(t *testing.T) {
		de, ok := g.FromAlpha3("DEU")
		require.True(t, ok)
		assert.Equal(t, "Germany", de.Name)
		_, ok = g.FromAlpha2("ZZ")
		assert.False(t, ok)
		_, ok = g.FromAlpha3("")
		assert.False(t, ok)

		aq, ok := g.FromAlpha2("AQ")
		require.True(t, ok)
		assert.Empty(t, g.SubdivisionsOf(aq))
	})
}

func TestNewGraphFirstMatch(t *testing.T) {
	d := &load.Dataset{Countries: []*load.Country{
		{Alpha2: "B1", Alpha3: "DUP", Name: "Beta"},
		{Alpha2: "A1", Alpha3: "DUP", Name: "Alpha"},
	}}
	g, err := NewGraph(nil, d)
	require.NoError(t, err)
	c, ok := g.FromAlpha3("DUP")
	require.True(t, ok)
	assert.Equal(t, "Alpha", c.Name)
}

func TestNewGraphSameName(t *testing.T) {
	d := &load.Dataset{Countries: []*load.Country{
		{Alpha2: "ZB", Name: "Same"},
		{Alpha2: "ZA", Name: "Same"},
	}}
	g, err := NewGraph(nil, d)
	require.NoError(t, err)
	assert.Equal(t, []string{"countryZA", "countryZB"}, g.CountryNames())
}

func TestNewGraphErrors(t *testing.T) {
	tests := []struct {
		name    string
		dataset *load.Dataset
		check   func(error) bool
	}{
		{"nil dataset", nil, IsDatasetIntegrityError},
		{"no countries", &load.Dataset{}, IsDatasetIntegrityError},
		{"duplicate alpha2", &load.Dataset{Countries: []*load.Country{
			{Alpha2: "US", Name: "One"},
			{Alpha2: "US", Name: "Two"},
		}}, IsDatasetIntegrityError},
		{"collision", &load.Dataset{Countries: []*load.Country{
			{Alpha2: "AA", Subregion: "South-Eastern Asia"},
			{Alpha2: "BB", Subregion: "South Eastern Asia"},
		}}, IsIdentifierCollisionError},
		{"subdivision without code", &load.Dataset{Countries: []*load.Country{
			{Alpha2: "AA", Subdivisions: []*load.Subdivision{{Name: "Nowhere"}}},
		}}, IsDatasetIntegrityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraph(&Config{}, tt.dataset)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}
