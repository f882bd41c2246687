package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/countrygen/compiler/load"
)

func unitedStates() *load.Country {
	return &load.Country{
		Alpha2:                         "US",
		Alpha3:                         "USA",
		Number:                         "840",
		Name:                           "United States",
		Continent:                      "North America",
		Region:                         "Americas",
		Subregion:                      "Northern America",
		WorldRegion:                    "AMER",
		CountryCode:                    "1",
		CurrencyCode:                   "USD",
		GEC:                            "US",
		IOC:                            "USA",
		UNLocode:                       "US",
		InternationalPrefix:            "011",
		NANPPrefix:                     "1",
		NationalPrefix:                 "1",
		NationalDestinationCodeLengths: []int{3},
		NationalNumberLengths:          []int{10},
		LanguagesOfficial:              load.StringList{"en"},
		LanguagesSpoken:                load.StringList{"en"},
		LocalNames:                     load.StringList{"United States"},
		UnofficialNames:                load.StringList{"United States of America", "USA"},
		AddressFormat:                  "{{recipient}}\n{{street}}\n{{city}} {{region_short}} {{postalcode}}\n{{country}}",
		PostalCode:                     true,
		PostalCodeFormat:               `(\d{5})(?:[ \-](\d{4}))?`,
		Nationality:                    "American",
		StartOfWeek:                    "sunday",
		Subdivisions: []*load.Subdivision{
			{Code: "NY", Name: "New York"},
		},
	}
}

func mustEnums(t *testing.T, countries ...*load.Country) *Enums {
	t.Helper()
	enums, err := DeriveEnums(countries)
	require.NoError(t, err)
	return enums
}

func TestBuildCountry(t *testing.T) {
	t.Run("united states", func(t *testing.T) {
		us := unitedStates()
		fn, err := BuildCountry(us, mustEnums(t, us))
		require.NoError(t, err)

		assert.Equal(t, "countryUS", fn.Name)
		assert.Equal(t, "United States", fn.Doc)
		assert.Equal(t, ReturnCountry, fn.Returns)
		r := fn.Country
		require.NotNil(t, r)
		assert.Equal(t, "US", r.Alpha2)
		assert.Equal(t, "NorthAmerica", r.Continent)
		assert.Equal(t, "Americas", r.Region)
		assert.Equal(t, "NorthernAmerica", r.Subregion)
		assert.Equal(t, "Amer", r.WorldRegion)
		assert.Equal(t, "Sun", r.StartOfWeek)
		assert.Equal(t, "countryUSSubdivisions", r.Subdivisions)
		assert.Equal(t, "🇺🇸", r.Emoji)
		assert.True(t, r.PostalCode)
		assert.Equal(t, `(\d{5})(?:[ \-](\d{4}))?`, r.PostalCodeFormat)
		assert.Equal(t, []string{"United States of America", "USA"}, r.UnofficialNames)
		assert.Equal(t, []int{3}, r.NationalDestinationCodeLengths)
	})

	t.Run("no postal code", func(t *testing.T) {
		aq := &load.Country{Alpha2: "AQ", Name: "Antarctica", Continent: "Antarctica", PostalCodeFormat: "ignored"}
		fn, err := BuildCountry(aq, mustEnums(t, aq))
		require.NoError(t, err)
		r := fn.Country
		assert.False(t, r.PostalCode)
		assert.Empty(t, r.PostalCodeFormat)
		assert.Equal(t, NoneIdent, r.Region)
		assert.Equal(t, "Mon", r.StartOfWeek)
		assert.Empty(t, r.Subdivisions)
		assert.NotNil(t, r.LanguagesOfficial)
		assert.NotNil(t, r.NationalNumberLengths)
	})

	t.Run("blank address format", func(t *testing.T) {
		c := &load.Country{Alpha2: "XX", AddressFormat: "  \n"}
		fn, err := BuildCountry(c, mustEnums(t, c))
		require.NoError(t, err)
		assert.Empty(t, fn.Country.AddressFormat)
	})

	t.Run("blank local names", func(t *testing.T) {
		c := &load.Country{Alpha2: "SG", LocalNames: load.StringList{"Singapore", "", " ", "新加坡"}}
		fn, err := BuildCountry(c, mustEnums(t, c))
		require.NoError(t, err)
		assert.Equal(t, []string{"Singapore", "新加坡"}, fn.Country.LocalNames)
	})

	t.Run("missing alpha2", func(t *testing.T) {
		c := &load.Country{Name: "Nowhere"}
		_, err := BuildCountry(c, mustEnums(t, c))
		require.Error(t, err)
		assert.True(t, IsDatasetIntegrityError(err))
		assert.Contains(t, err.Error(), "Nowhere")
	})

	t.Run("invalid alpha2", func(t *testing.T) {
		c := &load.Country{Alpha2: "u-s"}
		_, err := BuildCountry(c, mustEnums(t, c))
		require.Error(t, err)
		assert.True(t, IsDatasetIntegrityError(err))
	})

	t.Run("label outside enums", func(t *testing.T) {
		enums := mustEnums(t, &load.Country{Alpha2: "DE", Continent: "Europe"})
		_, err := BuildCountry(&load.Country{Alpha2: "JP", Continent: "Asia"}, enums)
		require.Error(t, err)
		var dsErr *DatasetIntegrityError
		require.ErrorAs(t, err, &dsErr)
		assert.Equal(t, "JP", dsErr.Country)
		assert.Equal(t, EnumContinent, dsErr.Field)
	})
}

func TestBuildSubdivisions(t *testing.T) {
	t.Run("new york", func(t *testing.T) {
		fn, dropped, err := BuildSubdivisions(unitedStates(), "countryUS")
		require.NoError(t, err)
		require.NotNil(t, fn)
		assert.Empty(t, dropped)
		assert.Equal(t, "countryUSSubdivisions", fn.Name)
		assert.Equal(t, ReturnSubdivisions, fn.Returns)
		assert.Equal(t, []SubdivisionRecord{{Name: "New York", Code: "NY", UnofficialNames: []string{}}}, fn.Subdivisions)
	})

	t.Run("none", func(t *testing.T) {
		fn, dropped, err := BuildSubdivisions(&load.Country{Alpha2: "AQ"}, "countryAQ")
		require.NoError(t, err)
		assert.Nil(t, fn)
		assert.Nil(t, dropped)
	})

	t.Run("unnamed are dropped", func(t *testing.T) {
		c := &load.Country{Alpha2: "XX", Name: "Example", Subdivisions: []*load.Subdivision{
			{Code: "A", Name: "Alpha"},
			{Code: "B"},
			{Code: "C", Name: "  "},
			{Code: "D", Name: "Delta", UnofficialNames: load.StringList{"Δ"}},
		}}
		fn, dropped, err := BuildSubdivisions(c, "countryXX")
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "C"}, dropped)
		require.Len(t, fn.Subdivisions, 2)
		assert.Equal(t, "A", fn.Subdivisions[0].Code)
		assert.Equal(t, []string{"Δ"}, fn.Subdivisions[1].UnofficialNames)
		assert.Equal(t, "Subdivisions of Example.", fn.Doc)
	})

	t.Run("all unnamed", func(t *testing.T) {
		c := &load.Country{Alpha2: "XX", Subdivisions: []*load.Subdivision{{Code: "A"}}}
		fn, dropped, err := BuildSubdivisions(c, "countryXX")
		require.NoError(t, err)
		require.NotNil(t, fn)
		assert.Empty(t, fn.Subdivisions)
		assert.Equal(t, []string{"A"}, dropped)
	})

	t.Run("missing code", func(t *testing.T) {
		c := &load.Country{Alpha2: "XX", Subdivisions: []*load.Subdivision{{Name: "Nameless code"}}}
		_, _, err := BuildSubdivisions(c, "countryXX")
		require.Error(t, err)
		assert.True(t, IsDatasetIntegrityError(err))
	})
}
