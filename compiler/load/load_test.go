package load

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFS(t *testing.T) {
	fsys := fstest.MapFS{
		"countries/US.yaml": {Data: []byte(`
alpha2: US
alpha3: USA
number: "840"
name: United States
continent: North America
postal_code: true
postal_code_format: '(\d{5})(?:[ \-](\d{4}))?'
national_number_lengths: [10]
languages_official: [en]
unofficial_names:
  - United States of America
  - États-Unis
`)},
		"countries/AQ.yaml": {Data: []byte(`
alpha2: AQ
alpha3: ATA
name: Antarctica
`)},
		"subdivisions/US.yaml": {Data: []byte(`
NY:
  name: New York
  unofficial_names: NY State
AL:
  name: Alabama
  unofficial_names:
    - Ala.
DC:
`)},
		"countries/README.md": {Data: []byte("ignored")},
	}

	d, err := FS(fsys)
	require.NoError(t, err)
	require.Len(t, d.Countries, 2)

	t.Run("countries are in file name order", func(t *testing.T) {
		assert.Equal(t, "AQ", d.Countries[0].Alpha2)
		assert.Equal(t, "US", d.Countries[1].Alpha2)
	})

	t.Run("fields are decoded", func(t *testing.T) {
		us := d.Lookup("US")
		require.NotNil(t, us)
		assert.Equal(t, "USA", us.Alpha3)
		assert.Equal(t, "840", us.Number)
		assert.True(t, us.PostalCode)
		assert.Equal(t, `(\d{5})(?:[ \-](\d{4}))?`, us.PostalCodeFormat)
		assert.Equal(t, []int{10}, us.NationalNumberLengths)
		assert.Equal(t, StringList{"United States of America", "États-Unis"}, us.UnofficialNames)
	})

	t.Run("subdivisions keep document order", func(t *testing.T) {
		us := d.Lookup("US")
		require.Len(t, us.Subdivisions, 3)
		assert.Equal(t, "NY", us.Subdivisions[0].Code)
		assert.Equal(t, "AL", us.Subdivisions[1].Code)
		assert.Equal(t, "DC", us.Subdivisions[2].Code)
		assert.Equal(t, StringList{"NY State"}, us.Subdivisions[0].UnofficialNames)
		assert.Equal(t, StringList{"Ala."}, us.Subdivisions[1].UnofficialNames)
		assert.Empty(t, us.Subdivisions[2].Name)
	})

	t.Run("missing subdivisions file", func(t *testing.T) {
		aq := d.Lookup("AQ")
		require.NotNil(t, aq)
		assert.False(t, aq.HasSubdivisions())
	})

	t.Run("lookup of unknown code", func(t *testing.T) {
		assert.Nil(t, d.Lookup("ZZ"))
	})
}

func TestFSErrors(t *testing.T) {
	t.Run("missing countries directory", func(t *testing.T) {
		_, err := FS(fstest.MapFS{})
		require.Error(t, err)
	})

	t.Run("empty countries directory", func(t *testing.T) {
		_, err := FS(fstest.MapFS{"countries/notes.txt": {Data: []byte("x")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no country files")
	})

	t.Run("malformed country", func(t *testing.T) {
		_, err := FS(fstest.MapFS{"countries/XX.yaml": {Data: []byte("alpha2: [")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "countries/XX.yaml")
	})

	t.Run("subdivisions file is not a mapping", func(t *testing.T) {
		_, err := FS(fstest.MapFS{
			"countries/XX.yaml":    {Data: []byte("alpha2: XX")},
			"subdivisions/XX.yaml": {Data: []byte("- a\n- b\n")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a mapping")
	})
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"scalar", `v: one`, StringList{"one"}},
		{"sequence", `v: [a, b]`, StringList{"a", "b"}},
		{"null", `v: ~`, nil},
		{"empty", `v: ""`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V StringList `yaml:"v"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, out.V)
		})
	}

	t.Run("mapping is rejected", func(t *testing.T) {
		var out struct {
			V StringList `yaml:"v"`
		}
		require.Error(t, yaml.Unmarshal([]byte("v: {a: b}"), &out))
	})
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "🇺🇸", (&Country{Alpha2: "US"}).Emoji())
	assert.Equal(t, "🇧🇪", (&Country{Alpha2: "be"}).Emoji())
	assert.Equal(t, "x", (&Country{Alpha2: "US", EmojiFlag: "x"}).Emoji())
	assert.Empty(t, (&Country{Alpha2: "U1"}).Emoji())
	assert.Empty(t, (&Country{}).Emoji())
}
