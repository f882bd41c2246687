package gen

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "New York", `"New York"`},
		{"empty", "", `""`},
		{"quote", `Say "hi"`, `"Say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"unicode", "Côte d’Ivoire", `"Côte d’Ivoire"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.in)
			assert.Equal(t, tt.expected, got)
			back, err := strconv.Unquote(got)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestQuotePattern(t *testing.T) {
	got := QuotePattern(`(\d{5})(?:[ \-](\d{4}))?`)
	assert.Equal(t, `"(\\d{5})(?:[ \\-](\\d{4}))?"`, got)
	back, err := strconv.Unquote(got)
	require.NoError(t, err)
	assert.Equal(t, `(\d{5})(?:[ \-](\d{4}))?`, back)

	assert.Equal(t, `""`, QuotePattern(""))
}

func TestLists(t *testing.T) {
	assert.Equal(t, "[]", QuoteList(nil))
	assert.Equal(t, `[ "en" ]`, QuoteList([]string{"en"}))
	assert.Equal(t, `[ "de", "fr", "it" ]`, QuoteList([]string{"de", "fr", "it"}))
	assert.Equal(t, `[ "a\"b" ]`, QuoteList([]string{`a"b`}))

	assert.Equal(t, "[]", IntList([]int{}))
	assert.Equal(t, "[ 10 ]", IntList([]int{10}))
	assert.Equal(t, "[ 3, 4 ]", IntList([]int{3, 4}))
}

func TestMultilineString(t *testing.T) {
	assert.Equal(t, `""`, MultilineString(""))
	assert.Equal(t, `""`, MultilineString(" \n "))
	assert.Equal(t, "\"\"\"{{recipient}}\n{{city}}\"\"\"", MultilineString("{{recipient}}\n{{city}}"))
	assert.Equal(t, `"""a \"b\" \\c"""`, MultilineString(`a "b" \c`))
}
