package gen

import (
	"strconv"
	"strings"
)

// Escaping shared by the text backends. Elm and Go agree on these escape
// sequences, so one implementation serves both.

var quoteEscaper = strings.NewReplacer(
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func doubleBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Quote returns s as a double-quoted literal.
func Quote(s string) string {
	return `"` + quoteEscaper.Replace(doubleBackslashes(s)) + `"`
}

// QuotePattern returns a postal code pattern as a double-quoted literal.
// Backslashes are doubled before quotes are escaped, so `\d{5}` is emitted
// as "\\d{5}" and reads back as the original pattern.
func QuotePattern(pattern string) string {
	return Quote(pattern)
}

// QuoteList returns a bracketed, comma separated list of quoted literals.
// An empty list is "[]".
func QuoteList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

// IntList returns a bracketed list of bare numeric literals.
func IntList(values []int) string {
	if len(values) == 0 {
		return "[]"
	}
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.Itoa(v)
	}
	return "[ " + strings.Join(items, ", ") + " ]"
}

// MultilineString returns s as a triple-quoted literal, keeping its line
// breaks. A blank string is `""`.
func MultilineString(s string) string {
	if strings.TrimSpace(s) == "" {
		return `""`
	}
	return `"""` + strings.ReplaceAll(doubleBackslashes(s), `"`, `\"`) + `"""`
}
