package gen

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NoneIdent is the identifier used for blank or absent category labels.
const NoneIdent = "None"

const (
	countryFuncPrefix     = "country"
	subdivisionFuncSuffix = "Subdivisions"
)

var validIdent = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Sanitize converts a human readable label into a type or constructor
// identifier. "Latin America and the Caribbean" becomes
// "LatinAmericaAndTheCaribbean", "Côte d'Ivoire" becomes "CoteDIvoire"
// and a blank label becomes NoneIdent.
func Sanitize(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return NoneIdent
	}
	// transform.Chain is stateful, build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, label); err == nil {
		label = folded
	}
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return NoneIdent
	}
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return inflect.Camelize(strings.Join(words, "_"))
}

// ValidIdent reports if s can be used as an exported identifier by every
// backend: an upper-case ASCII letter followed by ASCII letters or digits.
func ValidIdent(s string) bool {
	return validIdent.MatchString(s)
}

// WeekdayAbbrev returns the three letter weekday abbreviation of a label,
// "monday" becomes "Mon".
func WeekdayAbbrev(label string) string {
	s := []rune(Sanitize(label))
	if len(s) > 3 {
		s = s[:3]
	}
	return string(s)
}

// CountryFuncName returns the name of the function generated for the
// country with the given alpha2 code.
func CountryFuncName(alpha2 string) string {
	return countryFuncPrefix + alpha2
}

// SubdivisionFuncName returns the name of the subdivision list function
// that belongs to the given country function.
func SubdivisionFuncName(countryFunc string) string {
	return countryFunc + subdivisionFuncSuffix
}
