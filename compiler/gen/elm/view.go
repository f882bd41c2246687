package elm

import (
	"bytes"
	"strings"

	"github.com/syssam/countrygen/compiler/gen"
)

// field is one `name = value` pair of a record literal. Value is Elm
// source text, already escaped.
type field struct {
	Name  string
	Value string
}

type functionView struct {
	Name      string
	Doc       string
	Signature string
	Body      string
}

func newFunctionView(fn *gen.Function) (functionView, error) {
	v := functionView{Name: fn.Name, Doc: docText(fn.Doc)}
	var (
		buf bytes.Buffer
		err error
	)
	switch fn.Returns {
	case gen.ReturnCountry:
		v.Signature = "Country"
		err = templates.ExecuteTemplate(&buf, "record", countryFields(fn.Country))
	case gen.ReturnSubdivisions:
		v.Signature = "List Subdivision"
		err = templates.ExecuteTemplate(&buf, "list", subdivisionFields(fn.Subdivisions))
	default:
		return v, gen.NewGenerationError("assemble", fn.Name, "unknown return kind", nil)
	}
	if err != nil {
		return v, gen.NewGenerationError("assemble", fn.Name, "execute function template", err)
	}
	v.Body = buf.String()
	return v, nil
}

func countryFields(r *gen.CountryRecord) []field {
	subdivisions := "[]"
	if r.Subdivisions != "" {
		subdivisions = r.Subdivisions
	}
	return []field{
		{"addressFormat", gen.MultilineString(r.AddressFormat)},
		{"alpha2", gen.Quote(r.Alpha2)},
		{"alpha3", gen.Quote(r.Alpha3)},
		{"continent", qualified(gen.EnumContinent, r.Continent)},
		{"countryCode", gen.Quote(r.CountryCode)},
		{"currencyCode", gen.Quote(r.CurrencyCode)},
		{"emoji", gen.Quote(r.Emoji)},
		{"gec", gen.Quote(r.GEC)},
		{"internationalPrefix", gen.Quote(r.InternationalPrefix)},
		{"ioc", gen.Quote(r.IOC)},
		{"languagesOfficial", gen.QuoteList(r.LanguagesOfficial)},
		{"languagesSpoken", gen.QuoteList(r.LanguagesSpoken)},
		{"localNames", gen.QuoteList(r.LocalNames)},
		{"name", gen.Quote(r.Name)},
		{"nanpPrefix", gen.Quote(r.NANPPrefix)},
		{"nationalDestinationCodeLengths", gen.IntList(r.NationalDestinationCodeLengths)},
		{"nationalNumberLengths", gen.IntList(r.NationalNumberLengths)},
		{"nationalPrefix", gen.Quote(r.NationalPrefix)},
		{"nationality", gen.Quote(r.Nationality)},
		{"number", gen.Quote(r.Number)},
		{"postalCode", boolLit(r.PostalCode)},
		{"postalCodeFormat", gen.QuotePattern(r.PostalCodeFormat)},
		{"region", qualified(gen.EnumRegion, r.Region)},
		{"startOfWeek", qualified("Time", r.StartOfWeek)},
		{"subdivisions", subdivisions},
		{"subregion", qualified(gen.EnumSubregion, r.Subregion)},
		{"unLocode", gen.Quote(r.UNLocode)},
		{"unofficialNames", gen.QuoteList(r.UnofficialNames)},
		{"worldRegion", qualified(gen.EnumWorldRegion, r.WorldRegion)},
	}
}

func subdivisionFields(subs []gen.SubdivisionRecord) [][]field {
	out := make([][]field, len(subs))
	for i, s := range subs {
		out[i] = []field{
			{"name", gen.Quote(s.Name)},
			{"code", gen.Quote(s.Code)},
			{"unofficialNames", gen.QuoteList(s.UnofficialNames)},
		}
	}
	return out
}

func qualified(module, ident string) string {
	return module + "." + ident
}

func boolLit(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// docText keeps free text from closing the surrounding doc comment.
func docText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-}", "- }")
}
