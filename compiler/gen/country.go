package gen

import (
	"strings"

	"github.com/syssam/countrygen/compiler/load"
)

// BuildCountry builds the country function of c. Enum fields are resolved
// against enums, which must have been derived from a dataset containing c.
func BuildCountry(c *load.Country, enums *Enums) (*Function, error) {
	alpha2 := strings.TrimSpace(c.Alpha2)
	if alpha2 == "" {
		return nil, NewDatasetIntegrityError(c.Name, "alpha2", "missing alpha2 code")
	}
	if !ValidIdent(alpha2) {
		return nil, NewDatasetIntegrityError(alpha2, "alpha2", "alpha2 code must be upper-case letters or digits")
	}
	r := &CountryRecord{
		AddressFormat:                  c.AddressFormat,
		Alpha2:                         alpha2,
		Alpha3:                         c.Alpha3,
		CountryCode:                    c.CountryCode,
		CurrencyCode:                   c.CurrencyCode,
		Emoji:                          c.Emoji(),
		GEC:                            c.GEC,
		InternationalPrefix:            c.InternationalPrefix,
		IOC:                            c.IOC,
		LanguagesOfficial:              nonNil(c.LanguagesOfficial),
		LanguagesSpoken:                nonNil(c.LanguagesSpoken),
		LocalNames:                     nonBlank(c.LocalNames),
		Name:                           c.Name,
		NANPPrefix:                     c.NANPPrefix,
		NationalDestinationCodeLengths: nonNilInts(c.NationalDestinationCodeLengths),
		NationalNumberLengths:          nonNilInts(c.NationalNumberLengths),
		NationalPrefix:                 c.NationalPrefix,
		Nationality:                    c.Nationality,
		Number:                         c.Number,
		PostalCode:                     c.PostalCode,
		UNLocode:                       c.UNLocode,
		UnofficialNames:                nonNil(c.UnofficialNames),
	}
	if strings.TrimSpace(r.AddressFormat) == "" {
		r.AddressFormat = ""
	}
	if c.PostalCode {
		r.PostalCodeFormat = c.PostalCodeFormat
	}
	var err error
	for _, f := range []struct {
		enum  *Enum
		label string
		dst   *string
	}{
		{enums.Continent, c.Continent, &r.Continent},
		{enums.Region, c.Region, &r.Region},
		{enums.Subregion, c.Subregion, &r.Subregion},
		{enums.WorldRegion, c.WorldRegion, &r.WorldRegion},
		{enums.StartOfWeek, startOfWeek(c), &r.StartOfWeek},
	} {
		if *f.dst, err = f.enum.Ident(f.label); err != nil {
			return nil, withCountry(err, alpha2)
		}
	}
	r.StartOfWeek = WeekdayAbbrev(r.StartOfWeek)
	name := CountryFuncName(alpha2)
	if c.HasSubdivisions() {
		r.Subdivisions = SubdivisionFuncName(name)
	}
	return &Function{
		Name:    name,
		Doc:     c.Name,
		Returns: ReturnCountry,
		Country: r,
	}, nil
}

func withCountry(err error, alpha2 string) error {
	if e, ok := err.(*DatasetIntegrityError); ok && e.Country == "" {
		e.Country = alpha2
	}
	return err
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilInts(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}

// nonBlank drops blank entries. A dataset entry that is only whitespace
// carries no name.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
