package gen

// The lookups below define the semantics of the generated lookup helpers:
// a linear scan in the order of the list of all countries, where the first
// match wins. Every backend emits helpers with this behavior.

// FromAlpha2 returns the first country record whose alpha2 code equals code.
func (g *Graph) FromAlpha2(code string) (*CountryRecord, bool) {
	for _, fn := range g.Countries {
		if fn.Country.Alpha2 == code {
			return fn.Country, true
		}
	}
	return nil, false
}

// FromAlpha3 returns the first country record whose alpha3 code equals code.
func (g *Graph) FromAlpha3(code string) (*CountryRecord, bool) {
	for _, fn := range g.Countries {
		if fn.Country.Alpha3 == code {
			return fn.Country, true
		}
	}
	return nil, false
}

// FindSubdivisionByCode returns the first subdivision of c whose code
// equals code.
func (g *Graph) FindSubdivisionByCode(c *CountryRecord, code string) (SubdivisionRecord, bool) {
	for _, s := range g.SubdivisionsOf(c) {
		if s.Code == code {
			return s, true
		}
	}
	return SubdivisionRecord{}, false
}
