package gen

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/syssam/countrygen/compiler/load"
)

// Graph is the backend independent result of the pipeline. It is built in
// two phases: all enums are derived from the full dataset first, then the
// country and subdivision functions are built against them. A Graph is not
// modified after NewGraph returns.
type Graph struct {
	*Config

	Enums *Enums
	// Countries holds one function per country, ordered by country name.
	// This is also the order of the generated list of all countries.
	Countries []*Function
	// Subdivisions holds one function per country with subdivisions,
	// ordered by the alpha2 code of the country.
	Subdivisions []*Function
	// Dropped lists the subdivisions left out for having no name.
	Dropped []DroppedSubdivision

	subdivisionsByName map[string]*Function
}

// DroppedSubdivision identifies a subdivision left out of the output.
type DroppedSubdivision struct {
	Country string
	Code    string
}

// NewGraph derives the enums of the dataset and builds every generated
// function. Any error aborts the run; no partial graph is returned.
func NewGraph(c *Config, d *load.Dataset) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	if d == nil || len(d.Countries) == 0 {
		return nil, NewDatasetIntegrityError("", "", "dataset has no countries")
	}
	log := c.logger()
	enums, err := DeriveEnums(d.Countries)
	if err != nil {
		return nil, err
	}
	for _, e := range append(enums.Modules(), enums.StartOfWeek) {
		log.Debug("derived enum", zap.String("enum", e.Name), zap.Strings("members", e.Idents()))
	}
	g := &Graph{
		Config:             c,
		Enums:              enums,
		subdivisionsByName: make(map[string]*Function),
	}
	byName := slices.Clone(d.Countries)
	slices.SortStableFunc(byName, func(a, b *load.Country) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Alpha2, b.Alpha2))
	})
	for _, country := range byName {
		fn, err := BuildCountry(country, enums)
		if err != nil {
			return nil, err
		}
		g.Countries = append(g.Countries, fn)
	}
	byAlpha2 := slices.Clone(d.Countries)
	slices.SortStableFunc(byAlpha2, func(a, b *load.Country) int {
		return cmp.Compare(a.Alpha2, b.Alpha2)
	})
	for _, country := range byAlpha2 {
		fn, dropped, err := BuildSubdivisions(country, CountryFuncName(country.Alpha2))
		if err != nil {
			return nil, err
		}
		if fn == nil {
			continue
		}
		for _, code := range dropped {
			log.Debug("dropped unnamed subdivision", zap.String("country", country.Alpha2), zap.String("code", code))
			g.Dropped = append(g.Dropped, DroppedSubdivision{Country: country.Alpha2, Code: code})
		}
		g.Subdivisions = append(g.Subdivisions, fn)
		g.subdivisionsByName[fn.Name] = fn
	}
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	log.Info("built graph",
		zap.Int("countries", len(g.Countries)),
		zap.Int("subdivision_lists", len(g.Subdivisions)),
		zap.Int("dropped_subdivisions", len(g.Dropped)),
	)
	return g, nil
}

// checkNames verifies that function names are unique and that every
// country record references an existing subdivision function.
func (g *Graph) checkNames() error {
	seen := make(map[string]bool, len(g.Countries)+len(g.Subdivisions))
	for _, fn := range g.Functions() {
		if seen[fn.Name] {
			return NewDatasetIntegrityError("", "alpha2", "duplicate generated function "+fn.Name)
		}
		seen[fn.Name] = true
	}
	for _, fn := range g.Countries {
		if ref := fn.Country.Subdivisions; ref != "" && g.subdivisionsByName[ref] == nil {
			return NewDatasetIntegrityError(fn.Country.Alpha2, "subdivisions", "missing subdivision function "+ref)
		}
	}
	return nil
}

// Functions returns the country functions followed by the subdivision
// functions.
func (g *Graph) Functions() []*Function {
	return append(slices.Clone(g.Countries), g.Subdivisions...)
}

// FunctionNames returns the names of Functions, in the same order.
func (g *Graph) FunctionNames() []string {
	fns := g.Functions()
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = fn.Name
	}
	return names
}

// CountryNames returns the names of the country functions.
func (g *Graph) CountryNames() []string {
	names := make([]string, len(g.Countries))
	for i, fn := range g.Countries {
		names[i] = fn.Name
	}
	return names
}

// SubdivisionNames returns the names of the subdivision functions.
func (g *Graph) SubdivisionNames() []string {
	names := make([]string, len(g.Subdivisions))
	for i, fn := range g.Subdivisions {
		names[i] = fn.Name
	}
	return names
}

// SubdivisionsOf returns the subdivision list referenced by a country
// record. It is empty for countries without subdivisions.
func (g *Graph) SubdivisionsOf(c *CountryRecord) []SubdivisionRecord {
	if fn := g.subdivisionsByName[c.Subdivisions]; fn != nil {
		return fn.Subdivisions
	}
	return nil
}
