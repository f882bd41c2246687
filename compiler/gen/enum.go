package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/countrygen/compiler/load"
)

// Enum names. They double as the Elm type names and, lower-cased, as the
// Go package names of the enum modules.
const (
	EnumContinent   = "Continent"
	EnumRegion      = "Region"
	EnumSubregion   = "Subregion"
	EnumWorldRegion = "WorldRegion"
	EnumStartOfWeek = "StartOfWeek"
)

// DefaultStartOfWeek is used for countries without a start_of_week value.
const DefaultStartOfWeek = "monday"

// weekdays lists the valid StartOfWeek identifiers, in time.Weekday order.
var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Member is one constructor of an enum.
type Member struct {
	Label string // trimmed dataset label, empty for the None sentinel
	Ident string
}

// Enum is a closed set of constructors derived from one categorical field.
type Enum struct {
	Name    string
	Members []Member

	byLabel map[string]string
}

// DeriveEnum derives an enum from the values of one categorical field.
// Blank values map to the None sentinel. Members are sorted by identifier.
// Two labels sharing an identifier are reported as an
// IdentifierCollisionError and an enum without members as an EmptyEnumError.
func DeriveEnum(name string, values []string) (*Enum, error) {
	var (
		byLabel = make(map[string]string)
		byIdent = make(map[string]string)
	)
	for _, v := range values {
		label := strings.TrimSpace(v)
		if _, ok := byLabel[label]; ok {
			continue
		}
		ident := Sanitize(label)
		if !ValidIdent(ident) {
			return nil, NewDatasetIntegrityError("", name, fmt.Sprintf("label %q yields invalid identifier %q", label, ident))
		}
		if prev, ok := byIdent[ident]; ok {
			return nil, NewIdentifierCollisionError(name, ident, prev, label)
		}
		byLabel[label] = ident
		byIdent[ident] = label
	}
	if len(byIdent) == 0 {
		return nil, &EmptyEnumError{Enum: name}
	}
	e := &Enum{Name: name, byLabel: byLabel}
	for ident, label := range byIdent {
		e.Members = append(e.Members, Member{Label: label, Ident: ident})
	}
	slices.SortFunc(e.Members, func(a, b Member) int {
		return strings.Compare(a.Ident, b.Ident)
	})
	return e, nil
}

// Ident returns the identifier of the member derived from label. Labels
// outside the derived set are a DatasetIntegrityError; the enum is never
// extended after derivation.
func (e *Enum) Ident(label string) (string, error) {
	ident, ok := e.byLabel[strings.TrimSpace(label)]
	if !ok {
		return "", NewDatasetIntegrityError("", e.Name, fmt.Sprintf("label %q is not a member of the derived enum", label))
	}
	return ident, nil
}

// Idents returns the member identifiers in canonical order.
func (e *Enum) Idents() []string {
	idents := make([]string, len(e.Members))
	for i, m := range e.Members {
		idents[i] = m.Ident
	}
	return idents
}

// Enums holds every enum referenced by the country records. They are
// derived once per graph, before any record is built.
type Enums struct {
	Continent   *Enum
	Region      *Enum
	Subregion   *Enum
	WorldRegion *Enum
	StartOfWeek *Enum
}

// Modules returns the enums that are emitted as modules of their own.
// StartOfWeek maps onto the target language's weekday type instead.
func (e *Enums) Modules() []*Enum {
	return []*Enum{e.Continent, e.Region, e.Subregion, e.WorldRegion}
}

// DeriveEnums derives all enums from the full list of countries.
func DeriveEnums(countries []*load.Country) (*Enums, error) {
	field := func(f func(*load.Country) string) []string {
		values := make([]string, len(countries))
		for i, c := range countries {
			values[i] = f(c)
		}
		return values
	}
	var (
		enums = &Enums{}
		err   error
	)
	if enums.Continent, err = DeriveEnum(EnumContinent, field(func(c *load.Country) string { return c.Continent })); err != nil {
		return nil, err
	}
	if enums.Region, err = DeriveEnum(EnumRegion, field(func(c *load.Country) string { return c.Region })); err != nil {
		return nil, err
	}
	if enums.Subregion, err = DeriveEnum(EnumSubregion, field(func(c *load.Country) string { return c.Subregion })); err != nil {
		return nil, err
	}
	if enums.WorldRegion, err = DeriveEnum(EnumWorldRegion, field(func(c *load.Country) string { return c.WorldRegion })); err != nil {
		return nil, err
	}
	if enums.StartOfWeek, err = DeriveEnum(EnumStartOfWeek, field(startOfWeek)); err != nil {
		return nil, err
	}
	for _, m := range enums.StartOfWeek.Members {
		if !slices.Contains(weekdays, m.Ident) {
			return nil, NewDatasetIntegrityError("", EnumStartOfWeek, fmt.Sprintf("%q is not a weekday", m.Label))
		}
	}
	return enums, nil
}

func startOfWeek(c *load.Country) string {
	if strings.TrimSpace(c.StartOfWeek) == "" {
		return DefaultStartOfWeek
	}
	return c.StartOfWeek
}

// WeekdayIndex returns the time.Weekday value of a three letter weekday
// abbreviation, or -1.
func WeekdayIndex(abbrev string) int {
	for i, d := range weekdays {
		if d[:3] == abbrev {
			return i
		}
	}
	return -1
}
