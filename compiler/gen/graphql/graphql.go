// Package graphql renders the types of the country data as a GraphQL schema.
// The schema is built as a gqlparser document, printed with the gqlparser
// formatter and validated before it is handed to the writer.
package graphql

import (
	"bytes"
	"time"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/countrygen/compiler/gen"
)

// SchemaFile is the output path of the schema.
const SchemaFile = "graphql/schema.graphql"

// Names of the types that do not come from a derived enum.
const (
	Weekday     = "Weekday"
	Alpha2Code  = "Alpha2Code"
	Country     = "Country"
	Subdivision = "Subdivision"
	Query       = "Query"
)

// Backend renders the graph as one schema file.
type Backend struct{}

// New returns the GraphQL backend.
func New() *Backend { return &Backend{} }

// Name implements gen.Backend.
func (*Backend) Name() string { return "graphql" }

// Modules implements gen.Backend.
func (*Backend) Modules(g *gen.Graph) ([]*gen.Module, error) {
	doc := schema(g)
	var buf bytes.Buffer
	buf.WriteString("# " + g.HeaderComment() + "\n\n")
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)

	src := &ast.Source{Name: SchemaFile, Input: buf.String()}
	if _, err := gqlparser.LoadSchema(src); err != nil {
		return nil, gen.NewGenerationError("assemble", SchemaFile, "validate schema", err)
	}
	parsed, err := parser.ParseSchema(src)
	if err != nil {
		return nil, gen.NewGenerationError("assemble", SchemaFile, "parse schema", err)
	}
	return []*gen.Module{{
		Name:        "schema",
		Path:        SchemaFile,
		Content:     buf.Bytes(),
		Exports:     exports(doc),
		Definitions: exports(parsed),
	}}, nil
}

// exports lists the type names of doc and the values of its enums, the
// latter qualified with their type name.
func exports(doc *ast.SchemaDocument) []string {
	var names []string
	for _, d := range doc.Definitions {
		names = append(names, d.Name)
		for _, v := range d.EnumValues {
			names = append(names, d.Name+"."+v.Name)
		}
	}
	return names
}

func schema(g *gen.Graph) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, e := range g.Enums.Modules() {
		doc.Definitions = append(doc.Definitions, enum(e))
	}
	doc.Definitions = append(doc.Definitions, weekday(), alpha2Code(g), country(g), subdivision(), query())
	return doc
}

func enum(e *gen.Enum) *ast.Definition {
	d := &ast.Definition{
		Kind:        ast.Enum,
		Name:        e.Name,
		Description: enumDocs[e.Name],
	}
	for _, m := range e.Members {
		desc := m.Label
		if desc == "" {
			desc = "Not assigned in the source data."
		}
		d.EnumValues = append(d.EnumValues, &ast.EnumValueDefinition{Name: m.Ident, Description: desc})
	}
	return d
}

var enumDocs = map[string]string{
	gen.EnumContinent:   "The continent of a country.",
	gen.EnumRegion:      "The region of a country.",
	gen.EnumSubregion:   "The subregion of a country.",
	gen.EnumWorldRegion: "The world region of a country.",
}

// weekday declares the days of the week, Monday first.
func weekday() *ast.Definition {
	d := &ast.Definition{Kind: ast.Enum, Name: Weekday, Description: "A day of the week."}
	for i := range 7 {
		day := time.Weekday((i + 1) % 7).String()
		d.EnumValues = append(d.EnumValues, &ast.EnumValueDefinition{Name: day[:3], Description: day})
	}
	return d
}

func alpha2Code(g *gen.Graph) *ast.Definition {
	d := &ast.Definition{Kind: ast.Enum, Name: Alpha2Code, Description: "The ISO 3166-1 alpha2 codes of the dataset."}
	for _, fn := range g.Countries {
		d.EnumValues = append(d.EnumValues, &ast.EnumValueDefinition{Name: fn.Country.Alpha2, Description: fn.Country.Name})
	}
	return d
}

func country(g *gen.Graph) *ast.Definition {
	enums := g.Enums
	return &ast.Definition{
		Kind:        ast.Object,
		Name:        Country,
		Description: "A country of ISO 3166-1. addressFormat is a Liquid template, empty when unknown.",
		Fields: ast.FieldList{
			field("addressFormat", str()),
			field("alpha2", nonNull(Alpha2Code)),
			field("alpha3", str()),
			field("continent", nonNull(enums.Continent.Name)),
			field("countryCode", str()),
			field("currencyCode", str()),
			field("emoji", str()),
			field("gec", str()),
			field("internationalPrefix", str()),
			field("ioc", str()),
			field("languagesOfficial", strList()),
			field("languagesSpoken", strList()),
			field("localNames", strList()),
			field("name", str()),
			field("nanpPrefix", str()),
			field("nationalDestinationCodeLengths", intList()),
			field("nationalNumberLengths", intList()),
			field("nationalPrefix", str()),
			field("nationality", str()),
			field("number", str()),
			field("postalCode", nonNull("Boolean")),
			field("postalCodeFormat", str()),
			field("region", nonNull(enums.Region.Name)),
			field("startOfWeek", nonNull(Weekday)),
			field("subdivisions", ast.NonNullListType(nonNull(Subdivision), nil)),
			field("subregion", nonNull(enums.Subregion.Name)),
			field("unLocode", str()),
			field("unofficialNames", strList()),
			field("worldRegion", nonNull(enums.WorldRegion.Name)),
		},
	}
}

func subdivision() *ast.Definition {
	return &ast.Definition{
		Kind:        ast.Object,
		Name:        Subdivision,
		Description: "A subdivision of ISO 3166-2. Subdivisions without a name in the source data are not included.",
		Fields: ast.FieldList{
			field("name", str()),
			field("code", str()),
			field("unofficialNames", strList()),
		},
	}
}

func query() *ast.Definition {
	code := func(t *ast.Type) *ast.ArgumentDefinition {
		return &ast.ArgumentDefinition{Name: "code", Type: t}
	}
	return &ast.Definition{
		Kind: ast.Object,
		Name: Query,
		Fields: ast.FieldList{
			{
				Name:        "countries",
				Description: "All countries, ordered by name.",
				Type:        ast.NonNullListType(nonNull(Country), nil),
			},
			{
				Name:        "fromAlpha2",
				Description: "The first country with the given alpha2 code.",
				Arguments:   ast.ArgumentDefinitionList{code(str())},
				Type:        ast.NamedType(Country, nil),
			},
			{
				Name:        "fromAlpha3",
				Description: "The first country with the given alpha3 code.",
				Arguments:   ast.ArgumentDefinitionList{code(str())},
				Type:        ast.NamedType(Country, nil),
			},
			{
				Name:        "findSubdivisionByCode",
				Description: "The first subdivision of a country with the given code.",
				Arguments: ast.ArgumentDefinitionList{
					{Name: "alpha2", Type: nonNull(Alpha2Code)},
					code(str()),
				},
				Type: ast.NamedType(Subdivision, nil),
			},
		},
	}
}

func field(name string, t *ast.Type) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: name, Type: t}
}

func nonNull(name string) *ast.Type { return ast.NonNullNamedType(name, nil) }

func str() *ast.Type { return nonNull("String") }

func strList() *ast.Type { return ast.NonNullListType(str(), nil) }

func intList() *ast.Type { return ast.NonNullListType(nonNull("Int"), nil) }
