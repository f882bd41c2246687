// Package elm assembles the Elm modules of the generated country data: the
// ISO3166 module with the record types, lookup helpers and one function per
// country and subdivision list, and one module per enum.
package elm

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/syssam/countrygen/compiler/gen"
)

// RootModule is the name of the umbrella module.
const RootModule = "ISO3166"

// DefaultFormatter is the formatter command usually run on the Elm output.
const DefaultFormatter = "elm-format {dir} --yes"

var (
	//go:embed template/*.tmpl
	templateFS embed.FS

	templates = template.Must(template.New("elm").
			Funcs(template.FuncMap{"join": strings.Join}).
			ParseFS(templateFS, "template/*.tmpl"))
)

var enumDocs = map[string]string{
	gen.EnumContinent:   "The continent of a country.",
	gen.EnumRegion:      "The region of a country.",
	gen.EnumSubregion:   "The subregion of a country.",
	gen.EnumWorldRegion: "The world region of a country.",
}

// Backend renders the graph as Elm modules below "src/".
type Backend struct {
	root string
}

// New returns the Elm backend.
func New() *Backend {
	return &Backend{root: RootModule}
}

// Name implements gen.Backend.
func (*Backend) Name() string { return "elm" }

// Modules implements gen.Backend.
func (b *Backend) Modules(g *gen.Graph) ([]*gen.Module, error) {
	var modules []*gen.Module
	for _, e := range g.Enums.Modules() {
		m, err := b.enumModule(e)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	m, err := b.umbrellaModule(g)
	if err != nil {
		return nil, err
	}
	return append(modules, m), nil
}

func (b *Backend) enumModule(e *gen.Enum) (*gen.Module, error) {
	name := b.root + "." + e.Name
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "enum", struct {
		Module, Type, Doc string
		Members           []string
	}{
		Module:  name,
		Type:    e.Name,
		Doc:     enumDocs[e.Name],
		Members: e.Idents(),
	}); err != nil {
		return nil, gen.NewGenerationError("assemble", name, "execute enum template", err)
	}
	return newModule(name, "src/"+b.root+"/"+e.Name+".elm", buf.Bytes(), e.Idents())
}

func (b *Backend) umbrellaModule(g *gen.Graph) (*gen.Module, error) {
	functions := make([]functionView, 0, len(g.Countries)+len(g.Subdivisions))
	for _, fn := range g.Functions() {
		v, err := newFunctionView(fn)
		if err != nil {
			return nil, err
		}
		functions = append(functions, v)
	}
	exports := append([]string{"Country", "Subdivision", "all", "findSubdivisionByCode", "fromAlpha2", "fromAlpha3"}, g.FunctionNames()...)
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "umbrella", struct {
		Module       string
		Exports      []string
		Countries    []string
		Subdivisions []string
		Functions    []functionView
		Dropped      int
	}{
		Module:       b.root,
		Exports:      exports,
		Countries:    g.CountryNames(),
		Subdivisions: g.SubdivisionNames(),
		Functions:    functions,
		Dropped:      len(g.Dropped),
	}); err != nil {
		return nil, gen.NewGenerationError("assemble", b.root, "execute umbrella template", err)
	}
	return newModule(b.root, "src/"+b.root+".elm", buf.Bytes(), nil)
}

// newModule scans the rendered source for its exports and definitions.
// constructors lists the constructors exposed through T(..).
func newModule(name, path string, src []byte, constructors []string) (*gen.Module, error) {
	p, err := scan(src)
	if err != nil {
		return nil, gen.NewGenerationError("assemble", path, "scan module", err)
	}
	if p.module != name {
		return nil, gen.NewGenerationError("assemble", path, "module declares "+p.module, nil)
	}
	// The @docs lists document exactly the exposed names.
	if err := gen.CheckModule(&gen.Module{Name: name + " @docs", Exports: p.exposing, Definitions: p.docs}); err != nil {
		return nil, err
	}
	exports := append([]string(nil), p.exposing...)
	if p.open {
		exports = append(exports, constructors...)
	}
	return &gen.Module{
		Name:        name,
		Path:        path,
		Content:     src,
		Exports:     exports,
		Definitions: append(p.definitions, p.constructors...),
	}, nil
}
