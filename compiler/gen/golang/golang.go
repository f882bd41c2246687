// Package golang renders the country data as a Go package tree: package
// iso3166 with the Country and Subdivision types, lookup helpers and one
// function per country and subdivision list, plus one package per enum.
package golang

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/syssam/countrygen/compiler/gen"
)

// PkgName is the name of the root package.
const PkgName = "iso3166"

// Backend renders the graph as Go source below "iso3166/".
type Backend struct{}

// New returns the Go backend.
func New() *Backend { return &Backend{} }

// Name implements gen.Backend.
func (*Backend) Name() string { return "go" }

// Modules implements gen.Backend. The graph must be configured with the
// import path of the root package.
func (b *Backend) Modules(g *gen.Graph) ([]*gen.Module, error) {
	if g.Package == "" {
		return nil, gen.NewConfigError("Package", nil, "the go backend requires the import path of the generated package")
	}
	h := &helper{graph: g, pkg: g.Package}
	var modules []*gen.Module
	for _, e := range g.Enums.Modules() {
		m, err := h.module(h.enumPkg(e), path.Join(PkgName, enumPkgName(e), enumPkgName(e)+".go"), enumExports(e), genEnum(h, e))
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	m, err := h.module(h.pkg, path.Join(PkgName, PkgName+".go"), rootExports(g), genRoot(h))
	if err != nil {
		return nil, err
	}
	return append(modules, m), nil
}

// helper carries what the file generators share.
type helper struct {
	graph *gen.Graph
	pkg   string
}

func (h *helper) newFile(pkgPath, name string) *jen.File {
	f := jen.NewFilePathName(pkgPath, name)
	f.HeaderComment(h.graph.HeaderComment())
	return f
}

func (h *helper) enumPkg(e *gen.Enum) string {
	return h.pkg + "/" + enumPkgName(e)
}

// module renders f, formats it and collects its exported declarations.
func (h *helper) module(name, file string, exports []string, f *jen.File) (*gen.Module, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewGenerationError("assemble", file, "render go source", err)
	}
	src, err := imports.Process(file, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, gen.NewGenerationError("assemble", file, "format go source", err)
	}
	defs, err := declarations(file, src)
	if err != nil {
		return nil, gen.NewGenerationError("assemble", file, "parse go source", err)
	}
	return &gen.Module{
		Name:        name,
		Path:        file,
		Content:     src,
		Exports:     exports,
		Definitions: defs,
	}, nil
}

// declarations returns the exported package level names declared in src.
// Methods are not package level names and are skipped.
func declarations(file string, src []byte) ([]string, error) {
	f, err := parser.ParseFile(token.NewFileSet(), file, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	var names []string
	add := func(id *ast.Ident) {
		if id.IsExported() {
			names = append(names, id.Name)
		}
	}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				add(d.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					add(s.Name)
				case *ast.ValueSpec:
					for _, id := range s.Names {
						add(id)
					}
				}
			}
		}
	}
	return names, nil
}

// funcName returns the exported Go name of a generated function.
func funcName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func enumPkgName(e *gen.Enum) string {
	return strings.ToLower(e.Name)
}
