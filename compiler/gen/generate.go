package gen

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/syssam/countrygen/compiler/load"
)

// Generate assembles the modules of every configured backend and writes
// them. Nothing is written unless all modules were assembled and passed the
// export check.
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./out"),
//	    gen.WithBackends(elm.New()),
//	)
//	g, err := gen.NewGraph(cfg, dataset)
//	manifest, err := gen.Generate(ctx, g)
func Generate(ctx context.Context, g *Graph) (*Manifest, error) {
	if g.Config == nil || g.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	modules, err := Assemble(g)
	if err != nil {
		return nil, err
	}
	return NewWriter(g.Config).Write(ctx, modules)
}

// Run builds the graph of d and generates it.
func Run(ctx context.Context, c *Config, d *load.Dataset) (*Manifest, error) {
	g, err := NewGraph(c, d)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, g)
}

// Drift describes one output file that differs from a fresh generation.
type Drift struct {
	Path   string
	Reason string
}

// Check assembles the modules of g and compares them with the files in the
// target directory and its manifest. When the output was formatted, file
// contents are compared with the manifest digests only.
func Check(g *Graph) ([]Drift, error) {
	modules, err := Assemble(g)
	if err != nil {
		return nil, err
	}
	m, err := ReadManifest(g.Target)
	if errors.Is(err, fs.ErrNotExist) {
		return []Drift{{Path: ManifestFile, Reason: "missing manifest"}}, nil
	}
	if err != nil {
		return nil, err
	}
	var (
		drifts    []Drift
		formatted = len(g.Formatter) > 0
		seen      = make(map[string]bool, len(modules))
	)
	for _, mod := range modules {
		seen[mod.Path] = true
		entry, ok := m.Entry(mod.Path)
		if !ok {
			drifts = append(drifts, Drift{Path: mod.Path, Reason: "not in manifest"})
			continue
		}
		buf, err := os.ReadFile(filepath.Join(g.Target, filepath.FromSlash(mod.Path)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			drifts = append(drifts, Drift{Path: mod.Path, Reason: "missing file"})
		case err != nil:
			return nil, err
		case digest(buf) != entry.SHA256:
			drifts = append(drifts, Drift{Path: mod.Path, Reason: "modified since generation"})
		case !formatted && !bytes.Equal(buf, mod.Content):
			drifts = append(drifts, Drift{Path: mod.Path, Reason: "out of date"})
		case !slices.Equal(entry.Exports, mod.Exports):
			drifts = append(drifts, Drift{Path: mod.Path, Reason: "exports changed"})
		}
	}
	for _, entry := range m.Files {
		if !seen[entry.Path] {
			drifts = append(drifts, Drift{Path: entry.Path, Reason: "stale file"})
		}
	}
	return drifts, nil
}
