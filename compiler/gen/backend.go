package gen

// Module is one assembled output artifact.
type Module struct {
	// Name is the logical module name, e.g. "ISO3166.Continent".
	Name string
	// Path is the slash separated output path relative to Config.Target.
	Path string
	// Content is the complete module text.
	Content []byte
	// Exports lists the public names the module declares.
	Exports []string
	// Definitions lists the public names the module defines. Backends
	// collect them from Content, not from the graph.
	Definitions []string
}

// Backend assembles the module texts of one target language.
type Backend interface {
	// Name returns the backend name used on the command line, e.g. "elm".
	Name() string
	// Modules assembles every module of the backend. Modules must not
	// perform I/O; writing is left to the Writer.
	Modules(g *Graph) ([]*Module, error)
}

// Assemble runs every configured backend and checks each module for
// export/definition consistency. Nothing is written.
func Assemble(g *Graph) ([]*Module, error) {
	if len(g.Backends) == 0 {
		return nil, NewConfigError("Backends", nil, "no backend configured")
	}
	var (
		all   []*Module
		paths = make(map[string]string)
	)
	for _, b := range g.Backends {
		modules, err := b.Modules(g)
		if err != nil {
			return nil, NewGenerationError("assemble", "", "backend "+b.Name(), err)
		}
		for _, m := range modules {
			if err := CheckModule(m); err != nil {
				return nil, err
			}
			if prev, ok := paths[m.Path]; ok {
				return nil, NewGenerationError("assemble", m.Path, "path written by both "+prev+" and "+m.Name, nil)
			}
			paths[m.Path] = m.Name
			all = append(all, m)
		}
		g.logger().Debug("assembled backend", zapBackend(b), zapModules(modules))
	}
	return all, nil
}
