package gen

import (
	"slices"

	"go.uber.org/zap"
)

// CheckModule verifies that every exported name of m has exactly one
// definition and every definition is exported. Any difference is returned
// as an ExportMismatchError.
func CheckModule(m *Module) error {
	var (
		exports = count(m.Exports)
		defs    = count(m.Definitions)
		err     = &ExportMismatchError{Module: m.Name}
	)
	for name, n := range exports {
		if defs[name] == 0 {
			err.Undefined = append(err.Undefined, name)
		} else if n > 1 || defs[name] > 1 {
			err.Duplicated = append(err.Duplicated, name)
		}
	}
	for name := range defs {
		if exports[name] == 0 {
			err.Unexported = append(err.Unexported, name)
		}
	}
	if len(err.Undefined)+len(err.Unexported)+len(err.Duplicated) == 0 {
		return nil
	}
	slices.Sort(err.Undefined)
	slices.Sort(err.Unexported)
	slices.Sort(err.Duplicated)
	return err
}

func count(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for _, n := range names {
		m[n]++
	}
	return m
}

func zapBackend(b Backend) zap.Field {
	return zap.String("backend", b.Name())
}

func zapModules(modules []*Module) zap.Field {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return zap.Strings("modules", names)
}
