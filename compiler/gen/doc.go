// Package gen turns the ISO 3166 country dataset into typed source modules.
//
// The package owns the language independent half of the generator: it
// derives closed enums from the categorical fields of the dataset, builds
// one zero-argument function per country and per subdivision list, and
// hands the result to the configured backends, which render it as source
// text. Writing the rendered modules to disk is left to the Writer.
//
// # Architecture
//
// The pipeline follows this flow:
//
//	Dataset (countries/*.yaml, subdivisions/*.yaml)
//	        ↓
//	   load.Dataset
//	        ↓
//	   Enums (derived once, from all countries)
//	        ↓
//	   Graph (country and subdivision functions)
//	        ↓
//	   Backend.Modules (elm, go, graphql)
//	        ↓
//	   CheckModule (exports == definitions)
//	        ↓
//	   Writer (parallel writes, formatter, manifest)
//
// Every phase is fail-fast. A run that fails before the Writer leaves the
// target directory untouched.
//
// # Key Types
//
//   - Enum: a closed set of constructors derived from one field
//   - Function: a generated function, its body kept as typed data
//   - Graph: enums and functions of one dataset, in output order
//   - Module: one rendered file with its export and definition lists
//   - Backend: renders a Graph in one target language
//   - Config: global configuration of a run
//
// # Error Handling
//
// Failures are reported with structured error types:
//
//   - DatasetIntegrityError: a record the generator cannot use
//   - IdentifierCollisionError: two labels with one identifier
//   - EmptyEnumError: an enum without members
//   - ExportMismatchError: exports and definitions of a module differ
//   - ConfigError: invalid configuration
//   - GenerationError: assembling, writing or formatting failed
//
// Example error handling:
//
//	g, err := gen.NewGraph(cfg, dataset)
//	if err != nil {
//	    if gen.IsIdentifierCollisionError(err) {
//	        // Two labels of the dataset sanitize to one identifier.
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./out"),
//	    gen.WithBackends(elm.New(), golang.New()),
//	    gen.WithPackage("github.com/org/project/iso3166"),
//	    gen.WithFormatter("elm-format {dir} --yes"),
//	)
//
// # Generated Output
//
// With all backends enabled, the target directory holds:
//
//	{target}/
//	├── .countrygen.manifest        // run manifest, written last
//	├── src/
//	│   ├── ISO3166.elm             // records, lookups, one function per country
//	│   └── ISO3166/
//	│       └── {Enum}.elm          // Continent, Region, Subregion, WorldRegion
//	├── iso3166/
//	│   ├── iso3166.go
//	│   └── {enum}/{enum}.go
//	└── graphql/
//	    └── schema.graphql
package gen
