// Package dataset embeds the default country reference data.
package dataset

import (
	"embed"

	"github.com/syssam/countrygen/compiler/load"
)

// FS holds the countries/ and subdivisions/ trees.
//
//go:embed countries subdivisions
var FS embed.FS

// Load decodes the embedded dataset.
func Load() (*load.Dataset, error) {
	return load.FS(FS)
}
