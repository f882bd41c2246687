package gen

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultHeader is the header comment of generated files that support one.
const DefaultHeader = "Code generated by countrygen. DO NOT EDIT."

// Config holds the global configuration of a generation run.
type Config struct {
	// Target is the output directory. Backends write below it.
	Target string
	// Package is the import path of the Go backend output, e.g.
	// "github.com/org/project/iso3166".
	Package string
	// Header is the header comment of generated files.
	Header string
	// Backends render the graph. At least one is required to generate.
	Backends []Backend
	// Formatter is an optional command run on the target directory after
	// all files were written. "{dir}" in an argument is replaced by the
	// target directory.
	Formatter []string
	// Workers bounds the parallel file writes.
	Workers int
	// NoManifest disables the run manifest.
	NoManifest bool
	// Logger receives processing logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// OutputConfig groups the settings that decide where and how files are written.
type OutputConfig struct {
	Target  string
	Package string
	Header  string
}

// Output returns the grouped output settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// HeaderComment returns the configured header, or DefaultHeader.
func (c *Config) HeaderComment() string {
	if c == nil || c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

func (c *Config) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
