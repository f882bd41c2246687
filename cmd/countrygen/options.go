package main

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/syssam/countrygen/compiler/gen"
	"github.com/syssam/countrygen/compiler/gen/elm"
	"github.com/syssam/countrygen/compiler/gen/golang"
	"github.com/syssam/countrygen/compiler/gen/graphql"
	"github.com/syssam/countrygen/compiler/load"
	"github.com/syssam/countrygen/dataset"
)

// options are the settings of one run, from flags or a config file.
type options struct {
	Data       string   `yaml:"data"`
	Target     string   `yaml:"target"`
	Backends   []string `yaml:"backends"`
	GoPackage  string   `yaml:"go_package"`
	Format     bool     `yaml:"format"`
	Formatter  string   `yaml:"formatter"`
	Header     string   `yaml:"header"`
	Workers    int      `yaml:"workers"`
	NoManifest bool     `yaml:"no_manifest"`
}

func defaultOptions() options {
	return options{
		Target:   ".",
		Backends: []string{"elm"},
	}
}

var backends = map[string]func() gen.Backend{
	"elm":     func() gen.Backend { return elm.New() },
	"go":      func() gen.Backend { return golang.New() },
	"graphql": func() gen.Backend { return graphql.New() },
}

func readOptions(path string) (options, error) {
	var o options
	buf, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return o, fmt.Errorf("decode config %s: %w", path, err)
	}
	return o, nil
}

// merge copies the settings of file that were not set on the command line.
func (o *options) merge(file options, changed func(flag string) bool) {
	if !changed("data") && file.Data != "" {
		o.Data = file.Data
	}
	if !changed("target") && file.Target != "" {
		o.Target = file.Target
	}
	if !changed("backend") && len(file.Backends) > 0 {
		o.Backends = file.Backends
	}
	if !changed("go-package") && file.GoPackage != "" {
		o.GoPackage = file.GoPackage
	}
	if !changed("format") && file.Format {
		o.Format = true
	}
	if !changed("formatter") && file.Formatter != "" {
		o.Formatter = file.Formatter
	}
	if !changed("header") && file.Header != "" {
		o.Header = file.Header
	}
	if !changed("workers") && file.Workers > 0 {
		o.Workers = file.Workers
	}
	if !changed("no-manifest") && file.NoManifest {
		o.NoManifest = true
	}
}

// dataset loads the configured dataset, or the embedded one.
func (o *options) dataset() (*load.Dataset, error) {
	if o.Data == "" {
		return dataset.Load()
	}
	return load.Dir(o.Data)
}

// config translates the options into a generator config. All invalid
// options are reported together.
func (o *options) config(log *zap.Logger) (*gen.Config, error) {
	c := &gen.Config{}
	opts := []gen.Option{gen.WithTarget(o.Target), gen.WithLogger(log)}
	for _, name := range o.Backends {
		newBackend, ok := backends[name]
		if !ok {
			opts = append(opts, func(*gen.Config) error {
				return gen.NewConfigError("Backends", name, "unknown backend")
			})
			continue
		}
		opts = append(opts, gen.WithBackends(newBackend()))
	}
	if o.GoPackage != "" {
		opts = append(opts, gen.WithPackage(o.GoPackage))
	}
	if o.Header != "" {
		opts = append(opts, gen.WithHeader(o.Header))
	}
	if o.Workers > 0 {
		opts = append(opts, gen.WithWorkers(o.Workers))
	}
	if o.NoManifest {
		opts = append(opts, gen.WithoutManifest())
	}
	if formatter := o.formatter(); formatter != "" {
		opts = append(opts, gen.WithFormatter(formatter))
	}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// formatter returns the formatter command. --format without --formatter
// runs elm-format when the Elm backend is selected.
func (o *options) formatter() string {
	switch {
	case o.Formatter != "":
		return o.Formatter
	case o.Format && slices.Contains(o.Backends, "elm"):
		return elm.DefaultFormatter
	}
	return ""
}
