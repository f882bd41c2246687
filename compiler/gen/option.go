package gen

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Option configures a generation run.
type Option func(*Config) error

// WithHeader sets the header comment of generated files. Formats without
// comments before the module declaration ignore it. An empty header
// restores DefaultHeader.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path of the Go backend output.
// For example: "github.com/org/project/iso3166".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithBackends adds backends. Backend names must be unique.
func WithBackends(backends ...Backend) Option {
	return func(c *Config) error {
		for _, b := range backends {
			if b == nil {
				return NewConfigError("Backends", nil, "backend cannot be nil")
			}
			for _, existing := range c.Backends {
				if existing.Name() == b.Name() {
					return NewConfigError("Backends", b.Name(), "duplicate backend")
				}
			}
			c.Backends = append(c.Backends, b)
		}
		return nil
	}
}

// WithFormatter sets the command run on the target directory after writing,
// e.g. "elm-format {dir} --yes".
func WithFormatter(command string) Option {
	return func(c *Config) error {
		args := strings.Fields(command)
		if len(args) == 0 {
			return NewConfigError("Formatter", command, "formatter command cannot be empty")
		}
		c.Formatter = args
		return nil
	}
}

// WithWorkers sets the number of parallel file writers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithoutManifest disables writing the run manifest.
func WithoutManifest() Option {
	return func(c *Config) error {
		c.NoManifest = true
		return nil
	}
}

// WithLogger sets the logger used for processing logs.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies opts in order and stops at the first failing option.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies every option and joins the errors of all failing ones.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig returns a Config built from opts.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig is like NewConfig but panics on an invalid option.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
