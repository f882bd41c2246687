package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syssam/countrygen/compiler/gen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	a.log = zap.NewNop()
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	_, err := execute(t, "--target", target, "--backend", "elm,go,graphql", "--go-package", "example.com/geo/iso3166")
	require.NoError(t, err)

	for _, p := range []string{
		"src/ISO3166.elm",
		"src/ISO3166/Continent.elm",
		"iso3166/iso3166.go",
		"iso3166/worldregion/worldregion.go",
		"graphql/schema.graphql",
	} {
		assert.FileExists(t, filepath.Join(target, filepath.FromSlash(p)))
	}
	m, err := gen.ReadManifest(target)
	require.NoError(t, err)
	assert.Len(t, m.Files, 11)

	elm, err := os.ReadFile(filepath.Join(target, "src", "ISO3166.elm"))
	require.NoError(t, err)
	assert.Contains(t, string(elm), "countryUSSubdivisions : List Subdivision")
}

func TestCheck(t *testing.T) {
	target := t.TempDir()
	_, err := execute(t, "generate", "--target", target)
	require.NoError(t, err)

	out, err := execute(t, "check", "--target", target)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	path := filepath.Join(target, "src", "ISO3166", "Region.elm")
	require.NoError(t, os.WriteFile(path, []byte("module ISO3166.Region exposing (..)\n"), 0o644))
	out, err = execute(t, "check", "--target", target)
	require.Error(t, err)
	assert.Contains(t, out, "src/ISO3166/Region.elm: modified since generation")
}

func TestShow(t *testing.T) {
	t.Run("country", func(t *testing.T) {
		out, err := execute(t, "show", "US")
		require.NoError(t, err)
		assert.Contains(t, out, "name: United States\n")
		assert.Contains(t, out, "subdivisions: countryUSSubdivisions\n")
	})

	t.Run("alpha3 subdivisions", func(t *testing.T) {
		out, err := execute(t, "show", "USA", "--subdivisions")
		require.NoError(t, err)
		assert.Contains(t, out, "name: New York")
	})

	t.Run("subdivision", func(t *testing.T) {
		out, err := execute(t, "show", "US", "NY")
		require.NoError(t, err)
		assert.Contains(t, out, "code: NY\n")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := execute(t, "show", "ZZ")
		assert.ErrorContains(t, err, `no country with code "ZZ"`)
		_, err = execute(t, "show", "US", "ZZ")
		assert.ErrorContains(t, err, `US has no subdivision "ZZ"`)
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out")
	config := filepath.Join(dir, "countrygen.yaml")
	require.NoError(t, os.WriteFile(config, []byte("target: "+target+"\nbackends: [graphql]\nheader: Custom header\n"), 0o644))

	_, err := execute(t, "--config", config)
	require.NoError(t, err)
	schema, err := os.ReadFile(filepath.Join(target, "graphql", "schema.graphql"))
	require.NoError(t, err)
	assert.Contains(t, string(schema), "# Custom header\n")

	t.Run("flags win", func(t *testing.T) {
		other := filepath.Join(dir, "other")
		_, err := execute(t, "--config", config, "--target", other)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(other, "graphql", "schema.graphql"))
	})

	t.Run("unknown key", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("tagret: x\n"), 0o644))
		_, err := execute(t, "--config", bad)
		assert.Error(t, err)
	})
}

func TestOptions(t *testing.T) {
	t.Run("unknown backends are collected", func(t *testing.T) {
		o := defaultOptions()
		o.Backends = []string{"elm", "rust", "cobol"}
		_, err := o.config(zap.NewNop())
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
		assert.ErrorContains(t, err, "rust")
		assert.ErrorContains(t, err, "cobol")
	})

	t.Run("formatter", func(t *testing.T) {
		o := defaultOptions()
		assert.Empty(t, o.formatter())
		o.Format = true
		assert.Equal(t, "elm-format {dir} --yes", o.formatter())
		o.Backends = []string{"go"}
		assert.Empty(t, o.formatter())
		o.Formatter = "gofmt -w {dir}"
		assert.Equal(t, "gofmt -w {dir}", o.formatter())
	})

	t.Run("merge", func(t *testing.T) {
		o := defaultOptions()
		o.Target = "flag"
		o.merge(options{Target: "file", Data: "data", Workers: 2}, func(flag string) bool { return flag == "target" })
		assert.Equal(t, "flag", o.Target)
		assert.Equal(t, "data", o.Data)
		assert.Equal(t, 2, o.Workers)
	})

	t.Run("watch needs a directory", func(t *testing.T) {
		_, err := execute(t, "watch")
		assert.ErrorContains(t, err, "--data")
	})
}
