// Package load reads the country reference dataset.
//
// A dataset is a file tree with one YAML file per country and an optional
// YAML file per country holding its subdivisions:
//
//	countries/US.yaml
//	subdivisions/US.yaml
//
// Countries are returned in file-name order. Subdivisions keep the order in
// which they appear in their file.
package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	countriesDir    = "countries"
	subdivisionsDir = "subdivisions"
	fileExt         = ".yaml"
)

// Dataset is an in-memory snapshot of the reference data.
type Dataset struct {
	Countries []*Country
}

// Lookup returns the country with the given alpha2 code, or nil.
func (d *Dataset) Lookup(alpha2 string) *Country {
	for _, c := range d.Countries {
		if c.Alpha2 == alpha2 {
			return c
		}
	}
	return nil
}

// Dir loads the dataset rooted at the given directory.
func Dir(dir string) (*Dataset, error) {
	return FS(os.DirFS(dir))
}

// FS loads the dataset from the given file system.
func FS(fsys fs.FS) (*Dataset, error) {
	entries, err := fs.ReadDir(fsys, countriesDir)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", countriesDir, err)
	}
	d := &Dataset{}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != fileExt {
			continue
		}
		c, err := loadCountry(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		d.Countries = append(d.Countries, c)
	}
	if len(d.Countries) == 0 {
		return nil, fmt.Errorf("load: no country files found in %s", countriesDir)
	}
	return d, nil
}

func loadCountry(fsys fs.FS, name string) (*Country, error) {
	p := path.Join(countriesDir, name)
	buf, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", p, err)
	}
	c := &Country{}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, fmt.Errorf("load: decoding %s: %w", p, err)
	}
	stem := strings.TrimSuffix(name, fileExt)
	if c.Subdivisions, err = loadSubdivisions(fsys, stem); err != nil {
		return nil, err
	}
	return c, nil
}

// loadSubdivisions decodes through yaml.Node so the mapping keeps its
// document order.
func loadSubdivisions(fsys fs.FS, stem string) ([]*Subdivision, error) {
	p := path.Join(subdivisionsDir, stem+fileExt)
	buf, err := fs.ReadFile(fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", p, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("load: decoding %s: %w", p, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("load: %s: expected a mapping of subdivision codes", p)
	}
	subs := make([]*Subdivision, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		s := &Subdivision{Code: key.Value}
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!null" {
			if err := value.Decode(s); err != nil {
				return nil, fmt.Errorf("load: decoding %s subdivision %q: %w", p, key.Value, err)
			}
		}
		subs = append(subs, s)
	}
	return subs, nil
}
