package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ManifestFile is the name of the run manifest in the target directory.
// It is written after every other file, so its presence marks a complete
// output set.
const ManifestFile = ".countrygen.manifest"

// Generator identifies the producer of a manifest.
const Generator = "countrygen"

// Manifest describes one complete generation run.
type Manifest struct {
	RunID     string          `msgpack:"run_id"`
	Generator string          `msgpack:"generator"`
	Files     []ManifestEntry `msgpack:"files"`
}

// ManifestEntry describes one written module.
type ManifestEntry struct {
	Module  string   `msgpack:"module"`
	Path    string   `msgpack:"path"`
	SHA256  string   `msgpack:"sha256"`
	Exports []string `msgpack:"exports"`
}

// Entry returns the entry of the given path.
func (m *Manifest) Entry(path string) (ManifestEntry, bool) {
	i := slices.IndexFunc(m.Files, func(e ManifestEntry) bool { return e.Path == path })
	if i < 0 {
		return ManifestEntry{}, false
	}
	return m.Files[i], true
}

// ReadManifest reads the manifest of the given target directory.
// A missing manifest is reported with an error wrapping fs.ErrNotExist.
func ReadManifest(target string) (*Manifest, error) {
	buf, err := os.ReadFile(filepath.Join(target, ManifestFile))
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := msgpack.Unmarshal(buf, m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// newManifest digests the files of modules as they are on disk, after the
// formatter ran.
func newManifest(target string, modules []*Module) (*Manifest, error) {
	m := &Manifest{
		RunID:     uuid.NewString(),
		Generator: Generator,
		Files:     make([]ManifestEntry, 0, len(modules)),
	}
	for _, mod := range modules {
		sum, err := fileDigest(filepath.Join(target, filepath.FromSlash(mod.Path)))
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, ManifestEntry{
			Module:  mod.Name,
			Path:    mod.Path,
			SHA256:  sum,
			Exports: slices.Clone(mod.Exports),
		})
	}
	return m, nil
}

// writeManifest writes m through a temporary file and a rename.
func writeManifest(target string, m *Manifest) error {
	buf, err := msgpack.Marshal(m)
	if err != nil {
		return err
	}
	tmp := filepath.Join(target, ManifestFile+".tmp")
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(target, ManifestFile))
}

// removeManifest removes the manifest of a previous run.
func removeManifest(target string) error {
	err := os.Remove(filepath.Join(target, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func fileDigest(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return digest(buf), nil
}

func digest(buf []byte) string {
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
