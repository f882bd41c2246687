package gen

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer writes assembled modules to the target directory.
type Writer struct {
	target    string
	workers   int
	formatter []string
	manifest  bool
	log       *zap.Logger

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
	written []string
}

// WriterMetrics tracks the files of the last Write.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewWriter creates a writer for the configured target directory.
func NewWriter(c *Config) *Writer {
	return &Writer{
		target:    c.Target,
		workers:   c.workers(),
		formatter: c.Formatter,
		manifest:  !c.NoManifest,
		log:       c.logger(),
		metrics:   &WriterMetrics{},
	}
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

// Write writes all modules in parallel, runs the formatter and writes the
// manifest last. The manifest of a previous run is removed first. If a file
// cannot be written, the files written by this call are removed again.
func (w *Writer) Write(ctx context.Context, modules []*Module) (*Manifest, error) {
	if w.target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(w.target, dirPerm); err != nil {
		return nil, NewGenerationError("write", w.target, "create output directory", err)
	}
	if err := removeManifest(w.target); err != nil {
		return nil, NewGenerationError("write", ManifestFile, "remove previous manifest", err)
	}

	w.mu.Lock()
	w.metrics = &WriterMetrics{}
	w.written = nil
	w.mu.Unlock()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, m := range modules {
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
				return w.writeModule(m)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		w.rollback()
		return nil, err
	}

	if len(w.formatter) > 0 {
		if err := w.format(ctx); err != nil {
			return nil, err
		}
	}
	if !w.manifest {
		return nil, nil
	}
	m, err := newManifest(w.target, modules)
	if err != nil {
		return nil, NewGenerationError("manifest", ManifestFile, "digest files", err)
	}
	if err := writeManifest(w.target, m); err != nil {
		return nil, NewGenerationError("manifest", ManifestFile, "write manifest", err)
	}
	w.log.Info("wrote modules",
		zap.String("target", w.target),
		zap.Int("files", w.metrics.FilesWritten),
		zap.Int64("bytes", w.metrics.TotalBytes),
		zap.String("run_id", m.RunID),
	)
	return m, nil
}

// writeModule writes a single module.
func (w *Writer) writeModule(m *Module) error {
	fullPath := filepath.Join(w.target, filepath.FromSlash(m.Path))
	if err := os.MkdirAll(filepath.Dir(fullPath), dirPerm); err != nil {
		return NewGenerationError("write", m.Path, "create directory", err)
	}
	if err := os.WriteFile(fullPath, m.Content, filePerm); err != nil {
		return NewGenerationError("write", m.Path, "write file", err)
	}
	w.log.Debug("wrote module", zap.String("module", m.Name), zap.String("path", m.Path))

	w.mu.Lock()
	w.written = append(w.written, fullPath)
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(m.Content))
	w.mu.Unlock()
	return nil
}

// rollback removes the files written so far. Errors are logged only; the
// write error is what the caller needs to see.
func (w *Writer) rollback() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.written {
		if err := os.Remove(p); err != nil {
			w.log.Warn("rollback failed", zap.String("path", p), zap.Error(err))
		}
	}
	w.written = nil
}

// format runs the formatter command on the target directory.
func (w *Writer) format(ctx context.Context) error {
	args := make([]string, len(w.formatter))
	for i, a := range w.formatter {
		args[i] = strings.ReplaceAll(a, "{dir}", w.target)
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return NewGenerationError("format", w.target, fmt.Sprintf("%s: %s", strings.Join(args, " "), strings.TrimSpace(string(out))), err)
	}
	w.log.Debug("formatted output", zap.Strings("command", args))
	return nil
}
