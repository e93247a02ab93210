package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrBadName = errors.New("invalid snapshot name")

// FileWriter stores snapshots as files in one directory.
// It is safe for concurrent use.
type FileWriter struct {
	mu      sync.Mutex
	dir     string
	written []string
	closed  bool
}

// NewFileWriter creates the output directory if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("snapshot: create output dir: %w", err)
	}
	return &FileWriter{dir: dir}, nil
}

// Write stores data as <dir>/<name> and returns the file path.
func (w *FileWriter) Write(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("snapshot: %w: %q", ErrBadName, name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return "", fmt.Errorf("snapshot: write %q: writer closed", name)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("snapshot: write %q: %w", path, err)
	}
	w.written = append(w.written, path)
	return path, nil
}

// Written returns the paths stored so far.
func (w *FileWriter) Written() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.written...)
}

// Close rejects further writes.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
