// Package adapter contains the infrastructure adapters of the res2cpp CLI.
package adapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the workflow relies
// on, so it can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte) error

	// UpdateFile writes content only when it differs from the current file
	// contents and reports whether it wrote.
	UpdateFile(path m.Path, content []byte) (bool, error)

	// ModTime returns the last modification time, false if unavailable.
	ModTime(path m.Path) (time.Time, bool)

	// Exists reports whether something exists at path.
	Exists(path m.Path) bool
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the manifest the user asked to compile
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("reading file '%s' failed: %w", filepath.ToSlash(string(path)), err)
	}

	return content, nil
}

// WriteFile writes content, creating the parent directories as needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	name := string(path)

	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Debug("creating output directory failed", "path", dir, "error", err)
		}
	}

	// #nosec G306 - generated sources are meant to be readable
	if err := os.WriteFile(name, content, 0o644); err != nil {
		return fmt.Errorf("writing file '%s' failed: %w", filepath.ToSlash(name), err)
	}

	slog.Debug("wrote file", "path", name, "bytes", len(content))

	return nil
}

// UpdateFile writes content unless the file already holds exactly it.
func (a *LocalSourceFSAdapter) UpdateFile(path m.Path, content []byte) (bool, error) {
	if a.Exists(path) {
		current, err := a.ReadFile(path)
		if err != nil {
			return false, err
		}

		if bytes.Equal(current, content) {
			slog.Debug("file up to date", "path", path)
			return false, nil
		}
	}

	if err := a.WriteFile(path, content); err != nil {
		return false, err
	}

	return true, nil
}

// ModTime returns the modification time of path.
func (a *LocalSourceFSAdapter) ModTime(path m.Path) (time.Time, bool) {
	info, err := os.Stat(string(path))
	if err != nil {
		return time.Time{}, false
	}

	return info.ModTime(), true
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}
