package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// SourceFSAdapter defines filesystem operations used to read and write
// Python sources and evaluation artifacts.
type SourceFSAdapter interface {
	ReadFile(path m.Path) ([]byte, error)
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
	FileInfo(path m.Path) (os.FileInfo, error)
	HashFile(path m.Path) (string, error)
	Open(path m.Path) (m.File, m.SourceText, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter creates a new LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path is provided by the operator on the command line
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions, creating
// parent directories when needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path is provided by the operator on the command line
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Open reads a source file and returns its identity together with its lines.
func (a *LocalSourceFSAdapter) Open(path m.Path) (m.File, m.SourceText, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return m.File{}, m.SourceText{}, err
	}

	info, err := a.FileInfo(m.Path(abs))
	if err != nil {
		return m.File{}, m.SourceText{}, err
	}

	if info.IsDir() {
		return m.File{}, m.SourceText{}, fmt.Errorf("%s is a directory", abs)
	}

	content, err := a.ReadFile(m.Path(abs))
	if err != nil {
		return m.File{}, m.SourceText{}, err
	}

	hash, err := a.HashFile(m.Path(abs))
	if err != nil {
		return m.File{}, m.SourceText{}, err
	}

	return m.File{Path: m.Path(abs), Hash: hash}, m.NewSourceText(string(content)), nil
}
