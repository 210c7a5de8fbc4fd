package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/frontsettings/internal/logging"
)

// FileSource keeps the blob in a single file.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource for path on the given filesystem.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

// Path returns the file the blob is stored in.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Read(ctx context.Context) (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Get(ctx).Debug().Str("path", s.path).Msg("no persisted settings file")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settings blob %s: %w", s.path, err)
	}
	return string(data), nil
}

func (s *FileSource) Write(ctx context.Context, blob string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.path, err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(blob), 0o600); err != nil {
		return fmt.Errorf("failed to write settings blob %s: %w", s.path, err)
	}
	logging.Get(ctx).Debug().Str("path", s.path).Int("bytes", len(blob)).Msg("settings blob written")
	return nil
}
