// Package storage provides XDG-compliant storage path management for frontsettings.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for frontsettings, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, constants.AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the log file
func (m *Manager) GetLogPath() (string, error) {
	return m.dataFile(constants.LogFilename)
}

// GetDatabasePath returns the full path to the SQLite database
func (m *Manager) GetDatabasePath() (string, error) {
	return m.dataFile(constants.DatabaseFilename)
}

// GetBlobPath returns the full path to the default settings blob file
func (m *Manager) GetBlobPath() (string, error) {
	return m.dataFile(constants.BlobFilename)
}

func (m *Manager) dataFile(name string) (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
