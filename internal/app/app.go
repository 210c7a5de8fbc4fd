// Package app wires configuration, persistence and the store behind the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/frontsettings/internal/config"
	"github.com/wizzomafizzo/frontsettings/internal/database"
	"github.com/wizzomafizzo/frontsettings/internal/logging"
	"github.com/wizzomafizzo/frontsettings/internal/persistence"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
	"github.com/wizzomafizzo/frontsettings/internal/storage"
	"github.com/wizzomafizzo/frontsettings/internal/store"
)

// Options contains configuration options for creating an App
type Options struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// LogWriter replaces the rotating log file, mainly for tests.
	LogWriter  io.Writer
	ConfigPath string
}

// App restores, checks and saves the persisted settings blob.
type App struct {
	fs        afero.Fs
	config    *config.Config
	logger    *zerolog.Logger
	dbManager *database.Manager
	source    persistence.Source
}

// New loads the config at opts.ConfigPath, falling back to defaults when the
// file does not exist, and sets up logging.
func New(ctx context.Context, opts Options) (*App, error) {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	cfg, err := loadConfig(fsys, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	logCtx, err := logging.New(ctx, fsys, logging.Config{
		Writer:     opts.LogWriter,
		Profile:    cfg.Profile,
		Level:      level,
		MaxSizeMB:  cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &App{
		fs:     fsys,
		config: cfg,
		logger: logging.Get(logCtx),
	}, nil
}

func loadConfig(fsys afero.Fs, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := config.LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Context attaches the app logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}

// Source returns the configured blob source, opening the database on first use.
func (a *App) Source(ctx context.Context) (persistence.Source, error) {
	if a.source != nil {
		return a.source, nil
	}

	paths := storage.New(a.fs)

	switch a.config.Source {
	case config.SourceDatabase:
		dsn := a.config.Database
		if dsn == "" {
			var err error
			if dsn, err = paths.GetDatabasePath(); err != nil {
				return nil, fmt.Errorf("failed to get database path: %w", err)
			}
		}
		manager, err := database.NewManager(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open settings database: %w", err)
		}
		a.dbManager = manager
		a.source = persistence.NewDBSource(manager.DB(), a.config.Profile)
	default:
		path := a.config.BlobFile
		if path == "" {
			var err error
			if path, err = paths.GetBlobPath(); err != nil {
				return nil, fmt.Errorf("failed to get blob path: %w", err)
			}
		}
		a.source = persistence.NewFileSource(a.fs, path)
	}

	return a.source, nil
}

// Restore reads the persisted blob and restores it into a fresh store.
func (a *App) Restore(ctx context.Context) (store.SessionSettings, error) {
	ctx = a.Context(ctx)

	source, err := a.Source(ctx)
	if err != nil {
		return store.SessionSettings{}, err
	}

	raw, err := source.Read(ctx)
	if err != nil {
		return store.SessionSettings{}, fmt.Errorf("failed to read persisted settings: %w", err)
	}

	return a.RestoreBlob(ctx, raw)
}

// RestoreBlob restores raw into a fresh store and returns the resulting
// settings state. An unusable blob is logged and leaves the defaults.
func (a *App) RestoreBlob(ctx context.Context, raw string) (store.SessionSettings, error) {
	ctx = a.Context(ctx)

	st := store.New(ctx)
	if err := st.RegisterSettings(); err != nil {
		return store.SessionSettings{}, fmt.Errorf("failed to register settings module: %w", err)
	}

	if _, err := settings.Restore(raw); err != nil {
		a.logger.Info().Err(err).Msg("persisted settings not restored")
	}
	settings.Load(st, raw)

	state, _ := st.Settings()
	return state, nil
}

// Check validates raw without dispatching anything.
func (a *App) Check(raw string) (settings.Payload, error) {
	payload, err := settings.Restore(raw)
	if err != nil {
		return nil, fmt.Errorf("settings would not be restored: %w", err)
	}
	return payload, nil
}

// Save encodes payload and writes it to the configured source.
func (a *App) Save(ctx context.Context, payload settings.Payload) (string, error) {
	ctx = a.Context(ctx)

	blob, err := settings.Encode(payload)
	if err != nil {
		return "", fmt.Errorf("refusing to save settings: %w", err)
	}

	source, err := a.Source(ctx)
	if err != nil {
		return "", err
	}

	if err := source.Write(ctx, blob); err != nil {
		return "", fmt.Errorf("failed to save settings: %w", err)
	}

	a.logger.Info().Str("source", a.config.Source).Msg("settings saved")
	return blob, nil
}

// Close releases the database, if one was opened.
func (a *App) Close() error {
	if a.dbManager == nil {
		return nil
	}
	return a.dbManager.Close() //nolint:wrapcheck // already wrapped by the manager
}

// InitConfig writes the default configuration to path. An existing file is
// only replaced when force is set.
func InitConfig(fsys afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("config %s already exists: %w", path, os.ErrExist)
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	if err := afero.WriteFile(fsys, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
