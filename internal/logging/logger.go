package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/frontsettings/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Defaults for log rotation when Config leaves them zero.
const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 30
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Profile    string
	Level      zerolog.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(config.MaxBackups, defaultMaxBackups),
			MaxAge:     orDefault(config.MaxAgeDays, defaultMaxAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("profile", config.Profile).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a config level name into a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
