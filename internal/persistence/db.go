package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wizzomafizzo/frontsettings/internal/constants"
	"github.com/wizzomafizzo/frontsettings/internal/logging"
)

// DBSource keeps the blob in the state table, one row per profile.
type DBSource struct {
	db      *sql.DB
	profile string
}

// NewDBSource creates a DBSource on an already migrated database.
func NewDBSource(db *sql.DB, profile string) *DBSource {
	return &DBSource{db: db, profile: profile}
}

func (s *DBSource) Read(ctx context.Context) (string, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM state WHERE key = ? AND profile = ?",
		constants.StateKeySettings, s.profile).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		logging.Get(ctx).Debug().Str("profile", s.profile).Msg("no persisted settings row")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settings blob: %w", err)
	}
	return string(value), nil
}

func (s *DBSource) Write(ctx context.Context, blob string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO state (key, profile, value, updated_at) VALUES (?, ?, ?, unixepoch())",
		constants.StateKeySettings, s.profile, []byte(blob))
	if err != nil {
		return fmt.Errorf("failed to write settings blob: %w", err)
	}
	return nil
}
