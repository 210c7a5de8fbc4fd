package database

import (
	"context"
	"fmt"
)

type migration struct {
	sql     string
	version int
}

var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE state (
				key TEXT NOT NULL,
				profile TEXT NOT NULL,
				value BLOB NOT NULL,
				updated_at INTEGER NOT NULL DEFAULT (unixepoch()),
				PRIMARY KEY (key, profile)
			);

			CREATE INDEX idx_state_profile ON state(profile);
		`,
	},
}

func (m *Manager) runMigrations(ctx context.Context) error {
	currentVersion, err := m.Version(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.version <= currentVersion {
			continue
		}
		if err := m.executeMigration(ctx, migration); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) executeMigration(ctx context.Context, migration migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, migration.sql); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.version, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", migration.version)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to update database version to %d: %w", migration.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.version, err)
	}
	return nil
}
