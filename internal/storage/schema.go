package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS template_items (
			id TEXT PRIMARY KEY,
			template_id TEXT NOT NULL,
			title TEXT NOT NULL,
			notes TEXT,
			is_required INTEGER NOT NULL DEFAULT 1,
			sort_order INTEGER NOT NULL,

			FOREIGN KEY(template_id) REFERENCES templates(id)
		);`,
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			template_id TEXT NOT NULL,
			title TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_items (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			template_item_id TEXT NOT NULL,
			title TEXT NOT NULL,
			notes TEXT,
			is_required INTEGER NOT NULL DEFAULT 1,
			is_checked INTEGER NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL,

			FOREIGN KEY(run_id) REFERENCES runs(id)
		);`,
		`CREATE TABLE IF NOT EXISTS user_stats (
			key TEXT PRIMARY KEY,
			total_completions INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_completion_date DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Append-only log of finished runs; drives per-template counts and
		// the same-day streak check.
		`CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id TEXT NOT NULL,
			template_name TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			day_of_year INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			value INTEGER NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			is_unlocked INTEGER NOT NULL DEFAULT 0,
			unlocked_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_template_items_template_id ON template_items(template_id, sort_order);`,
		`CREATE INDEX IF NOT EXISTS idx_run_items_run_id ON run_items(run_id, sort_order);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);`,
		// At most one unlocked achievement per (type, value).
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_achievements_type_value ON achievements(type, value);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
