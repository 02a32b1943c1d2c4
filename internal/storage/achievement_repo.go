package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type AchievementRepo struct {
	db DBTX
}

func NewAchievementRepo(db DBTX) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Exists reports whether an achievement row is already present for the
// (type, value) pair. The schema also enforces this with a unique index.
func (r *AchievementRepo) Exists(ctx context.Context, typ string, value int) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM achievements WHERE type = ? AND value = ? LIMIT 1
	`, typ, value)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("achievement exists: %w", err)
	}
	return true, nil
}

func (r *AchievementRepo) Insert(ctx context.Context, a *Achievement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, type, value, title, message, is_unlocked, unlocked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.Type, a.Value, a.Title, a.Message, boolToInt(a.IsUnlocked), a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("achievement insert: %w", err)
	}
	return nil
}

// ListUnlocked returns unlocked achievements, most recent first. limit <= 0
// means no limit.
func (r *AchievementRepo) ListUnlocked(ctx context.Context, limit int) ([]Achievement, error) {
	q := `
		SELECT id, type, value, title, message, is_unlocked, unlocked_at
		FROM achievements
		WHERE is_unlocked = 1
		ORDER BY unlocked_at DESC
	`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.list(ctx, q, args...)
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	return r.list(ctx, `
		SELECT id, type, value, title, message, is_unlocked, unlocked_at
		FROM achievements
		ORDER BY unlocked_at DESC
	`)
}

func (r *AchievementRepo) list(ctx context.Context, query string, args ...any) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var (
			a        Achievement
			unlocked int
			at       sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.Type, &a.Value, &a.Title, &a.Message, &unlocked, &at); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.IsUnlocked = unlocked != 0
		if at.Valid {
			v := at.Time
			a.UnlockedAt = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement list rows: %w", err)
	}
	return out, nil
}
