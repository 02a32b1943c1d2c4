package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainStatsKey = "main_user"

type StatsRepo struct {
	db DBTX
}

func NewStatsRepo(db DBTX) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) Get(ctx context.Context, key string) (*UserStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, total_completions, current_streak, longest_streak, last_completion_date, created_at
		FROM user_stats
		WHERE key = ?
	`, key)

	var (
		s    UserStats
		last sql.NullTime
	)
	if err := row.Scan(&s.Key, &s.TotalCompletions, &s.CurrentStreak, &s.LongestStreak, &last, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("stats get: %w", err)
	}
	if last.Valid {
		v := last.Time
		s.LastCompletionDate = &v
	}
	return &s, nil
}

// GetOrCreateMain lazily creates the single per-installation stats row.
func (r *StatsRepo) GetOrCreateMain(ctx context.Context) (*UserStats, error) {
	s, err := r.Get(ctx, MainStatsKey)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO user_stats (key) VALUES (?)`, MainStatsKey); err != nil {
		return nil, fmt.Errorf("stats insert: %w", err)
	}
	return r.Get(ctx, MainStatsKey)
}

func (r *StatsRepo) Update(ctx context.Context, s *UserStats) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_stats
		SET total_completions = ?, current_streak = ?, longest_streak = ?, last_completion_date = ?
		WHERE key = ?
	`, s.TotalCompletions, s.CurrentStreak, s.LongestStreak, s.LastCompletionDate, s.Key)
	if err != nil {
		return fmt.Errorf("stats update: %w", err)
	}
	return nil
}
