package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// Settings keys.
const (
	SettingSeedVersion         = "seed_version"
	SettingOnboardingCompleted = "onboarding_completed"
)

type SettingsRepo struct {
	db DBTX
}

func NewSettingsRepo(db DBTX) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("setting get: %w", err)
	}
	return v, true, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("setting set: %w", err)
	}
	return nil
}

func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("setting delete: %w", err)
	}
	return nil
}

// GetInt returns 0 when the key is absent or not an integer.
func (r *SettingsRepo) GetInt(ctx context.Context, key string) (int, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (r *SettingsRepo) SetInt(ctx context.Context, key string, n int) error {
	return r.Set(ctx, key, strconv.Itoa(n))
}

func (r *SettingsRepo) GetBool(ctx context.Context, key string) (bool, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return v == "1" || v == "true", nil
}

func (r *SettingsRepo) SetBool(ctx context.Context, key string, b bool) error {
	if b {
		return r.Set(ctx, key, "1")
	}
	return r.Set(ctx, key, "0")
}
