package root

import (
	"context"
	"database/sql"

	"checkline/internal/engine"
	"checkline/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the store and seeds the built-in templates on first
// launch (gated by the persisted seed-version marker).
func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)
	if err := svc.SeedDefaults(ctx, false); err != nil {
		cleanup()
		return nil, nil, err
	}
	// No onboarding flow on the CLI; first launch completes it.
	done, err := svc.SettingsRepo().GetBool(ctx, storage.SettingOnboardingCompleted)
	if err == nil && !done {
		_ = svc.SettingsRepo().SetBool(ctx, storage.SettingOnboardingCompleted, true)
	}
	return svc, cleanup, nil
}
