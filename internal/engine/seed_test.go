package engine

import (
	"context"
	"testing"

	"checkline/internal/storage"
)

func TestSeedDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx, false); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	all, err := svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(all) != len(defaultTemplates) {
		t.Fatalf("templates=%d, want %d", len(all), len(defaultTemplates))
	}

	v, err := svc.SettingsRepo().GetInt(ctx, storage.SettingSeedVersion)
	if err != nil {
		t.Fatalf("get seed version: %v", err)
	}
	if v != SeedVersion {
		t.Fatalf("seed version=%d, want %d", v, SeedVersion)
	}

	// A second call with the marker set is a no-op.
	if err := svc.SeedDefaults(ctx, false); err != nil {
		t.Fatalf("SeedDefaults #2: %v", err)
	}
	all, err = svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(all) != len(defaultTemplates) {
		t.Fatalf("templates after reseed=%d, want %d", len(all), len(defaultTemplates))
	}
}

func TestForcedSeedOverwritesSameNamedTemplate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx, false); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	// The user edits a built-in template.
	edited := mustUpsert(t, svc, "Gym Prep", "Fitness", "My single custom item")
	if len(edited.Items) != 1 {
		t.Fatalf("edited items=%d, want 1", len(edited.Items))
	}

	// A forced re-seed re-applies the default item list over the user's
	// edits for same-named templates. Intentional upgrade path.
	if err := svc.SeedDefaults(ctx, true); err != nil {
		t.Fatalf("SeedDefaults force: %v", err)
	}

	got, err := svc.GetTemplate(ctx, "Gym Prep")
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got == nil || len(got.Items) != 6 {
		t.Fatalf("Gym Prep not restored to defaults: %+v", got)
	}
	if got.Category != CategoryRoutines {
		t.Fatalf("category=%q, want %q", got.Category, CategoryRoutines)
	}
}
