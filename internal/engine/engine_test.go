package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"checkline/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db)
}

func mustUpsert(t *testing.T, svc *Service, name, category string, titles ...string) *storage.ChecklistTemplate {
	t.Helper()
	ctx := context.Background()

	items := make([]ItemInput, 0, len(titles))
	for _, title := range titles {
		items = append(items, ItemInput{Title: title, IsRequired: true})
	}
	tpl, err := svc.UpsertTemplate(ctx, UpsertTemplateInput{Name: name, Category: category, Items: items})
	if err != nil {
		t.Fatalf("upsert %q: %v", name, err)
	}
	if tpl == nil {
		t.Fatalf("upsert %q: nil template", name)
	}
	return tpl
}

func TestEndToEndGymPrep(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tpl := mustUpsert(t, svc, "Gym Prep", "Routines", "Pack gym clothes", "Pack towel", "Fill water bottle")

	run, err := svc.StartRun(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if len(run.Items) != 3 {
		t.Fatalf("run items=%d, want 3", len(run.Items))
	}

	for _, it := range run.Items {
		if _, err := svc.ToggleItem(ctx, run.ID, it.ID); err != nil {
			t.Fatalf("ToggleItem: %v", err)
		}
	}

	res, err := svc.FinishRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if res.Run.CompletedAt == nil {
		t.Fatalf("expected CompletedAt to be set")
	}

	stats, err := svc.StatsRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TotalCompletions != 1 {
		t.Fatalf("totalCompletions=%d, want 1", stats.TotalCompletions)
	}

	counts, err := svc.CompletionsByTemplate(ctx)
	if err != nil {
		t.Fatalf("CompletionsByTemplate: %v", err)
	}
	if counts["Gym Prep"] != 1 {
		t.Fatalf("completions for Gym Prep=%d, want 1", counts["Gym Prep"])
	}

	runs, err := svc.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	for _, r := range runs {
		if r.CompletedAt == nil {
			t.Fatalf("run %s still in progress", r.ID)
		}
	}

	// First completion starts a streak of 1 and unlocks the day-1 streak
	// achievement.
	if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Fatalf("streak=%d/%d, want 1/1", stats.CurrentStreak, stats.LongestStreak)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].Type != AchievementStreak || res.Unlocked[0].Value != 1 {
		t.Fatalf("unlocked=%+v, want the value-1 streak achievement", res.Unlocked)
	}
}

func TestFinishRunAtUsesGivenTimestamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tpl := mustUpsert(t, svc, "Solo", "Work", "Only item")
	run, err := svc.StartRun(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if _, err := svc.ToggleItem(ctx, run.ID, run.Items[0].ID); err != nil {
		t.Fatalf("ToggleItem: %v", err)
	}

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	res, err := svc.finishRunAt(ctx, run.ID, at)
	if err != nil {
		t.Fatalf("finishRunAt: %v", err)
	}
	if !res.Run.CompletedAt.Equal(at) {
		t.Fatalf("completedAt=%v, want %v", res.Run.CompletedAt, at)
	}

	stats, err := svc.StatsRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.LastCompletionDate == nil || !stats.LastCompletionDate.Equal(at) {
		t.Fatalf("lastCompletionDate=%v, want %v", stats.LastCompletionDate, at)
	}
}
