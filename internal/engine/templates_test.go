package engine

import (
	"context"
	"testing"
)

func TestUpsertRenormalizesSortOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tpl, err := svc.UpsertTemplate(ctx, UpsertTemplateInput{
		Name: "Packing",
		Items: []ItemInput{
			{Title: "Socks", IsRequired: true},
			{Title: "   "}, // dropped: empty after trim
			{Title: "Shirts", IsRequired: true},
			{Title: "Charger"},
		},
	})
	if err != nil {
		t.Fatalf("UpsertTemplate: %v", err)
	}
	if len(tpl.Items) != 3 {
		t.Fatalf("items=%d, want 3 (blank title dropped)", len(tpl.Items))
	}
	for i, it := range tpl.Items {
		if it.SortOrder != i {
			t.Fatalf("item %d sortOrder=%d, want %d", i, it.SortOrder, i)
		}
	}

	// Updating replaces the list wholesale and renormalizes again.
	tpl2, err := svc.UpsertTemplate(ctx, UpsertTemplateInput{
		ID:   tpl.ID,
		Name: "Packing",
		Items: []ItemInput{
			{Title: "Passport", IsRequired: true},
			{Title: "Tickets", IsRequired: true},
		},
	})
	if err != nil {
		t.Fatalf("UpsertTemplate update: %v", err)
	}
	if tpl2.ID != tpl.ID {
		t.Fatalf("update created a new template")
	}

	got, err := svc.GetTemplate(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items after update=%d, want 2", len(got.Items))
	}
	for i, it := range got.Items {
		if it.SortOrder != i {
			t.Fatalf("item %d sortOrder=%d, want %d", i, it.SortOrder, i)
		}
	}
}

func TestUpsertEmptyNameIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tpl, err := svc.UpsertTemplate(ctx, UpsertTemplateInput{
		Name:  "   ",
		Items: []ItemInput{{Title: "Anything", IsRequired: true}},
	})
	if err != nil {
		t.Fatalf("UpsertTemplate: %v", err)
	}
	if tpl != nil {
		t.Fatalf("expected nil template for empty name")
	}

	all, err := svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("templates=%d, want 0", len(all))
	}
}

func TestUpsertByNameMatchesExisting(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := mustUpsert(t, svc, "Morning Routine", "Routines", "Old item")
	second := mustUpsert(t, svc, "Morning Routine", "Routines", "New item A", "New item B")

	if second.ID != first.ID {
		t.Fatalf("upsert by name created a second template")
	}
	got, err := svc.GetTemplate(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].Title != "New item A" {
		t.Fatalf("items not replaced: %+v", got.Items)
	}
}

func TestDeleteTemplateCascadesItemsNotRuns(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tpl := mustUpsert(t, svc, "Errands", "Errands", "Post office", "Pharmacy")
	run, err := svc.StartRun(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	if err := svc.DeleteTemplate(ctx, tpl.ID); err != nil {
		t.Fatalf("DeleteTemplate: %v", err)
	}

	gone, err := svc.GetTemplate(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if gone != nil {
		t.Fatalf("template still present after delete")
	}

	// The run's snapshot survives the template deletion.
	kept, err := svc.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if kept == nil || len(kept.Items) != 2 {
		t.Fatalf("run snapshot lost after template delete: %+v", kept)
	}

	// Deleting again is a no-op.
	if err := svc.DeleteTemplate(ctx, tpl.ID); err != nil {
		t.Fatalf("second DeleteTemplate: %v", err)
	}
}
