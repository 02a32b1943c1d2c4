package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"checkline/internal/storage"
)

// StartRun snapshots a template's items into a new in-progress run. The
// snapshot is independent: later template edits or deletion never reach an
// already-started run.
func (s *Service) StartRun(ctx context.Context, templateID string) (*storage.ChecklistRun, error) {
	t, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("start run: %w", ErrTemplateNotFound)
	}

	run := &storage.ChecklistRun{
		ID:         uuid.NewString(),
		TemplateID: t.ID,
		Title:      t.Name,
		StartedAt:  time.Now(),
	}
	for _, it := range t.Items {
		run.Items = append(run.Items, storage.ChecklistRunItem{
			ID:             uuid.NewString(),
			RunID:          run.ID,
			TemplateItemID: it.ID,
			Title:          it.Title,
			Notes:          it.Notes,
			IsRequired:     it.IsRequired,
			SortOrder:      it.SortOrder,
		})
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return storage.NewRunRepo(tx).Insert(ctx, run)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ToggleItem flips the checked state of one run item, identified by its own
// id. An id not belonging to the run is a no-op and returns nil.
func (s *Service) ToggleItem(ctx context.Context, runID, itemID string) (*storage.ChecklistRunItem, error) {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("toggle item: %w", ErrRunNotFound)
	}

	for i := range run.Items {
		it := &run.Items[i]
		if it.ID != itemID {
			continue
		}
		it.IsChecked = !it.IsChecked
		if err := s.runs.SetItemChecked(ctx, it.ID, it.IsChecked); err != nil {
			return nil, err
		}
		return it, nil
	}
	return nil, nil
}

// Progress returns checked/total in [0,1]; 0 for an empty run.
func Progress(run *storage.ChecklistRun) float64 {
	if len(run.Items) == 0 {
		return 0
	}
	done := 0
	for _, it := range run.Items {
		if it.IsChecked {
			done++
		}
	}
	return float64(done) / float64(len(run.Items))
}

// CanFinish reports whether every required item is checked.
func CanFinish(run *storage.ChecklistRun) bool {
	return remainingRequired(run) == 0
}

func remainingRequired(run *storage.ChecklistRun) int {
	n := 0
	for _, it := range run.Items {
		if it.IsRequired && !it.IsChecked {
			n++
		}
	}
	return n
}

type FinishResult struct {
	Run *storage.ChecklistRun
	// Unlocked holds achievements newly earned by this completion.
	Unlocked []storage.Achievement
}

// FinishRun completes a run and records the completion with the stats
// engine. The run update, the completion record, counters and any unlocked
// achievements commit in one transaction.
func (s *Service) FinishRun(ctx context.Context, runID string) (*FinishResult, error) {
	return s.finishRunAt(ctx, runID, time.Now())
}

func (s *Service) finishRunAt(ctx context.Context, runID string, completedAt time.Time) (*FinishResult, error) {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("finish run: %w", ErrRunNotFound)
	}
	if run.CompletedAt != nil {
		return nil, fmt.Errorf("finish run: %w", ErrRunCompleted)
	}
	if n := remainingRequired(run); n > 0 {
		return nil, IncompleteRunError{Remaining: n}
	}

	var unlocked []storage.Achievement
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewRunRepo(tx).MarkCompleted(ctx, run.ID, completedAt); err != nil {
			return err
		}
		var err error
		unlocked, err = recordCompletionTx(ctx, tx, run.TemplateID, run.Title, completedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	run.CompletedAt = &completedAt
	return &FinishResult{Run: run, Unlocked: unlocked}, nil
}

func (s *Service) GetRun(ctx context.Context, id string) (*storage.ChecklistRun, error) {
	return s.runs.Get(ctx, id)
}

// ListRuns returns all runs, newest first. In-progress runs stay listed
// indefinitely; there is no abandoned state.
func (s *Service) ListRuns(ctx context.Context) ([]storage.ChecklistRun, error) {
	return s.runs.ListAll(ctx)
}
