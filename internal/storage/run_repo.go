package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RunRepo struct {
	db DBTX
}

func NewRunRepo(db DBTX) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Insert(ctx context.Context, run *ChecklistRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (id, template_id, title, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.TemplateID, run.Title, run.StartedAt, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("run insert: %w", err)
	}
	for i := range run.Items {
		it := &run.Items[i]
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO run_items (id, run_id, template_item_id, title, notes, is_required, is_checked, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, it.ID, run.ID, it.TemplateItemID, it.Title, it.Notes, boolToInt(it.IsRequired), boolToInt(it.IsChecked), it.SortOrder)
		if err != nil {
			return fmt.Errorf("run item insert: %w", err)
		}
	}
	return nil
}

func (r *RunRepo) Get(ctx context.Context, id string) (*ChecklistRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, template_id, title, started_at, completed_at FROM runs WHERE id = ?
	`, id)

	var (
		run       ChecklistRun
		completed sql.NullTime
	)
	if err := row.Scan(&run.ID, &run.TemplateID, &run.Title, &run.StartedAt, &completed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("run scan: %w", err)
	}
	if completed.Valid {
		v := completed.Time
		run.CompletedAt = &v
	}
	items, err := r.listItems(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Items = items
	return &run, nil
}

func (r *RunRepo) ListAll(ctx context.Context) ([]ChecklistRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, template_id, title, started_at, completed_at
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("run list: %w", err)
	}
	defer rows.Close()

	var out []ChecklistRun
	for rows.Next() {
		var (
			run       ChecklistRun
			completed sql.NullTime
		)
		if err := rows.Scan(&run.ID, &run.TemplateID, &run.Title, &run.StartedAt, &completed); err != nil {
			return nil, fmt.Errorf("run scan: %w", err)
		}
		if completed.Valid {
			v := completed.Time
			run.CompletedAt = &v
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run list rows: %w", err)
	}
	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *RunRepo) SetItemChecked(ctx context.Context, itemID string, checked bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE run_items SET is_checked = ? WHERE id = ?`, boolToInt(checked), itemID)
	if err != nil {
		return fmt.Errorf("run item check: %w", err)
	}
	return nil
}

func (r *RunRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE runs SET completed_at = ? WHERE id = ?`, completedAt, id)
	if err != nil {
		return fmt.Errorf("run mark completed: %w", err)
	}
	return nil
}

func (r *RunRepo) listItems(ctx context.Context, runID string) ([]ChecklistRunItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, template_item_id, title, notes, is_required, is_checked, sort_order
		FROM run_items
		WHERE run_id = ?
		ORDER BY sort_order ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run items list: %w", err)
	}
	defer rows.Close()

	var out []ChecklistRunItem
	for rows.Next() {
		var (
			it       ChecklistRunItem
			notes    sql.NullString
			required int
			checked  int
		)
		if err := rows.Scan(&it.ID, &it.RunID, &it.TemplateItemID, &it.Title, &notes, &required, &checked, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("run item scan: %w", err)
		}
		if notes.Valid {
			v := notes.String
			it.Notes = &v
		}
		it.IsRequired = required != 0
		it.IsChecked = checked != 0
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run items rows: %w", err)
	}
	return out, nil
}
