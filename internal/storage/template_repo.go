package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TemplateRepo struct {
	db DBTX
}

func NewTemplateRepo(db DBTX) *TemplateRepo {
	return &TemplateRepo{db: db}
}

func (r *TemplateRepo) Insert(ctx context.Context, t *ChecklistTemplate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Category, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("template insert: %w", err)
	}
	return r.ReplaceItems(ctx, t.ID, t.Items)
}

func (r *TemplateRepo) Update(ctx context.Context, t *ChecklistTemplate) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE templates SET name = ?, category = ?, updated_at = ? WHERE id = ?
	`, t.Name, t.Category, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("template update: %w", err)
	}
	return nil
}

// ReplaceItems swaps the full item list of a template.
func (r *TemplateRepo) ReplaceItems(ctx context.Context, templateID string, items []ChecklistItemTemplate) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM template_items WHERE template_id = ?`, templateID); err != nil {
		return fmt.Errorf("template items delete: %w", err)
	}
	for i := range items {
		it := &items[i]
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO template_items (id, template_id, title, notes, is_required, sort_order)
			VALUES (?, ?, ?, ?, ?, ?)
		`, it.ID, templateID, it.Title, it.Notes, boolToInt(it.IsRequired), it.SortOrder)
		if err != nil {
			return fmt.Errorf("template item insert: %w", err)
		}
	}
	return nil
}

func (r *TemplateRepo) Get(ctx context.Context, id string) (*ChecklistTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, created_at, updated_at FROM templates WHERE id = ?
	`, id)
	return r.scanWithItems(ctx, row)
}

func (r *TemplateRepo) GetByName(ctx context.Context, name string) (*ChecklistTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, created_at, updated_at FROM templates WHERE name = ? LIMIT 1
	`, name)
	return r.scanWithItems(ctx, row)
}

func (r *TemplateRepo) ListAll(ctx context.Context) ([]ChecklistTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, created_at, updated_at FROM templates ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("template list: %w", err)
	}
	defer rows.Close()

	var out []ChecklistTemplate
	for rows.Next() {
		var t ChecklistTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("template scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template list rows: %w", err)
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

// Delete removes the template and its item templates. Runs started from the
// template are left untouched; they own their snapshots.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM template_items WHERE template_id = ?`, id); err != nil {
		return fmt.Errorf("template items delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("template delete: %w", err)
	}
	return nil
}

func (r *TemplateRepo) scanWithItems(ctx context.Context, row *sql.Row) (*ChecklistTemplate, error) {
	var t ChecklistTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("template scan: %w", err)
	}
	items, err := r.listItems(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *TemplateRepo) listItems(ctx context.Context, templateID string) ([]ChecklistItemTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, template_id, title, notes, is_required, sort_order
		FROM template_items
		WHERE template_id = ?
		ORDER BY sort_order ASC
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("template items list: %w", err)
	}
	defer rows.Close()

	var out []ChecklistItemTemplate
	for rows.Next() {
		var (
			it       ChecklistItemTemplate
			notes    sql.NullString
			required int
		)
		if err := rows.Scan(&it.ID, &it.TemplateID, &it.Title, &notes, &required, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("template item scan: %w", err)
		}
		if notes.Valid {
			v := notes.String
			it.Notes = &v
		}
		it.IsRequired = required != 0
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template items rows: %w", err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
