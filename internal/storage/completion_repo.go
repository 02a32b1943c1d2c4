package storage

import (
	"context"
	"fmt"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, rec *CompletionRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (template_id, template_name, completed_at, day_of_year)
		VALUES (?, ?, ?, ?)
	`, rec.TemplateID, rec.TemplateName, rec.CompletedAt, rec.DayOfYear)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// CountByTemplateName aggregates the completion log per template name.
func (r *CompletionRepo) CountByTemplateName(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT template_name, COUNT(*)
		FROM completions
		GROUP BY template_name
	`)
	if err != nil {
		return nil, fmt.Errorf("completion counts: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("completion count scan: %w", err)
		}
		out[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion count rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) ListAll(ctx context.Context) ([]CompletionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, template_id, template_name, completed_at, day_of_year
		FROM completions
		ORDER BY completed_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []CompletionRecord
	for rows.Next() {
		var rec CompletionRecord
		if err := rows.Scan(&rec.ID, &rec.TemplateID, &rec.TemplateName, &rec.CompletedAt, &rec.DayOfYear); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion list rows: %w", err)
	}
	return out, nil
}
