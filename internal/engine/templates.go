package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"checkline/internal/storage"
)

type ItemInput struct {
	Title      string
	Notes      string
	IsRequired bool
}

// UpsertTemplateInput describes a full template save. ID selects an existing
// template for the manual-edit path; when empty the template is matched by
// name (the seeding path) and created if absent.
type UpsertTemplateInput struct {
	ID       string
	Name     string
	Category string
	Items    []ItemInput
}

// UpsertTemplate creates or updates a template, replacing its item list
// wholesale. Sort order is renormalized to the list index. A name that is
// empty after trimming is a silent no-op; the editor is expected to block
// saves before that point.
func (s *Service) UpsertTemplate(ctx context.Context, in UpsertTemplateInput) (*storage.ChecklistTemplate, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, nil
	}

	var out *storage.ChecklistTemplate
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewTemplateRepo(tx)

		var existing *storage.ChecklistTemplate
		var err error
		if in.ID != "" {
			existing, err = repo.Get(ctx, in.ID)
		} else {
			existing, err = repo.GetByName(ctx, name)
		}
		if err != nil {
			return err
		}
		if in.ID != "" && existing == nil {
			return fmt.Errorf("upsert template: %w", ErrTemplateNotFound)
		}

		now := time.Now()
		created := existing == nil
		if created {
			existing = &storage.ChecklistTemplate{
				ID:        uuid.NewString(),
				CreatedAt: now,
			}
		}
		existing.Name = name
		existing.Category = strings.TrimSpace(in.Category)
		existing.UpdatedAt = now
		existing.Items = buildItems(existing.ID, in.Items)

		if created {
			if err := repo.Insert(ctx, existing); err != nil {
				return err
			}
		} else {
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			if err := repo.ReplaceItems(ctx, existing.ID, existing.Items); err != nil {
				return err
			}
		}
		out = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// buildItems drops items whose title trims empty and renormalizes sort order
// to 0..n-1 over the survivors.
func buildItems(templateID string, items []ItemInput) []storage.ChecklistItemTemplate {
	out := make([]storage.ChecklistItemTemplate, 0, len(items))
	for _, in := range items {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			continue
		}
		it := storage.ChecklistItemTemplate{
			ID:         uuid.NewString(),
			TemplateID: templateID,
			Title:      title,
			IsRequired: in.IsRequired,
			SortOrder:  len(out),
		}
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			it.Notes = &notes
		}
		out = append(out, it)
	}
	return out
}

// DeleteTemplate removes a template and its item templates. Runs already
// started from it keep their snapshots. Deleting an unknown id is a no-op.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return storage.NewTemplateRepo(tx).Delete(ctx, id)
	})
}

func (s *Service) ListTemplates(ctx context.Context) ([]storage.ChecklistTemplate, error) {
	return s.templates.ListAll(ctx)
}

// GetTemplate resolves by id first, then by exact name.
func (s *Service) GetTemplate(ctx context.Context, idOrName string) (*storage.ChecklistTemplate, error) {
	t, err := s.templates.Get(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	if t != nil {
		return t, nil
	}
	return s.templates.GetByName(ctx, normalizeName(idOrName))
}
