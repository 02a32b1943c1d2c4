package storage

import "time"

type ChecklistTemplate struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []ChecklistItemTemplate
}

type ChecklistItemTemplate struct {
	ID         string
	TemplateID string
	Title      string
	Notes      *string
	IsRequired bool
	SortOrder  int
}

type ChecklistRun struct {
	ID          string
	TemplateID  string
	Title       string
	StartedAt   time.Time
	CompletedAt *time.Time
	Items       []ChecklistRunItem
}

// ChecklistRunItem is a snapshot of a template item taken at run start. Only
// IsChecked mutates afterwards.
type ChecklistRunItem struct {
	ID             string
	RunID          string
	TemplateItemID string
	Title          string
	Notes          *string
	IsRequired     bool
	IsChecked      bool
	SortOrder      int
}

type UserStats struct {
	Key                string
	TotalCompletions   int
	CurrentStreak      int
	LongestStreak      int
	LastCompletionDate *time.Time
	CreatedAt          time.Time
}

type CompletionRecord struct {
	ID           int64
	TemplateID   string
	TemplateName string
	CompletedAt  time.Time
	DayOfYear    int
}

type Achievement struct {
	ID         string
	Type       string // "milestone" or "streak"
	Value      int
	Title      string
	Message    string
	IsUnlocked bool
	UnlockedAt *time.Time
}
