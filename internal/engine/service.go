package engine

import (
	"database/sql"
	"strings"

	"checkline/internal/storage"
)

type Service struct {
	db           *sql.DB
	templates    *storage.TemplateRepo
	runs         *storage.RunRepo
	stats        *storage.StatsRepo
	completions  *storage.CompletionRepo
	achievements *storage.AchievementRepo
	settings     *storage.SettingsRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		templates:    storage.NewTemplateRepo(db),
		runs:         storage.NewRunRepo(db),
		stats:        storage.NewStatsRepo(db),
		completions:  storage.NewCompletionRepo(db),
		achievements: storage.NewAchievementRepo(db),
		settings:     storage.NewSettingsRepo(db),
	}
}

func (s *Service) TemplateRepo() *storage.TemplateRepo       { return s.templates }
func (s *Service) RunRepo() *storage.RunRepo                 { return s.runs }
func (s *Service) StatsRepo() *storage.StatsRepo             { return s.stats }
func (s *Service) CompletionRepo() *storage.CompletionRepo   { return s.completions }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }
func (s *Service) SettingsRepo() *storage.SettingsRepo       { return s.settings }

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
