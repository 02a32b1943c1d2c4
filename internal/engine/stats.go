package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"checkline/internal/storage"
)

// RecordCompletion appends a completion record, bumps the counters and streak
// on the singleton stats row and evaluates the achievement tables, all in one
// transaction. It returns achievements newly unlocked by this completion.
//
// FinishRun calls this for every completed run; callers must not invoke it
// twice for the same run.
func (s *Service) RecordCompletion(ctx context.Context, templateID, templateName string, completedAt time.Time) ([]storage.Achievement, error) {
	var unlocked []storage.Achievement
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		unlocked, err = recordCompletionTx(ctx, tx, templateID, templateName, completedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

func recordCompletionTx(ctx context.Context, tx *sql.Tx, templateID, templateName string, completedAt time.Time) ([]storage.Achievement, error) {
	statsRepo := storage.NewStatsRepo(tx)
	completionRepo := storage.NewCompletionRepo(tx)
	achievementRepo := storage.NewAchievementRepo(tx)

	stats, err := statsRepo.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := completionRepo.Insert(ctx, &storage.CompletionRecord{
		TemplateID:   templateID,
		TemplateName: templateName,
		CompletedAt:  completedAt,
		DayOfYear:    completedAt.YearDay(),
	}); err != nil {
		return nil, err
	}

	stats.TotalCompletions++
	applyStreak(stats, completedAt)
	if err := statsRepo.Update(ctx, stats); err != nil {
		return nil, err
	}

	return unlockAchievements(ctx, achievementRepo, stats, completedAt)
}

// applyStreak updates the streak counters for a completion at the given
// time. Days are compared at calendar-day granularity in each timestamp's
// own location. A same-day repeat leaves both the streak and the last
// completion date untouched.
func applyStreak(stats *storage.UserStats, completedAt time.Time) {
	if stats.LastCompletionDate == nil {
		stats.CurrentStreak = 1
	} else {
		switch delta := daysBetween(*stats.LastCompletionDate, completedAt); {
		case delta == 1:
			stats.CurrentStreak++
		case delta == 0:
			return
		default:
			// Gap of more than a day, or clock skew going backwards.
			stats.CurrentStreak = 1
		}
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	at := completedAt
	stats.LastCompletionDate = &at
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func unlockAchievements(ctx context.Context, repo *storage.AchievementRepo, stats *storage.UserStats, completedAt time.Time) ([]storage.Achievement, error) {
	var unlocked []storage.Achievement

	// Milestones first, then streaks; both use exact-equality thresholds.
	// totalCompletions only ever moves by 1, so thresholds are never skipped.
	for _, def := range milestoneAchievements {
		if stats.TotalCompletions != def.Value {
			continue
		}
		a, err := unlockOnce(ctx, repo, AchievementMilestone, def, completedAt)
		if err != nil {
			return nil, err
		}
		if a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	for _, def := range streakAchievements {
		if stats.CurrentStreak != def.Value {
			continue
		}
		a, err := unlockOnce(ctx, repo, AchievementStreak, def, completedAt)
		if err != nil {
			return nil, err
		}
		if a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked, nil
}

func unlockOnce(ctx context.Context, repo *storage.AchievementRepo, typ string, def achievementDef, completedAt time.Time) (*storage.Achievement, error) {
	exists, err := repo.Exists(ctx, typ, def.Value)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	at := completedAt
	a := storage.Achievement{
		ID:         uuid.NewString(),
		Type:       typ,
		Value:      def.Value,
		Title:      def.Title,
		Message:    def.Message,
		IsUnlocked: true,
		UnlockedAt: &at,
	}
	if err := repo.Insert(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CompletionsByTemplate returns lifetime completion counts keyed by template
// name.
func (s *Service) CompletionsByTemplate(ctx context.Context) (map[string]int, error) {
	return s.completions.CountByTemplateName(ctx)
}

// RecentAchievements returns up to limit unlocked achievements, most recent
// first.
func (s *Service) RecentAchievements(ctx context.Context, limit int) ([]storage.Achievement, error) {
	return s.achievements.ListUnlocked(ctx, limit)
}

func (s *Service) AllAchievements(ctx context.Context) ([]storage.Achievement, error) {
	return s.achievements.ListAll(ctx)
}
