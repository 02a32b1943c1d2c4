package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"checkline/internal/engine"
	"checkline/internal/storage"
	"checkline/internal/ui"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply the built-in sample templates",
		Long:  "Upserts the built-in template catalog by name. With --force the defaults are re-applied even if the current seed version marker is set, replacing item lists of same-named templates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := engine.NewService(db)
			if err := svc.SeedDefaults(ctx, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Seeded sample templates (version %d)\n", ui.IconSeed, engine.SeedVersion)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-apply defaults even when already seeded at this version")

	return cmd
}

// newResetCmd exposes the developer/test hooks: clearing the onboarding
// marker and wiping all data.
func newResetCmd() *cobra.Command {
	var onboarding bool
	var data bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset local state (developer/test hooks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !onboarding && !data {
				return errors.New("nothing to reset: pass --onboarding and/or --data")
			}

			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := storage.NewSettingsRepo(db)
			if onboarding {
				if err := settings.Delete(ctx, storage.SettingOnboardingCompleted); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Onboarding marker cleared."))
			}
			if data {
				tables := []string{
					"run_items", "runs",
					"template_items", "templates",
					"completions", "achievements", "user_stats",
					"settings",
				}
				for _, table := range tables {
					if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
						return fmt.Errorf("wipe %s: %w", table, err)
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("All data wiped."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onboarding, "onboarding", false, "Clear the onboarding-completed marker")
	cmd.Flags().BoolVar(&data, "data", false, "Delete all templates, runs, stats and achievements")

	return cmd
}
