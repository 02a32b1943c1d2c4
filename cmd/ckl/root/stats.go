package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"checkline/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion stats, streaks and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.StatsRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Your Stats"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total completions", stats.TotalCompletions))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current streak", fmt.Sprintf("%d %s", stats.CurrentStreak, ui.IconFlame)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Longest streak", stats.LongestStreak))
			if stats.LastCompletionDate != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Last completion", stats.LastCompletionDate.Format("2006-01-02")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			counts, err := svc.CompletionsByTemplate(ctx)
			if err != nil {
				return err
			}
			if len(counts) > 0 {
				names := make([]string, 0, len(counts))
				for name := range counts {
					names = append(names, name)
				}
				sort.Slice(names, func(i, j int) bool {
					if counts[names[i]] != counts[names[j]] {
						return counts[names[i]] > counts[names[j]]
					}
					return names[i] < names[j]
				})

				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Completions by template"))
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(name), ui.Muted.Render(fmt.Sprintf("×%d", counts[name])))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			if showAll {
				all, err := svc.AllAchievements(ctx)
				if err != nil {
					return err
				}
				if len(all) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements"))
					for _, a := range all {
						when := ""
						if a.UnlockedAt != nil {
							when = a.UnlockedAt.Format("2006-01-02")
						}
						fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Gold.Render(a.Title), ui.Muted.Render(when))
					}
				}
				return nil
			}

			recent, err := svc.RecentAchievements(ctx, 5)
			if err != nil {
				return err
			}
			if len(recent) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Recent achievements"))
				for _, a := range recent {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Gold.Render(a.Title), ui.Muted.Render(a.Message))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "List every achievement instead of the recent five")

	return cmd
}
