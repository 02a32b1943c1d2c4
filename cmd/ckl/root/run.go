package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"checkline/internal/engine"
	"checkline/internal/tui"
	"checkline/internal/ui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <run>",
		Short: "Open a run in the interactive checklist screen",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("run id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunChecklist(ctx, svc, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := svc.ListRuns(ctx)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No runs yet. Start one with `ckl start`."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRun, "Runs"))
			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s  %s  %s  %s\n",
					ui.Key.Render(r.Title),
					ui.RunStatus(r.CompletedAt != nil),
					ui.ProgressBar(engine.Progress(&r), 12),
					ui.Muted.Render(r.ID))
			}
			return nil
		},
	}
	return cmd
}
