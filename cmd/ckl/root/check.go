package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"checkline/internal/engine"
	"checkline/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <run> <item#>",
		Short: "Toggle one item of a run",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("run id and item number are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("item number must be an integer")
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

			run, err := svc.GetRun(ctx, args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %q not found", args[0])
			}

			n, _ := strconv.Atoi(args[1])
			if n < 1 || n > len(run.Items) {
				return fmt.Errorf("item number out of range (1-%d)", len(run.Items))
			}

			it, err := svc.ToggleItem(ctx, run.ID, run.Items[n-1].ID)
			if err != nil {
				return err
			}
			if it == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing toggled."))
				return nil
			}

			run, err = svc.GetRun(ctx, run.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Checkbox(it.IsChecked), it.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.ProgressBar(engine.Progress(run), 24))
			return nil
		},
	}
	return cmd
}

func newFinishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish <run>",
		Short: "Finish a run (all required items must be checked)",
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

			res, err := svc.FinishRun(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Good.Render("Finished "+res.Run.Title))
			for _, a := range res.Unlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n", ui.IconTrophy, ui.BadgeUnlocked, ui.Gold.Render(a.Title), a.Message)
			}
			return nil
		},
	}
	return cmd
}
