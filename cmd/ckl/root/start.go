package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"checkline/internal/tui"
	"checkline/internal/ui"
)

func newStartCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "start <template>",
		Short: "Start a run from a template",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("template id or name is required")
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

			t, err := svc.GetTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}

			run, err := svc.StartRun(ctx, t.ID)
			if err != nil {
				return err
			}

			if interactive {
				return tui.RunChecklist(ctx, svc, run.ID, cmd.OutOrStdout())
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRun, "Started "+run.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Run ID", ui.Muted.Render(run.ID)))
			for i, it := range run.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s\n", i+1, ui.Checkbox(it.IsChecked), it.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Check items with `ckl check <run> <item#>`, or open with `ckl run <run>`."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "t", false, "Open the run in the interactive checklist screen")

	return cmd
}
