package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"checkline/internal/ui"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List checklist templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := svc.ListTemplates(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No templates. Add one with `ckl add`."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconList, "Templates"))
			for _, t := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(t.Name),
					ui.Muted.Render("["+t.Category+"]"),
					ui.Muted.Render(fmt.Sprintf("(%d items, id %s)", len(t.Items), t.ID)))
			}
			return nil
		},
	}
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <template>",
		Short: "Show a template and its items",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconList, t.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Category", t.Category))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", ui.Muted.Render(t.ID)))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for i, it := range t.Items {
				line := fmt.Sprintf("%2d. %s", i+1, it.Title)
				if !it.IsRequired {
					line += " " + ui.Muted.Render("(optional)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				if it.Notes != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "    "+ui.Muted.Render(*it.Notes))
				}
			}
			return nil
		},
	}
	return cmd
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <template>",
		Short: "Delete a template (existing runs keep their snapshots)",
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
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to delete."))
				return nil
			}
			if err := svc.DeleteTemplate(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", ui.IconDone, ui.Key.Render(t.Name))
			return nil
		},
	}
	return cmd
}
