package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"checkline/internal/engine"
	"checkline/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var items []string
	var optional []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or update a checklist template",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("template name is required")
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

			in := engine.UpsertTemplateInput{
				Name:     args[0],
				Category: category,
			}
			for _, title := range items {
				in.Items = append(in.Items, engine.ItemInput{Title: title, IsRequired: true})
			}
			for _, title := range optional {
				in.Items = append(in.Items, engine.ItemInput{Title: title, IsRequired: false})
			}

			tpl, err := svc.UpsertTemplate(ctx, in)
			if err != nil {
				return err
			}
			if tpl == nil {
				return errors.New("template name is required")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlus, "Saved template"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", tpl.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", ui.Muted.Render(tpl.ID)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Items", len(tpl.Items)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label (free text)")
	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "Checklist item (repeatable)")
	cmd.Flags().StringArrayVar(&optional, "optional", nil, "Optional checklist item (repeatable)")

	return cmd
}
