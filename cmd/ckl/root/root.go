package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"checkline/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ckl",
	Short:         "Checkline — local-first checklist manager",
	Long:          "Checkline is a local-first CLI/TUI checklist manager with reusable templates, run tracking, streaks and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newTemplatesCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newSeedCmd(),
		newStartCmd(),
		newCheckCmd(),
		newFinishCmd(),
		newRunCmd(),
		newRunsCmd(),
		newStatsCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
