package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kbmerge %s\n", a.version)
			fmt.Fprintf(out, "  commit: %s\n", a.commit)
			fmt.Fprintf(out, "  built:  %s\n", a.date)
		},
	}
}
