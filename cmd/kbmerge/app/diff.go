package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsangint/vscode/pkg/merge"
)

// NewDiffCommand creates the diff command with app dependencies.
func (a *App) NewDiffCommand() *cobra.Command {
	var keymapPath string

	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two keybindings files by canonical key",
		Long: `Diff groups both files' entries by canonical key chord and reports
which chords were added, removed, or updated going from the first file
to the second.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args, keymapPath)
		},
	}

	cmd.Flags().StringVar(&keymapPath, "keymap", "", "YAML table mapping raw keys to canonical keys")

	return cmd
}

// runDiff compares the two documents and prints the changeset.
func (a *App) runDiff(cmd *cobra.Command, args []string, keymapPath string) error {
	fromContent, err := readFile(args[0])
	if err != nil {
		return err
	}
	toContent, err := readFile(args[1])
	if err != nil {
		return err
	}

	keys, err := a.loadKeymap(keymapPath)
	if err != nil {
		return err
	}

	changes, err := merge.Diff(fromContent, toContent, keys)
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", args[0], args[1], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, changes.String())
	for _, key := range changes.Added {
		fmt.Fprintf(out, "  + %s\n", key)
	}
	for _, key := range changes.Removed {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	for _, key := range changes.Updated {
		fmt.Fprintf(out, "  ~ %s\n", key)
	}
	return nil
}
