package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsangint/vscode/pkg/errors"
	"github.com/tsangint/vscode/pkg/keymap"
	"github.com/tsangint/vscode/pkg/merge"
)

// NewMergeCommand creates the merge command with app dependencies.
func (a *App) NewMergeCommand() *cobra.Command {
	var (
		keymapPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "merge <local> <remote> [base]",
		Short: "Three-way merge two keybindings files",
		Long: `Merge reconciles a local and a remote keybindings file against an
optional base snapshot. Without a base, every entry on both sides counts
as new.

The merged document is written to stdout, or to --output when given.
When manual resolution is required the output contains git-style
conflict markers and the command exits with an error.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMerge(cmd, args, keymapPath, outputPath)
		},
	}

	cmd.Flags().StringVar(&keymapPath, "keymap", "", "YAML table mapping raw keys to canonical keys")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the merged document to a file instead of stdout")

	return cmd
}

// runMerge executes the three-way merge and writes the result.
func (a *App) runMerge(cmd *cobra.Command, args []string, keymapPath, outputPath string) error {
	log := a.Logger()

	localContent, err := readFile(args[0])
	if err != nil {
		return err
	}
	remoteContent, err := readFile(args[1])
	if err != nil {
		return err
	}
	var baseContent string
	if len(args) == 3 {
		if baseContent, err = readFile(args[2]); err != nil {
			return err
		}
	}

	keys, err := a.loadKeymap(keymapPath)
	if err != nil {
		return err
	}

	result, err := merge.Merge(localContent, remoteContent, baseContent, keys)
	if err != nil {
		return fmt.Errorf("merging %s and %s: %w", args[0], args[1], err)
	}

	log.Debug().
		Bool("has_changes", result.HasChanges).
		Bool("has_conflicts", result.HasConflicts).
		Msg("Merge completed")

	if err := writeOutput(cmd, outputPath, result.Content); err != nil {
		return err
	}

	if result.HasConflicts {
		log.Warn().Msg("Merge produced conflicts; resolve the marked sections manually")
		return errors.New("merge completed with conflicts")
	}
	if !result.HasChanges {
		log.Info().Msg("No changes between local and remote")
	}
	return nil
}

// loadKeymap loads the normalization table from the flag, falling back to
// the configured default path, then to pure chord normalization.
func (a *App) loadKeymap(path string) (*keymap.Normalizer, error) {
	if path == "" {
		path = a.config.KeymapPath
	}
	if path == "" {
		return keymap.New(nil), nil
	}
	return keymap.LoadFile(path)
}

// readFile reads one input document.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError("read", path, err)
	}
	return string(data), nil
}

// writeOutput writes the result to the output file or the command's stdout.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}
