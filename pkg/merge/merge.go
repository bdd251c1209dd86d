// Package merge implements three-way reconciliation of keybindings
// documents. Given a base snapshot and two snapshots that evolved from it,
// it detects whether one side strictly moved forward, and otherwise merges
// at the semantic record level: first grouped by canonical key chord to
// decide the cheap outcomes, then grouped by command to compute the
// additions, removals, updates, and conflicts that both-sided divergence
// produces.
//
// The engine is a pure function over its inputs: it performs no I/O, keeps
// no state between calls, and never mutates the supplied texts or
// normalization table, so concurrent calls with different inputs are safe.
package merge

import (
	"github.com/tsangint/vscode/pkg/jsonc"
	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

// Result is the outcome of a merge.
type Result struct {
	// Content is the merged document. When HasConflicts is true it contains
	// conflict marker lines and is meant for manual resolution in an
	// editor, not for parsing.
	Content string

	// HasChanges reports whether local and remote differed at all.
	HasChanges bool

	// HasConflicts reports whether manual resolution is required.
	HasConflicts bool
}

// Merge three-way merges the local and remote keybindings documents
// against the base snapshot. An empty baseContent means no base exists and
// both sides count as entirely new. The normalizer must cover every raw
// key appearing in local and remote; a nil normalizer applies the default
// chord normalization to all keys.
func Merge(localContent, remoteContent, baseContent string, keys *keymap.Normalizer) (*Result, error) {
	local, err := keybinding.Parse(localContent)
	if err != nil {
		return nil, err
	}
	remote, err := keybinding.Parse(remoteContent)
	if err != nil {
		return nil, err
	}

	hasBase := baseContent != ""
	var base []keybinding.Keybinding
	if hasBase {
		if base, err = keybinding.Parse(baseContent); err != nil {
			return nil, err
		}
	}
	if keys == nil {
		keys = keymap.New(nil)
	}

	gate := resolveByKey(local, remote, base, hasBase, keys)

	switch {
	case !gate.localForwarded && !gate.remoteForwarded:
		// No difference between local and remote.
		return &Result{Content: localContent}, nil
	case !gate.localForwarded:
		// Remote strictly moved forward; take it verbatim.
		return &Result{Content: remoteContent, HasChanges: true}, nil
	case !gate.remoteForwarded:
		// Local strictly moved forward; keep it verbatim.
		return &Result{Content: localContent, HasChanges: true}, nil
	}

	// Both sides diverged from base: merge command by command.
	localByCommand := byCommand(local)
	remoteByCommand := byCommand(remote)

	localToRemote := compare(localByCommand, remoteByCommand, keys)
	baseToLocal := allAdded(localByCommand)
	baseToRemote := allAdded(remoteByCommand)
	if hasBase {
		baseByCommand := byCommand(base)
		baseToLocal = compare(baseByCommand, localByCommand, keys)
		baseToRemote = compare(baseByCommand, remoteByCommand, keys)
	}

	commands := foldCommands(foldInput{
		localToRemote: localToRemote,
		baseToLocal:   baseToLocal,
		baseToRemote:  baseToRemote,
	})

	eol := jsonc.DetectEOL(localContent)
	content, err := applyCommands(localContent, eol, &commands, remoteByCommand, gate.conflicts, keys)
	if err != nil {
		return nil, err
	}

	hasConflicts := len(commands.conflicts) > 0
	if hasConflicts {
		content = wrapConflict(content, remoteContent, eol)
	}

	return &Result{
		Content:      content,
		HasChanges:   true,
		HasConflicts: hasConflicts,
	}, nil
}
