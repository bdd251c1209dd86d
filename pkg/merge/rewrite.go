package merge

import (
	"github.com/tsangint/vscode/pkg/errors"
	"github.com/tsangint/vscode/pkg/jsonc"
	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

// applyCommands rewrites the local text with the resolved command-level
// operations. Commands whose incoming remote entries touch a key that is
// itself in binding-level conflict are escalated to conflicts instead of
// being partially applied.
func applyCommands(content, eol string, result *commandMergeResult, remoteByCommand grouping, bindingConflicts stringSet, keys *keymap.Normalizer) (string, error) {
	var err error

	for _, command := range result.removed.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		content, err = removeCommand(content, eol, command)
		if err != nil {
			return "", err
		}
	}

	for _, command := range result.added.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		bindings, ok := remoteByCommand[command]
		if !ok {
			return "", errors.NewInternalError("merge", "added command "+command+" missing from remote grouping")
		}
		if touchesConflictingKey(bindings, bindingConflicts, keys) {
			result.conflicts.add(command)
			continue
		}
		content, err = addBindings(content, eol, bindings)
		if err != nil {
			return "", err
		}
	}

	for _, command := range result.updated.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		bindings, ok := remoteByCommand[command]
		if !ok {
			return "", errors.NewInternalError("merge", "updated command "+command+" missing from remote grouping")
		}
		if touchesConflictingKey(bindings, bindingConflicts, keys) {
			result.conflicts.add(command)
			continue
		}
		content, err = updateCommand(content, eol, command, bindings)
		if err != nil {
			return "", err
		}
	}

	return content, nil
}

// touchesConflictingKey reports whether any binding entry introduces a
// canonical key already flagged as a binding-level conflict. Unbinding
// entries carry no key semantics of their own and are ignored.
func touchesConflictingKey(bindings []keybinding.Keybinding, bindingConflicts stringSet, keys *keymap.Normalizer) bool {
	for _, b := range bindings {
		if b.Unbinds() {
			continue
		}
		if bindingConflicts.has(keys.Normalize(b.Key)) {
			return true
		}
	}
	return false
}

// removeCommand deletes every record bound to command, in either spelling.
// Deletions run in reverse index order so earlier removals never shift the
// indices of later ones.
func removeCommand(content, eol, command string) (string, error) {
	bindings, err := keybinding.Parse(content)
	if err != nil {
		return "", err
	}

	target := keybinding.Command{Name: command}
	for index := len(bindings) - 1; index >= 0; index-- {
		if !target.Matches(bindings[index].Command) {
			continue
		}
		content, err = jsonc.Edit(content, eol, index, nil)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// addBindings appends remote's records for a newly added command.
func addBindings(content, eol string, bindings []keybinding.Keybinding) (string, error) {
	var err error
	for _, b := range bindings {
		content, err = jsonc.Edit(content, eol, jsonc.Append, b)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// updateCommand replaces every record of a command with remote's records,
// re-inserting them where the command's first record used to live so the
// update keeps its place in the document.
func updateCommand(content, eol, command string, bindings []keybinding.Keybinding) (string, error) {
	existing, err := keybinding.Parse(content)
	if err != nil {
		return "", err
	}

	target := keybinding.Command{Name: command}
	location := -1
	for index, b := range existing {
		if target.Matches(b.Command) {
			location = index
			break
		}
	}
	if location < 0 {
		return "", errors.NewInternalError("merge", "updated command "+command+" missing from local document")
	}

	for index := len(existing) - 1; index >= 0; index-- {
		if !target.Matches(existing[index].Command) {
			continue
		}
		content, err = jsonc.Edit(content, eol, index, nil)
		if err != nil {
			return "", err
		}
	}

	// Entries go in back to front so each insertion lands at location.
	for index := len(bindings) - 1; index >= 0; index-- {
		content, err = jsonc.Edit(content, eol, location, bindings[index])
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// conflict marker lines, git style.
const (
	markerLocalBegin = "<<<<<<< local"
	markerSeparator  = "======="
	markerRemoteEnd  = ">>>>>>> remote"
)

// wrapConflict presents both candidate documents in a two-way conflict
// block for manual resolution. The result is deliberately not parseable.
func wrapConflict(mergedContent, remoteContent, eol string) string {
	return markerLocalBegin + eol +
		mergedContent + eol +
		markerSeparator + eol +
		remoteContent + eol +
		markerRemoteEnd
}
