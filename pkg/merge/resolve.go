package merge

import (
	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

// bindingMergeResult is the outcome of the coarse binding-level gate.
type bindingMergeResult struct {
	localForwarded  bool
	remoteForwarded bool

	// conflicts is the binding-level conflict set. It stays empty today:
	// the gate either short-circuits or hands off to the command-level
	// merge without producing conflicts of its own. The set is still
	// threaded through the rewriter so binding-level conflicts gain a
	// seat the moment something starts producing them.
	conflicts stringSet
}

// resolveByKey compares the three snapshots grouped by canonical key and
// decides which side, if any, strictly moved forward. Only when both sides
// diverged from base does the caller pay for the command-level merge.
func resolveByKey(local, remote, base []keybinding.Keybinding, hasBase bool, keys *keymap.Normalizer) bindingMergeResult {
	result := bindingMergeResult{conflicts: stringSet{}}

	localByKey := byKey(local, keys)
	remoteByKey := byKey(remote, keys)

	localToRemote := compare(localByKey, remoteByKey, keys)
	if localToRemote.isEmpty() {
		return result
	}

	baseToLocal := allAdded(localByKey)
	baseToRemote := allAdded(remoteByKey)
	if hasBase {
		baseByKey := byKey(base, keys)
		baseToLocal = compare(baseByKey, localByKey, keys)
		baseToRemote = compare(baseByKey, remoteByKey, keys)
	}

	if baseToLocal.isEmpty() {
		result.remoteForwarded = true
		return result
	}
	if baseToRemote.isEmpty() {
		result.localForwarded = true
		return result
	}

	result.localForwarded = true
	result.remoteForwarded = true
	return result
}

// commandMergeResult is the outcome of the fine-grained command-level merge.
type commandMergeResult struct {
	added     stringSet
	removed   stringSet
	updated   stringSet
	conflicts stringSet
}

// foldInput bundles the three pairwise command comparisons the fold rules
// consult.
type foldInput struct {
	localToRemote compareResult
	baseToLocal   compareResult
	baseToRemote  compareResult
}

// foldRule places a slice of commands into the accumulating result.
// A command already in conflicts is skipped by every later rule.
type foldRule func(foldInput, *commandMergeResult)

// foldCommands folds the three command comparisons into one merge result.
// The rules run in fixed priority order; keeping each rule a named function
// makes the order auditable and each rule testable on its own.
func foldCommands(in foldInput) commandMergeResult {
	result := commandMergeResult{
		added:     stringSet{},
		removed:   stringSet{},
		updated:   stringSet{},
		conflicts: stringSet{},
	}

	rules := []foldRule{
		ruleLocalRemovals,
		ruleRemoteRemovals,
		ruleLocalAdditions,
		ruleRemoteAdditions,
		ruleLocalUpdates,
		ruleRemoteUpdates,
	}
	for _, rule := range rules {
		rule(in, &result)
	}
	return result
}

// ruleLocalRemovals: a command deleted locally while remote edited it is a
// conflict. A plain local deletion needs no action since output assembly
// starts from local content.
func ruleLocalRemovals(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToLocal.removed.sorted() {
		if in.baseToRemote.updated.has(command) {
			result.conflicts.add(command)
		}
	}
}

// ruleRemoteRemovals: a command deleted remotely while local edited it is a
// conflict; otherwise the deletion is applied.
func ruleRemoteRemovals(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToRemote.removed.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		if in.baseToLocal.updated.has(command) {
			result.conflicts.add(command)
		} else {
			result.removed.add(command)
		}
	}
}

// ruleLocalAdditions: a command added on both sides conflicts only when the
// two sides added different content. Local-only additions are already part
// of the local document.
func ruleLocalAdditions(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToLocal.added.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		if in.baseToRemote.added.has(command) && in.localToRemote.updated.has(command) {
			result.conflicts.add(command)
		}
	}
}

// ruleRemoteAdditions: a command added only remotely is applied; added on
// both sides it was already adjudicated by ruleLocalAdditions.
func ruleRemoteAdditions(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToRemote.added.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		if !in.baseToLocal.added.has(command) {
			result.added.add(command)
		}
	}
}

// ruleLocalUpdates: a command updated on both sides conflicts when the
// resulting content differs. Matching updates need no action.
func ruleLocalUpdates(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToLocal.updated.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		if in.baseToRemote.updated.has(command) && in.localToRemote.updated.has(command) {
			result.conflicts.add(command)
		}
	}
}

// ruleRemoteUpdates: a command updated only remotely takes remote's content.
func ruleRemoteUpdates(in foldInput, result *commandMergeResult) {
	for _, command := range in.baseToRemote.updated.sorted() {
		if result.conflicts.has(command) {
			continue
		}
		if !in.baseToLocal.updated.has(command) {
			result.updated.add(command)
		}
	}
}
