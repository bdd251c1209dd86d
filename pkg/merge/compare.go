package merge

import (
	"sort"

	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

// grouping maps a projection key (canonical key chord or command name) to
// the records that project onto it, in document order.
type grouping map[string][]keybinding.Keybinding

// byKey groups records by their canonical key chord.
func byKey(bindings []keybinding.Keybinding, keys *keymap.Normalizer) grouping {
	g := make(grouping, len(bindings))
	for _, b := range bindings {
		canonical := keys.Normalize(b.Key)
		g[canonical] = append(g[canonical], b)
	}
	return g
}

// byCommand groups records by command name. Binding and unbinding entries
// for the same command land in the same group.
func byCommand(bindings []keybinding.Keybinding) grouping {
	g := make(grouping, len(bindings))
	for _, b := range bindings {
		name := b.CommandName()
		g[name] = append(g[name], b)
	}
	return g
}

// compareResult holds the disjoint key sets of one directed comparison.
type compareResult struct {
	added   stringSet
	removed stringSet
	updated stringSet
}

// isEmpty reports whether the comparison found no difference.
func (c compareResult) isEmpty() bool {
	return len(c.added) == 0 && len(c.removed) == 0 && len(c.updated) == 0
}

// compare computes the added, removed, and updated grouping keys going
// from one grouping to another. Records are compared with their key fields
// rewritten to canonical form so raw spelling differences never count as
// updates.
func compare(from, to grouping, keys *keymap.Normalizer) compareResult {
	result := compareResult{
		added:   stringSet{},
		removed: stringSet{},
		updated: stringSet{},
	}

	for key := range to {
		if _, ok := from[key]; !ok {
			result.added.add(key)
		}
	}
	for key, fromList := range from {
		toList, ok := to[key]
		if !ok {
			result.removed.add(key)
			continue
		}
		if !sameBindings(rewriteKeys(fromList, keys), rewriteKeys(toList, keys)) {
			result.updated.add(key)
		}
	}
	return result
}

// allAdded is the comparison against a missing base snapshot: every key of
// the grouping counts as newly added.
func allAdded(g grouping) compareResult {
	result := compareResult{
		added:   stringSet{},
		removed: stringSet{},
		updated: stringSet{},
	}
	for key := range g {
		result.added.add(key)
	}
	return result
}

// rewriteKeys copies the records with Key replaced by its canonical form.
func rewriteKeys(bindings []keybinding.Keybinding, keys *keymap.Normalizer) []keybinding.Keybinding {
	out := make([]keybinding.Keybinding, len(bindings))
	for i, b := range bindings {
		b.Key = keys.Normalize(b.Key)
		out[i] = b
	}
	return out
}

// stringSet is a set of grouping keys.
type stringSet map[string]struct{}

func (s stringSet) add(key string) {
	s[key] = struct{}{}
}

func (s stringSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

// sorted returns the set's keys in lexical order for deterministic
// iteration.
func (s stringSet) sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
