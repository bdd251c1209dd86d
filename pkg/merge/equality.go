package merge

import (
	"reflect"

	"github.com/tsangint/vscode/pkg/contextkey"
	"github.com/tsangint/vscode/pkg/keybinding"
)

// sameBinding reports structural equality of two records: same command,
// same key string, deeply equal args, and semantically equivalent when
// guards. A guard present on one side only is never equal.
func sameBinding(a, b keybinding.Keybinding) bool {
	if a.Command != b.Command {
		return false
	}
	if a.Key != b.Key {
		return false
	}
	if !contextkey.Equivalent(a.When, b.When) {
		return false
	}
	return reflect.DeepEqual(a.Args, b.Args)
}

// sameList is order-sensitive list equality. Reordering entries counts as
// a change because document position matters for later textual edits.
func sameList(a, b []keybinding.Keybinding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameBinding(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameBindings is command-aware list equality: binding entries and
// unbinding entries are compared as independent partitions, so interleaving
// positive and negative entries differently does not register as a change.
func sameBindings(a, b []keybinding.Keybinding) bool {
	if !sameList(partition(a, false), partition(b, false)) {
		return false
	}
	return sameList(partition(a, true), partition(b, true))
}

// partition selects the binding (negated=false) or unbinding (negated=true)
// entries of a list, preserving order.
func partition(bindings []keybinding.Keybinding, negated bool) []keybinding.Keybinding {
	var out []keybinding.Keybinding
	for _, b := range bindings {
		if b.Unbinds() == negated {
			out = append(out, b)
		}
	}
	return out
}
