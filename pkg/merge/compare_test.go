package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

func TestGrouping(t *testing.T) {
	keys := keymap.New(nil)
	bindings := []keybinding.Keybinding{
		{Key: "Ctrl+A", Command: "command.a"},
		{Key: "ctrl+a", Command: "-command.a"},
		{Key: "ctrl+b", Command: "command.b"},
	}

	t.Run("by canonical key", func(t *testing.T) {
		g := byKey(bindings, keys)
		assert.Len(t, g, 2)
		assert.Len(t, g["ctrl+a"], 2)
		assert.Len(t, g["ctrl+b"], 1)
	})

	t.Run("by command folds unbind entries", func(t *testing.T) {
		g := byCommand(bindings)
		assert.Len(t, g, 2)
		assert.Len(t, g["command.a"], 2)
		assert.Len(t, g["command.b"], 1)
	})
}

func TestCompare(t *testing.T) {
	keys := keymap.New(nil)
	a := keybinding.Keybinding{Key: "ctrl+a", Command: "command.a"}
	aGuarded := keybinding.Keybinding{Key: "ctrl+a", Command: "command.a", When: "editorFocus"}
	b := keybinding.Keybinding{Key: "ctrl+b", Command: "command.b"}
	c := keybinding.Keybinding{Key: "ctrl+c", Command: "command.c"}

	from := byKey([]keybinding.Keybinding{a, b}, keys)
	to := byKey([]keybinding.Keybinding{aGuarded, c}, keys)

	result := compare(from, to, keys)
	assert.Equal(t, []string{"ctrl+c"}, result.added.sorted())
	assert.Equal(t, []string{"ctrl+b"}, result.removed.sorted())
	assert.Equal(t, []string{"ctrl+a"}, result.updated.sorted())
	assert.False(t, result.isEmpty())

	t.Run("identical groupings are empty", func(t *testing.T) {
		result := compare(from, from, keys)
		assert.True(t, result.isEmpty())
	})

	t.Run("raw key spelling never counts as an update", func(t *testing.T) {
		spelled := byKey([]keybinding.Keybinding{{Key: "Shift+Ctrl+A", Command: "command.a"}}, keys)
		canonical := byKey([]keybinding.Keybinding{{Key: "ctrl+shift+a", Command: "command.a"}}, keys)
		assert.True(t, compare(spelled, canonical, keys).isEmpty())
	})
}

func TestAllAdded(t *testing.T) {
	g := byCommand([]keybinding.Keybinding{
		{Key: "ctrl+a", Command: "command.a"},
		{Key: "ctrl+b", Command: "command.b"},
	})

	result := allAdded(g)
	assert.Equal(t, []string{"command.a", "command.b"}, result.added.sorted())
	assert.Empty(t, result.removed)
	assert.Empty(t, result.updated)
}

func TestSameBindings(t *testing.T) {
	bind := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", When: "a && b"}
	bindEquivalent := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", When: "b && a"}
	bindOther := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", When: "c"}
	unbind := keybinding.Keybinding{Key: "ctrl+x", Command: "-command.x"}

	t.Run("guard equivalence", func(t *testing.T) {
		assert.True(t, sameBindings(
			[]keybinding.Keybinding{bind},
			[]keybinding.Keybinding{bindEquivalent},
		))
		assert.False(t, sameBindings(
			[]keybinding.Keybinding{bind},
			[]keybinding.Keybinding{bindOther},
		))
	})

	t.Run("order within a partition matters", func(t *testing.T) {
		assert.False(t, sameBindings(
			[]keybinding.Keybinding{bind, bindOther},
			[]keybinding.Keybinding{bindOther, bind},
		))
	})

	t.Run("interleaving across partitions does not", func(t *testing.T) {
		assert.True(t, sameBindings(
			[]keybinding.Keybinding{bind, unbind},
			[]keybinding.Keybinding{unbind, bind},
		))
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.False(t, sameBindings(
			[]keybinding.Keybinding{bind},
			[]keybinding.Keybinding{bind, bindOther},
		))
	})

	t.Run("args compared deeply", func(t *testing.T) {
		withArgs := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", Args: map[string]any{"n": 1.0}}
		sameArgs := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", Args: map[string]any{"n": 1.0}}
		otherArgs := keybinding.Keybinding{Key: "ctrl+x", Command: "command.x", Args: map[string]any{"n": 2.0}}

		assert.True(t, sameBinding(withArgs, sameArgs))
		assert.False(t, sameBinding(withArgs, otherArgs))
	})
}
