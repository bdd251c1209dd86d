package keybinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsangint/vscode/pkg/errors"
	"github.com/tsangint/vscode/pkg/keybinding"
)

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		content := `// Place your key bindings in this file
[
	{ "key": "ctrl+p", "command": "workbench.action.quickOpen" },
	{ "key": "ctrl+c", "command": "-editor.action.copy", "when": "terminalFocus" },
	{ "key": "ctrl+j", "command": "workbench.action.togglePanel", "args": { "panel": "output" } }
]`
		bindings, err := keybinding.Parse(content)
		require.NoError(t, err)
		require.Len(t, bindings, 3)

		assert.Equal(t, "ctrl+p", bindings[0].Key)
		assert.Equal(t, "workbench.action.quickOpen", bindings[0].Command)
		assert.Empty(t, bindings[0].When)
		assert.Nil(t, bindings[0].Args)

		assert.Equal(t, "terminalFocus", bindings[1].When)
		assert.True(t, bindings[1].Unbinds())
		assert.Equal(t, "editor.action.copy", bindings[1].CommandName())

		args, ok := bindings[2].Args.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "output", args["panel"])
	})

	t.Run("empty document", func(t *testing.T) {
		bindings, err := keybinding.Parse("[]")
		require.NoError(t, err)
		assert.Empty(t, bindings)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := keybinding.Parse(`{ "key": "ctrl+p" }`)
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))
	})
}

func TestParseCommand(t *testing.T) {
	bind := keybinding.ParseCommand("editor.action.copy")
	assert.Equal(t, "editor.action.copy", bind.Name)
	assert.False(t, bind.Negated)
	assert.Equal(t, "editor.action.copy", bind.String())

	unbind := keybinding.ParseCommand("-editor.action.copy")
	assert.Equal(t, "editor.action.copy", unbind.Name)
	assert.True(t, unbind.Negated)
	assert.Equal(t, "-editor.action.copy", unbind.String())
}

func TestCommandMatches(t *testing.T) {
	c := keybinding.Command{Name: "editor.action.copy"}

	assert.True(t, c.Matches("editor.action.copy"))
	assert.True(t, c.Matches("-editor.action.copy"))
	assert.False(t, c.Matches("editor.action.cut"))
}
