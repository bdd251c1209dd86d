package jsonc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsangint/vscode/pkg/errors"
	"github.com/tsangint/vscode/pkg/jsonc"
)

const editDoc = `[
  { "key": "ctrl+a", "command": "one" },
  { "key": "ctrl+b", "command": "two" },
  { "key": "ctrl+c", "command": "three" }
]`

func TestEditDelete(t *testing.T) {
	t.Run("first element", func(t *testing.T) {
		got, err := jsonc.Edit(editDoc, "\n", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, `[
  { "key": "ctrl+b", "command": "two" },
  { "key": "ctrl+c", "command": "three" }
]`, got)
	})

	t.Run("last element", func(t *testing.T) {
		got, err := jsonc.Edit(editDoc, "\n", 2, nil)
		require.NoError(t, err)
		assert.Equal(t, `[
  { "key": "ctrl+a", "command": "one" },
  { "key": "ctrl+b", "command": "two" }
]`, got)
	})

	t.Run("only element", func(t *testing.T) {
		got, err := jsonc.Edit(`[
  { "key": "ctrl+a", "command": "one" }
]`, "\n", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := jsonc.Edit(editDoc, "\n", 5, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})
}

func TestEditInsert(t *testing.T) {
	added := entry{Key: "ctrl+n", Command: "new"}

	t.Run("append", func(t *testing.T) {
		got, err := jsonc.Edit(editDoc, "\n", jsonc.Append, added)
		require.NoError(t, err)
		assert.Equal(t, `[
  { "key": "ctrl+a", "command": "one" },
  { "key": "ctrl+b", "command": "two" },
  { "key": "ctrl+c", "command": "three" },
  {
    "key": "ctrl+n",
    "command": "new"
  }
]`, got)
	})

	t.Run("append to empty array", func(t *testing.T) {
		got, err := jsonc.Edit("[]", "\n", jsonc.Append, added)
		require.NoError(t, err)
		assert.Equal(t, `[
  {
    "key": "ctrl+n",
    "command": "new"
  }
]`, got)
	})

	t.Run("insert before first element", func(t *testing.T) {
		got, err := jsonc.Edit(editDoc, "\n", 0, added)
		require.NoError(t, err)
		assert.Equal(t, `[
  {
    "key": "ctrl+n",
    "command": "new"
  },
  { "key": "ctrl+a", "command": "one" },
  { "key": "ctrl+b", "command": "two" },
  { "key": "ctrl+c", "command": "three" }
]`, got)
	})

	t.Run("result stays parseable", func(t *testing.T) {
		got, err := jsonc.Edit(editDoc, "\n", 1, added)
		require.NoError(t, err)
		var entries []entry
		require.NoError(t, jsonc.DecodeArray(got, &entries))
		require.Len(t, entries, 4)
		assert.Equal(t, "new", entries[1].Command)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := jsonc.Edit(editDoc, "\n", 4, added)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})
}
