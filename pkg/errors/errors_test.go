package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/tsangint/vscode/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestParseError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "jsonc",
			Offset:  42,
			Message: "unexpected token",
		}
		assert.Equal(t, "jsonc parse error at offset 42: unexpected token", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrParseFailed))
	})

	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "jsonc",
			File:    "keybindings.json",
			Offset:  7,
			Message: "unexpected token",
		}
		assert.Equal(t, "parse error in jsonc file keybindings.json at offset 7: unexpected token", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		cause := errors.New("boom")
		err := pkgerrors.NewParseError("when-clause", "unbalanced parens", cause)
		assert.Equal(t, "when-clause parse error: unbalanced parens", err.Error())
		assert.True(t, pkgerrors.IsParseError(err))
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "key",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field key: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "not an array",
		}
		assert.Equal(t, "validation failed: not an array", err.Error())
		assert.True(t, pkgerrors.IsInvalidInput(err))
	})
}

func TestInternalError(t *testing.T) {
	err := pkgerrors.NewInternalError("merge", "updated key missing from grouping")
	assert.Equal(t, "internal error in merge: updated key missing from grouping", err.Error())
	assert.True(t, pkgerrors.IsInternal(err))
	assert.False(t, pkgerrors.IsParseError(err))
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/keybindings.json", cause)
	assert.Equal(t, "IO error during read of /tmp/keybindings.json: permission denied", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}
