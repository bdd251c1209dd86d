package merge

import (
	"fmt"
	"strings"

	"github.com/tsangint/vscode/pkg/keybinding"
	"github.com/tsangint/vscode/pkg/keymap"
)

// Changeset describes the binding-level differences between two
// keybindings documents, keyed by canonical key chord.
type Changeset struct {
	Added   []string // canonical keys present only in the target document
	Removed []string // canonical keys present only in the source document
	Updated []string // canonical keys whose records differ
}

// Diff compares two keybindings documents grouped by canonical key.
func Diff(fromContent, toContent string, keys *keymap.Normalizer) (*Changeset, error) {
	from, err := keybinding.Parse(fromContent)
	if err != nil {
		return nil, err
	}
	to, err := keybinding.Parse(toContent)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = keymap.New(nil)
	}

	result := compare(byKey(from, keys), byKey(to, keys), keys)
	return &Changeset{
		Added:   result.added.sorted(),
		Removed: result.removed.sorted(),
		Updated: result.updated.sorted(),
	}, nil
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0 || len(c.Updated) > 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if !c.HasChanges() {
		return "No changes detected"
	}

	var parts []string
	if len(c.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(c.Added)))
	}
	if len(c.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(c.Removed)))
	}
	if len(c.Updated) > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", len(c.Updated)))
	}
	return fmt.Sprintf("Keybindings: %s", strings.Join(parts, ", "))
}
