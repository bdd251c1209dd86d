// Package keymap canonicalizes raw keybinding key strings so that
// different spellings of the same chord ("Ctrl+Shift+P", "shift+ctrl+p")
// group together. Callers may supply an explicit raw-to-canonical table,
// usually produced by the platform keyboard layout; keys missing from the
// table fall back to a deterministic normalization.
package keymap

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsangint/vscode/pkg/errors"
)

// lower folds key strings case-insensitively.
var lower = cases.Lower(language.Und)

// modifierRank fixes the canonical modifier order within a chord.
var modifierRank = map[string]int{
	"ctrl":  1,
	"shift": 2,
	"alt":   3,
	"meta":  4,
}

// modifierAlias folds platform spellings onto one modifier name.
var modifierAlias = map[string]string{
	"cmd":     "meta",
	"win":     "meta",
	"command": "meta",
	"windows": "meta",
	"control": "ctrl",
	"option":  "alt",
}

// Normalizer maps raw key strings to their canonical form.
type Normalizer struct {
	table map[string]string
}

// New creates a Normalizer over the given raw-to-canonical table.
// A nil table is valid; every key then uses the fallback normalization.
func New(table map[string]string) *Normalizer {
	return &Normalizer{table: table}
}

// LoadFile reads a YAML raw-to-canonical table from path.
func LoadFile(path string) (*Normalizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	table := map[string]string{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &errors.ParseError{
			Format:  "yaml",
			File:    path,
			Offset:  -1,
			Message: err.Error(),
			Err:     err,
		}
	}
	return New(table), nil
}

// Normalize returns the canonical form of a raw key string. Table entries
// win; everything else is normalized chord by chord.
func (n *Normalizer) Normalize(key string) string {
	if n != nil && n.table != nil {
		if canonical, ok := n.table[key]; ok {
			return canonical
		}
	}

	chords := strings.Fields(lower.String(key))
	for i, chord := range chords {
		chords[i] = normalizeChord(chord)
	}
	return strings.Join(chords, " ")
}

// normalizeChord orders a single chord's modifiers canonically
// (ctrl shift alt meta) and keeps the terminal key last.
func normalizeChord(chord string) string {
	parts := strings.Split(chord, "+")
	modifiers := make([]string, 0, len(parts))
	var terminal string

	for _, part := range parts {
		if alias, ok := modifierAlias[part]; ok {
			part = alias
		}
		if _, ok := modifierRank[part]; ok {
			modifiers = append(modifiers, part)
			continue
		}
		terminal = part
	}

	ordered := make([]string, 0, len(parts))
	for _, name := range []string{"ctrl", "shift", "alt", "meta"} {
		for _, m := range modifiers {
			if m == name {
				ordered = append(ordered, name)
				break
			}
		}
	}
	if terminal != "" {
		ordered = append(ordered, terminal)
	}
	return strings.Join(ordered, "+")
}
