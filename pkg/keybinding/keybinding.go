// Package keybinding defines the keybinding record and parsing of the
// JSON-with-comments keybindings document.
package keybinding

import (
	"strings"

	"github.com/tsangint/vscode/pkg/jsonc"
)

// Keybinding is one logical entry of the keybindings document: a key chord
// bound to a command, optionally guarded by a when clause and parameterized
// by opaque arguments. A command prefixed with "-" unbinds that command for
// the key instead of binding it.
type Keybinding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	When    string `json:"when,omitempty"`
	Args    any    `json:"args,omitempty"`
}

// ParsedCommand returns the entry's command as a tagged variant.
func (k Keybinding) ParsedCommand() Command {
	return ParseCommand(k.Command)
}

// CommandName returns the command name with any unbind marker stripped.
// Entries binding and unbinding the same command share this name.
func (k Keybinding) CommandName() string {
	return k.ParsedCommand().Name
}

// Unbinds reports whether the entry removes a binding rather than adding one.
func (k Keybinding) Unbinds() bool {
	return k.ParsedCommand().Negated
}

// Command is the tagged form of a record's command string: a name plus
// whether the entry negates (unbinds) that command. Modeling the "-" prefix
// here keeps call sites from re-implementing the convention.
type Command struct {
	Name    string
	Negated bool
}

// ParseCommand splits a raw command string into its tagged form.
func ParseCommand(s string) Command {
	if strings.HasPrefix(s, "-") {
		return Command{Name: s[1:], Negated: true}
	}
	return Command{Name: s}
}

// String returns the raw command string for the variant.
func (c Command) String() string {
	if c.Negated {
		return "-" + c.Name
	}
	return c.Name
}

// Matches reports whether a raw command string refers to this command,
// in either its binding or unbinding spelling.
func (c Command) Matches(raw string) bool {
	return ParseCommand(raw).Name == c.Name
}

// Parse decodes a keybindings document into its ordered record list.
// Comments and trailing commas are tolerated; any other malformation is a
// fatal parse error.
func Parse(content string) ([]Keybinding, error) {
	var bindings []Keybinding
	if err := jsonc.DecodeArray(content, &bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}
