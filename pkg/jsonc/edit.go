package jsonc

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tsangint/vscode/pkg/errors"
)

// Append is the index passed to Edit to insert after the last element.
const Append = -1

// Edit applies one positional edit to the top-level array in content and
// returns the rewritten text.
//
// A nil value deletes the element at index. A non-nil value is serialized
// and inserted before the element at index, or appended when index is
// Append or equals the current element count. Indices refer to the current
// parse of content, so callers applying several deletions must work in
// reverse index order.
func Edit(content, eol string, index int, value any) (string, error) {
	arr, err := parseArray(content)
	if err != nil {
		return "", err
	}

	if value == nil {
		return deleteAt(content, arr, index)
	}
	return insertAt(content, eol, arr, index, value)
}

// deleteAt removes the element at index along with one adjacent separator.
func deleteAt(content string, arr arrayInfo, index int) (string, error) {
	if index < 0 || index >= len(arr.Elems) {
		return "", errors.NewValidationError("index", index, "element index out of range")
	}

	var from, to int
	switch {
	case index+1 < len(arr.Elems):
		// Removing up to the next element's start keeps its position stable.
		from, to = arr.Elems[index].Start, arr.Elems[index+1].Start
	case index > 0:
		from, to = arr.Elems[index-1].End, arr.Elems[index].End
	default:
		// Only element: collapse the array body.
		from, to = arr.Open+1, arr.Close
	}

	return content[:from] + content[to:], nil
}

// insertAt serializes value and splices it into the array text.
func insertAt(content, eol string, arr arrayInfo, index int, value any) (string, error) {
	if index != Append && (index < 0 || index > len(arr.Elems)) {
		return "", errors.NewValidationError("index", index, "element index out of range")
	}

	indent, unit := indentation(content, arr)
	entry, err := marshalEntry(value, indent, unit)
	if err != nil {
		return "", err
	}

	if index == Append || index == len(arr.Elems) {
		if len(arr.Elems) == 0 {
			body := "[" + eol + indent + entry + eol + "]"
			return content[:arr.Open] + body + content[arr.Close+1:], nil
		}
		last := arr.Elems[len(arr.Elems)-1]
		insertion := "," + eol + indent + entry
		return content[:last.End] + insertion + content[last.End:], nil
	}

	at := arr.Elems[index].Start
	insertion := entry + "," + eol + indent
	return content[:at] + insertion + content[at:], nil
}

// marshalEntry renders value as multi-line JSON whose continuation lines
// carry the surrounding element indentation.
func marshalEntry(value any, indent, unit string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, unit)
	if err := enc.Encode(value); err != nil {
		return "", errors.NewParseError("jsonc", "serializing entry: "+err.Error(), err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// indentation derives the element indent and nesting unit from the existing
// text, falling back to two-space indentation for empty arrays.
func indentation(content string, arr arrayInfo) (indent, unit string) {
	indent = "  "
	unit = "  "
	if len(arr.Elems) > 0 {
		if prefix, ok := linePrefix(content, arr.Elems[0].Start); ok {
			indent = prefix
		}
	}
	if strings.Contains(indent, "\t") {
		unit = "\t"
	}
	return indent, unit
}

// linePrefix returns the whitespace run between offset and the preceding
// line break, and whether the element sits alone on its line.
func linePrefix(content string, offset int) (string, bool) {
	start := offset
	for start > 0 {
		c := content[start-1]
		if c == ' ' || c == '\t' {
			start--
			continue
		}
		if c == '\n' {
			return content[start:offset], true
		}
		return "", false
	}
	return content[start:offset], false
}
