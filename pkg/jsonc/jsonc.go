// Package jsonc provides tolerant decoding and positional editing of
// JSON-with-comments documents whose top-level value is an array of records.
// It accepts line and block comments as well as trailing commas, and edits
// the raw text in place so that comments and formatting outside the edited
// range survive a round trip.
package jsonc

import (
	"encoding/json"
	"strings"

	tidwall "github.com/tidwall/jsonc"

	"github.com/tsangint/vscode/pkg/errors"
)

// DecodeArray decodes a JSON-with-comments document into v. The document's
// top-level value must be an array.
func DecodeArray(content string, v any) error {
	if _, err := parseArray(content); err != nil {
		return err
	}

	data := tidwall.ToJSON([]byte(content))
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewParseError("jsonc", err.Error(), err)
	}
	return nil
}

// DetectEOL returns the end-of-line sequence used by content, defaulting
// to "\n" when content has no line breaks.
func DetectEOL(content string) string {
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
