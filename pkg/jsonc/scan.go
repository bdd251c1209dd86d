package jsonc

import (
	"fmt"

	"github.com/tsangint/vscode/pkg/errors"
)

// Node is the byte range of one array element in the source text.
type Node struct {
	Start int // offset of the element's first character
	End   int // offset just past the element's last character
}

// arrayInfo is the scanned structure of a top-level array.
type arrayInfo struct {
	Open  int // offset of '['
	Close int // offset of ']'
	Elems []Node
}

// ScanArray returns the byte ranges of the top-level array's elements.
// Comments, trailing commas, and arbitrary whitespace are tolerated.
func ScanArray(content string) ([]Node, error) {
	arr, err := parseArray(content)
	if err != nil {
		return nil, err
	}
	return arr.Elems, nil
}

func parseArray(content string) (arrayInfo, error) {
	s := &scanner{src: content}
	s.skipTrivia()
	if s.pos >= len(s.src) || s.src[s.pos] != '[' {
		return arrayInfo{}, scanError(s.pos, "top-level value is not an array")
	}

	arr := arrayInfo{Open: s.pos}
	s.pos++
	for {
		s.skipTrivia()
		if s.pos >= len(s.src) {
			return arrayInfo{}, scanError(s.pos, "unexpected end of input, expected ']'")
		}
		switch s.src[s.pos] {
		case ']':
			arr.Close = s.pos
			return arr, nil
		case ',':
			// Separators and trailing commas are skipped, not validated.
			s.pos++
		default:
			start := s.pos
			if err := s.skipValue(); err != nil {
				return arrayInfo{}, err
			}
			arr.Elems = append(arr.Elems, Node{Start: start, End: s.pos})
		}
	}
}

// scanner walks raw JSONC text tracking strings and comments so that
// structural characters inside them are never misread.
type scanner struct {
	src string
	pos int
}

// skipTrivia advances past whitespace, line comments, and block comments.
func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			s.pos += 2
			for s.pos < len(s.src) {
				if s.src[s.pos] == '*' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
					s.pos += 2
					break
				}
				s.pos++
			}
		default:
			return
		}
	}
}

// skipValue advances past one JSON value of any kind.
func (s *scanner) skipValue() error {
	switch c := s.src[s.pos]; c {
	case '{', '[':
		return s.skipComposite()
	case '"':
		return s.skipString()
	default:
		return s.skipScalar()
	}
}

// skipComposite advances past a balanced object or array. Well-formed input
// lets one depth counter cover both bracket kinds.
func (s *scanner) skipComposite() error {
	depth := 0
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '"':
			if err := s.skipString(); err != nil {
				return err
			}
		case c == '/' && s.pos+1 < len(s.src) && (s.src[s.pos+1] == '/' || s.src[s.pos+1] == '*'):
			s.skipTrivia()
		case c == '{' || c == '[':
			depth++
			s.pos++
		case c == '}' || c == ']':
			depth--
			s.pos++
			if depth == 0 {
				return nil
			}
		default:
			s.pos++
		}
	}
	return scanError(s.pos, "unexpected end of input inside value")
}

// skipString advances past a quoted string, honoring backslash escapes.
func (s *scanner) skipString() error {
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			s.pos++
			return nil
		default:
			s.pos++
		}
	}
	return scanError(s.pos, "unterminated string")
}

// skipScalar advances past a bare literal (number, true, false, null).
func (s *scanner) skipScalar() error {
	start := s.pos
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case ',', ']', '}', ' ', '\t', '\n', '\r', '/':
			if s.pos == start {
				return scanError(s.pos, fmt.Sprintf("unexpected character %q", c))
			}
			return nil
		default:
			s.pos++
		}
	}
	return nil
}

func scanError(offset int, message string) error {
	return &errors.ParseError{
		Format:  "jsonc",
		Offset:  offset,
		Message: message,
	}
}
