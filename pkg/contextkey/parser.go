package contextkey

import (
	"fmt"
	"strings"

	"github.com/tsangint/vscode/pkg/errors"
)

// Parse parses a guard expression string.
//
// Supported grammar, loosest binding first:
//
//	expr    := and ( "||" and )*
//	and     := primary ( "&&" primary )*
//	primary := "!" primary | "(" expr ")" | term
//	term    := key ( ("==" | "!=") value )?
//
// Keys are dotted identifiers; values are bare words or quoted literals.
func Parse(s string) (*Expr, error) {
	p := &parser{tokens: tokenize(s)}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, parseError(fmt.Sprintf("unexpected token %q", p.peek()))
	}
	return &Expr{root: root, canonical: canonicalize(root)}, nil
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() string {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) parseOr() (*node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	operands := []*node{left}
	for p.peek() == "||" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, right)
	}
	if len(operands) == 1 {
		return left, nil
	}
	return &node{kind: kindOr, operands: operands}, nil
}

func (p *parser) parseAnd() (*node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	operands := []*node{left}
	for p.peek() == "&&" {
		p.next()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, right)
	}
	if len(operands) == 1 {
		return left, nil
	}
	return &node{kind: kindAnd, operands: operands}, nil
}

func (p *parser) parsePrimary() (*node, error) {
	switch tok := p.peek(); tok {
	case "":
		return nil, parseError("unexpected end of expression")
	case "!":
		p.next()
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if inner.kind != kindKey {
			return nil, parseError("negation applies only to keys")
		}
		return &node{kind: kindNot, key: inner.key}, nil
	case "(":
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.next() != ")" {
			return nil, parseError("missing closing parenthesis")
		}
		return inner, nil
	default:
		return p.parseTerm()
	}
}

func (p *parser) parseTerm() (*node, error) {
	key := p.next()
	if isOperator(key) {
		return nil, parseError(fmt.Sprintf("unexpected token %q", key))
	}

	switch p.peek() {
	case "==":
		p.next()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &node{kind: kindEquals, key: key, value: value}, nil
	case "!=":
		p.next()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &node{kind: kindNotEquals, key: key, value: value}, nil
	default:
		return &node{kind: kindKey, key: key}, nil
	}
}

func (p *parser) parseValue() (string, error) {
	tok := p.next()
	if tok == "" || isOperator(tok) {
		return "", parseError("missing comparison value")
	}
	// Quoted and bare spellings of the same literal compare equal.
	return strings.Trim(tok, `'"`), nil
}

func isOperator(tok string) bool {
	switch tok {
	case "!", "&&", "||", "==", "!=", "(", ")", "=", "&", "|":
		return true
	}
	return false
}

// tokenize splits an expression into operator and word tokens. Quoted
// literals are kept as single tokens, quotes included.
func tokenize(s string) []string {
	var tokens []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		case c == '&' && i+1 < len(s) && s[i+1] == '&':
			tokens = append(tokens, "&&")
			i += 2
		case c == '|' && i+1 < len(s) && s[i+1] == '|':
			tokens = append(tokens, "||")
			i += 2
		case c == '=' && i+1 < len(s) && s[i+1] == '=':
			tokens = append(tokens, "==")
			i += 2
		case c == '!' && i+1 < len(s) && s[i+1] == '=':
			tokens = append(tokens, "!=")
			i += 2
		case c == '!':
			tokens = append(tokens, "!")
			i++
		case c == '\'' || c == '"':
			end := i + 1
			for end < len(s) && s[end] != c {
				end++
			}
			if end < len(s) {
				end++
			}
			tokens = append(tokens, s[i:end])
			i = end
		default:
			end := i
			for end < len(s) && !strings.ContainsRune(" \t()&|=!'\"", rune(s[end])) {
				end++
			}
			if end == i {
				// Stray operator character; surfaced as a parse error later.
				end = i + 1
			}
			tokens = append(tokens, s[i:end])
			i = end
		}
	}
	return tokens
}

func parseError(message string) error {
	return errors.NewParseError("when-clause", message, nil)
}
