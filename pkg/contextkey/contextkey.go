// Package contextkey implements parsing and semantic comparison of the
// conditional "when" guard expressions attached to keybinding entries.
//
// Two guards are considered equal when their normalized forms match, so
// syntactically different but semantically identical expressions such as
// "a && b" and "b && a" compare equal.
package contextkey

import (
	"sort"
	"strings"
)

// Expr is a parsed guard expression. Expressions are immutable; the
// canonical form is computed once at parse time.
type Expr struct {
	root      *node
	canonical string
}

// Equals reports whether two expressions are semantically equal.
func (e *Expr) Equals(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.canonical == other.canonical
}

// String returns the canonical serialization of the expression.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	return e.canonical
}

// Equivalent compares two raw guard strings. Both absent counts as equal,
// one absent does not. Unparseable guards fall back to exact text
// comparison rather than failing the caller.
func Equivalent(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return a == b
	}

	exprA, errA := Parse(a)
	exprB, errB := Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return exprA.Equals(exprB)
}

// node kinds, leaf-first.
type kind int

const (
	kindKey kind = iota
	kindNot
	kindEquals
	kindNotEquals
	kindAnd
	kindOr
)

// node is one vertex of the expression tree. Leaf kinds use key/value;
// kindAnd and kindOr use operands.
type node struct {
	kind     kind
	key      string
	value    string
	operands []*node
}

// canonicalize flattens nested conjunctions and disjunctions, sorts and
// dedupes their operands, and serializes the result.
func canonicalize(n *node) string {
	switch n.kind {
	case kindKey:
		return n.key
	case kindNot:
		return "!" + n.key
	case kindEquals:
		return n.key + " == " + n.value
	case kindNotEquals:
		return n.key + " != " + n.value
	case kindAnd, kindOr:
		parts := make([]string, 0, len(n.operands))
		for _, op := range flatten(n.kind, n.operands) {
			s := canonicalize(op)
			if n.kind == kindAnd && op.kind == kindOr {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
		}
		sort.Strings(parts)
		parts = dedupe(parts)
		sep := " && "
		if n.kind == kindOr {
			sep = " || "
		}
		return strings.Join(parts, sep)
	}
	return ""
}

// flatten folds operands of the same kind into one level.
func flatten(k kind, operands []*node) []*node {
	out := make([]*node, 0, len(operands))
	for _, op := range operands {
		if op.kind == k {
			out = append(out, flatten(k, op.operands)...)
			continue
		}
		out = append(out, op)
	}
	return out
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
