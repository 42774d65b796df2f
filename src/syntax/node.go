// Package syntax defines the read-only tree view the metrics engine works on.
// Parsers expose their trees through Node so the engine never depends on a
// concrete grammar.
package syntax

import "errors"

// ErrTreeUnavailable is returned by a provider when a document has no parseable tree
var ErrTreeUnavailable = errors.New("syntax tree unavailable")

// Node is one node of a parsed tree
type Node interface {
	// Kind returns the normalized kind tag
	Kind() Kind

	// IsMissing reports whether the parser inserted the node during error recovery
	IsMissing() bool

	// Children returns all children, named and anonymous, in source order
	Children() []Node

	// Field returns the child bound to a grammar field, or nil
	Field(f Field) Node

	// Text returns the source text covered by the node
	Text() string
}

// Tree owns a root node until Close is called
type Tree interface {
	Root() Node
	Close()
}

// Field names a structural role of a child node
type Field int

const (
	FieldCondition Field = iota
	FieldConsequence
	FieldAlternative
	FieldLeft
	FieldRight
	FieldFunction
)

// Walk traverses the tree rooted at n in pre-order. Children of a node are
// skipped when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// Count returns the number of nodes under n (inclusive) whose kind is one of kinds
func Count(n Node, kinds ...Kind) int {
	total := 0
	Walk(n, func(node Node) bool {
		k := node.Kind()
		for _, want := range kinds {
			if k == want {
				total++
				break
			}
		}
		return true
	})
	return total
}

// HasChild reports whether any direct child of n has the given kind
func HasChild(n Node, kind Kind) bool {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			return true
		}
	}
	return false
}

// Contains reports whether any node under n (inclusive) has the given kind
func Contains(n Node, kind Kind) bool {
	return Count(n, kind) > 0
}

// Unwrap strips parenthesized expressions
func Unwrap(n Node) Node {
	for n != nil && n.Kind() == KindParenthesizedExpression {
		var inner Node
		for _, child := range n.Children() {
			if !child.Kind().IsToken() {
				inner = child
				break
			}
		}
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}
