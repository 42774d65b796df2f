// Package syntaxtest builds in-memory syntax trees for tests.
package syntaxtest

import (
	"strings"

	"project-health/src/syntax"
)

// Node is a hand-built syntax.Node
type Node struct {
	kind     syntax.Kind
	text     string
	missing  bool
	children []*Node
	fields   map[syntax.Field]*Node
}

// N creates a node of the given kind with children
func N(kind syntax.Kind, children ...*Node) *Node {
	return &Node{kind: kind, children: children}
}

// Tok creates a token node with its source text
func Tok(kind syntax.Kind, text string) *Node {
	return &Node{kind: kind, text: text}
}

// Ident creates an identifier reference
func Ident(name string) *Node {
	return Tok(syntax.KindIdentifierName, name)
}

// Missing marks the node as inserted by error recovery
func (n *Node) Missing() *Node {
	n.missing = true
	return n
}

// With appends child under field f
func (n *Node) With(f syntax.Field, child *Node) *Node {
	if n.fields == nil {
		n.fields = make(map[syntax.Field]*Node)
	}
	n.fields[f] = child
	n.children = append(n.children, child)
	return n
}

// Add appends unnamed children
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

func (n *Node) Kind() syntax.Kind { return n.kind }

func (n *Node) IsMissing() bool { return n.missing }

func (n *Node) Children() []syntax.Node {
	out := make([]syntax.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) Field(f syntax.Field) syntax.Node {
	if c, ok := n.fields[f]; ok {
		return c
	}
	return nil
}

func (n *Node) Text() string {
	if len(n.children) == 0 {
		return n.text
	}
	parts := make([]string, 0, len(n.children))
	for _, c := range n.children {
		parts = append(parts, c.Text())
	}
	return strings.Join(parts, "")
}

// Tree wraps a root node as a syntax.Tree
type Tree struct {
	RootNode *Node
	Closed   bool
}

func (t *Tree) Root() syntax.Node { return t.RootNode }

func (t *Tree) Close() { t.Closed = true }

// Unit wraps members in a compilation unit
func Unit(members ...*Node) *Node {
	return N(syntax.KindOther, members...)
}

// Method wraps statements in a method body block
func Method(statements ...*Node) *Node {
	return N(syntax.KindOther, N(syntax.KindBlock, statements...))
}

// Stmt returns a plain expression statement calling name
func Stmt(name string) *Node {
	call := N(syntax.KindInvocationExpression).With(syntax.FieldFunction, Ident(name))
	return N(syntax.KindExpressionStatement, call)
}

// If returns an if statement with a plain condition and the given consequence
func If(consequence *Node) *Node {
	cond := N(syntax.KindBinaryExpression).
		With(syntax.FieldLeft, Ident("a")).
		Add(Tok(syntax.KindToken, ">")).
		With(syntax.FieldRight, Tok(syntax.KindToken, "0"))
	return N(syntax.KindIfStatement).
		With(syntax.FieldCondition, cond).
		With(syntax.FieldConsequence, consequence)
}

// NullGuard returns `if (name == null) throw new ArgumentNullException(...)`
func NullGuard(name string) *Node {
	cond := N(syntax.KindBinaryExpression).
		With(syntax.FieldLeft, Ident(name)).
		Add(Tok(syntax.KindEqualsEqualsToken, "==")).
		With(syntax.FieldRight, Tok(syntax.KindNullLiteral, "null"))
	throw := N(syntax.KindThrowStatement, Tok(syntax.KindToken, "throw"), Ident("ArgumentNullException"))
	return N(syntax.KindIfStatement).
		With(syntax.FieldCondition, cond).
		With(syntax.FieldConsequence, throw)
}

// ThrowIfNull returns `ArgumentNullException.ThrowIfNull(name);`
func ThrowIfNull(name string) *Node {
	fn := N(syntax.KindMemberAccessExpression,
		Ident("ArgumentNullException"), Tok(syntax.KindToken, "."), Ident("ThrowIfNull"))
	call := N(syntax.KindInvocationExpression).
		With(syntax.FieldFunction, fn).
		Add(Ident(name))
	return N(syntax.KindExpressionStatement, call)
}
