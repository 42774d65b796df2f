package csharp

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"project-health/src/syntax"
)

// node adapts a tree-sitter node to syntax.Node. The kind is resolved once at
// wrap time because it may need the parent.
type node struct {
	ts   *tree_sitter.Node
	src  []byte
	kind syntax.Kind
}

func wrap(n *tree_sitter.Node, src []byte) syntax.Node {
	if n == nil {
		return nil
	}
	return &node{ts: n, src: src, kind: kindOf(n)}
}

func (n *node) Kind() syntax.Kind { return n.kind }

func (n *node) IsMissing() bool { return n.ts.IsMissing() }

func (n *node) Children() []syntax.Node {
	count := n.ts.ChildCount()
	children := make([]syntax.Node, 0, count)
	for i := uint(0); i < count; i++ {
		if child := n.ts.Child(i); child != nil {
			children = append(children, &node{ts: child, src: n.src, kind: kindOf(child)})
		}
	}
	return children
}

func (n *node) Field(f syntax.Field) syntax.Node {
	name, ok := fieldNames[f]
	if !ok {
		return nil
	}
	return wrap(n.ts.ChildByFieldName(name), n.src)
}

func (n *node) Text() string {
	return n.ts.Utf8Text(n.src)
}
