// Package csharp parses C# documents with tree-sitter and exposes the result
// as syntax trees.
package csharp

import (
	"context"
	"fmt"
	"os"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"project-health/src/syntax"
	"project-health/src/util"
)

var language = tree_sitter.NewLanguage(tree_sitter_csharp.Language())

// Parser turns C# files into syntax trees. It is safe for concurrent use: each
// call gets its own tree-sitter parser.
type Parser struct{}

// NewParser creates a new C# parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and parses the file at path. Read or parse failures are
// reported as syntax.ErrTreeUnavailable.
func (p *Parser) Parse(ctx context.Context, path string) (syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", syntax.ErrTreeUnavailable, path, err)
	}

	tree, err := p.ParseSource(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// ParseSource parses C# source held in memory
func (p *Parser) ParseSource(src []byte) (syntax.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("%w: setting C# language: %v", syntax.ErrTreeUnavailable, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: parser returned no tree", syntax.ErrTreeUnavailable)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, fmt.Errorf("%w: empty tree", syntax.ErrTreeUnavailable)
	}
	if root.HasError() {
		util.Debug("C# tree contains syntax errors; metrics use the recovered tree")
	}

	return &Tree{tree: tree, src: src}, nil
}

// Tree is a parsed C# document
type Tree struct {
	tree *tree_sitter.Tree
	src  []byte
}

// Root returns the compilation unit
func (t *Tree) Root() syntax.Node {
	return wrap(t.tree.RootNode(), t.src)
}

// Close releases the tree-sitter tree
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}
