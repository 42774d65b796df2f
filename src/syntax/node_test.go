package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"project-health/src/syntax"
	. "project-health/src/syntax/syntaxtest"
)

func TestWalk_PreOrder(t *testing.T) {
	root := N(syntax.KindBlock, N(syntax.KindIfStatement, Ident("a")), Ident("b"))

	var kinds []syntax.Kind
	syntax.Walk(root, func(n syntax.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []syntax.Kind{
		syntax.KindBlock, syntax.KindIfStatement, syntax.KindIdentifierName, syntax.KindIdentifierName,
	}, kinds)
}

func TestWalk_Prune(t *testing.T) {
	root := N(syntax.KindBlock, N(syntax.KindIfStatement, Ident("a")), Ident("b"))

	visited := 0
	syntax.Walk(root, func(n syntax.Node) bool {
		visited++
		return n.Kind() != syntax.KindIfStatement
	})
	assert.Equal(t, 3, visited)
}

func TestCountAndContains(t *testing.T) {
	root := N(syntax.KindBlock, Tok(syntax.KindPlusToken, "+"), N(syntax.KindOther, Tok(syntax.KindMinusToken, "-")))

	assert.Equal(t, 2, syntax.Count(root, syntax.KindPlusToken, syntax.KindMinusToken))
	assert.True(t, syntax.Contains(root, syntax.KindMinusToken))
	assert.False(t, syntax.HasChild(root, syntax.KindMinusToken))
	assert.True(t, syntax.HasChild(root, syntax.KindPlusToken))
}

func TestUnwrap(t *testing.T) {
	inner := Ident("x")
	wrapped := N(syntax.KindParenthesizedExpression, Tok(syntax.KindToken, "("),
		N(syntax.KindParenthesizedExpression, inner), Tok(syntax.KindToken, ")"))

	assert.Equal(t, syntax.Node(inner), syntax.Unwrap(wrapped))
	assert.Nil(t, syntax.Unwrap(nil))
}

func TestKind(t *testing.T) {
	assert.True(t, syntax.KindThrowStatement.IsStatement())
	assert.False(t, syntax.KindCatchClause.IsStatement())
	assert.True(t, syntax.KindCoalesceToken.IsToken())
	assert.Equal(t, "if_statement", syntax.KindIfStatement.String())
}
