package metrics

import (
	"context"
	"strings"

	"project-health/src/syntax"
)

// guardPhase is the walker's two-state machine. The only transition is
// scanningGuards -> normalCounting and it is never reversed, not even when the
// walk enters another method of the same document.
type guardPhase int

const (
	scanningGuards guardPhase = iota
	normalCounting
)

// StatementWalker counts executable statements in one document.
// Use a new walker per document.
type StatementWalker struct {
	phase guardPhase
	count int
}

// NewStatementWalker creates a walker in the guard-scanning phase
func NewStatementWalker() *StatementWalker {
	return &StatementWalker{phase: scanningGuards}
}

// CountStatements walks root and returns the statement count. A cancelled
// context aborts the walk and returns the context error.
func CountStatements(ctx context.Context, root syntax.Node) (int, error) {
	w := NewStatementWalker()
	if err := w.Walk(ctx, root); err != nil {
		return 0, err
	}
	return w.Count(), nil
}

// Walk visits root in pre-order, accumulating into the walker's count
func (w *StatementWalker) Walk(ctx context.Context, root syntax.Node) error {
	if root == nil {
		return nil
	}
	return w.visit(ctx, root)
}

// Count returns the statements counted so far
func (w *StatementWalker) Count() int {
	return w.count
}

// ScanningGuards reports whether the walker is still in the guard phase
func (w *StatementWalker) ScanningGuards() bool {
	return w.phase == scanningGuards
}

func (w *StatementWalker) visit(ctx context.Context, n syntax.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.classify(n) {
	case counted:
		w.count++
	case guard:
		// the whole guard clause is excluded, including the throw inside it
		return nil
	}

	for _, child := range n.Children() {
		if err := w.visit(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

type classification int

const (
	notCounted classification = iota
	counted
	guard
)

func (w *StatementWalker) classify(n syntax.Node) classification {
	if n.IsMissing() || !n.Kind().IsStatement() {
		return notCounted
	}

	switch n.Kind() {
	case syntax.KindBlock, syntax.KindLabeledStatement, syntax.KindLocalFunctionStatement:
		return notCounted
	}

	if w.phase == scanningGuards {
		if IsArgumentNullCheck(n) {
			return guard
		}
		w.phase = normalCounting
	}
	return counted
}

// IsArgumentNullCheck reports whether stmt has the shape "argument is null,
// therefore fail". Recognized forms:
//
//	if (x == null) throw ...;        (also null == x, x is null, return instead of throw)
//	ArgumentNullException.ThrowIfNull(x);
//	_x = x ?? throw new ArgumentNullException(nameof(x));
func IsArgumentNullCheck(stmt syntax.Node) bool {
	switch stmt.Kind() {
	case syntax.KindIfStatement:
		if stmt.Field(syntax.FieldAlternative) != nil {
			return false
		}
		return isNullTest(stmt.Field(syntax.FieldCondition)) && isBailOut(stmt.Field(syntax.FieldConsequence))
	case syntax.KindExpressionStatement:
		children := stmt.Children()
		if len(children) == 0 {
			return false
		}
		expr := syntax.Unwrap(children[0])
		return isThrowIfNullCall(expr) || isCoalesceThrowAssignment(expr)
	}
	return false
}

func isNullTest(cond syntax.Node) bool {
	cond = syntax.Unwrap(cond)
	if cond == nil {
		return false
	}

	switch cond.Kind() {
	case syntax.KindBinaryExpression:
		if !syntax.HasChild(cond, syntax.KindEqualsEqualsToken) {
			return false
		}
		left := syntax.Unwrap(cond.Field(syntax.FieldLeft))
		right := syntax.Unwrap(cond.Field(syntax.FieldRight))
		return isNullLiteral(left) != isNullLiteral(right)
	case syntax.KindIsPatternExpression:
		return syntax.Contains(cond, syntax.KindNullLiteral) && !syntax.Contains(cond, syntax.KindNegatedPattern)
	}
	return false
}

func isNullLiteral(n syntax.Node) bool {
	return n != nil && n.Kind() == syntax.KindNullLiteral
}

func isBailOut(n syntax.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case syntax.KindThrowStatement, syntax.KindReturnStatement:
		return true
	case syntax.KindBlock:
		var statements []syntax.Node
		for _, child := range n.Children() {
			if child.Kind().IsStatement() {
				statements = append(statements, child)
			}
		}
		return len(statements) == 1 && isBailOut(statements[0])
	}
	return false
}

func isThrowIfNullCall(expr syntax.Node) bool {
	if expr == nil || expr.Kind() != syntax.KindInvocationExpression {
		return false
	}
	fn := expr.Field(syntax.FieldFunction)
	if fn == nil {
		return false
	}
	name := fn.Text()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.HasPrefix(name, "ThrowIfNull")
}

func isCoalesceThrowAssignment(expr syntax.Node) bool {
	if expr == nil || expr.Kind() != syntax.KindAssignmentExpression {
		return false
	}
	right := syntax.Unwrap(expr.Field(syntax.FieldRight))
	if right == nil || right.Kind() != syntax.KindBinaryExpression || !syntax.HasChild(right, syntax.KindCoalesceToken) {
		return false
	}
	thrown := syntax.Unwrap(right.Field(syntax.FieldRight))
	return thrown != nil && thrown.Kind() == syntax.KindThrowExpression
}
