package metrics

import "project-health/src/syntax"

// decisionPoints are the kinds that add one independent path each
var decisionPoints = []syntax.Kind{
	syntax.KindIfStatement,
	syntax.KindWhileStatement,
	syntax.KindDoStatement,
	syntax.KindForStatement,
	syntax.KindForEachStatement,
	syntax.KindCaseLabel,
	syntax.KindSwitchExpressionArm,
	syntax.KindCatchClause,
	syntax.KindConditionalExpression,
	syntax.KindLogicalAndToken,
	syntax.KindLogicalOrToken,
	syntax.KindCoalesceToken,
	syntax.KindCoalesceAssignToken,
}

// CyclomaticComplexity returns 1 plus the number of decision points in the
// whole document. Functions are not scored separately: every method in the
// file contributes to the same number.
func CyclomaticComplexity(root syntax.Node) int {
	complexity := 1
	syntax.Walk(root, func(n syntax.Node) bool {
		if n.IsMissing() {
			return true
		}
		k := n.Kind()
		for _, dp := range decisionPoints {
			if k == dp {
				complexity++
				break
			}
		}
		return true
	})
	return complexity
}
