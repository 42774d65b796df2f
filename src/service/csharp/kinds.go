package csharp

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"project-health/src/syntax"
)

// nodeKinds maps tree-sitter-c-sharp node types onto normalized kinds
var nodeKinds = map[string]syntax.Kind{
	"ERROR": syntax.KindError,

	"block":                    syntax.KindBlock,
	"labeled_statement":        syntax.KindLabeledStatement,
	"local_function_statement": syntax.KindLocalFunctionStatement,
	"if_statement":             syntax.KindIfStatement,
	"while_statement":          syntax.KindWhileStatement,
	"do_statement":             syntax.KindDoStatement,
	"for_statement":            syntax.KindForStatement,
	"foreach_statement":        syntax.KindForEachStatement,
	"for_each_statement":       syntax.KindForEachStatement,
	"switch_statement":         syntax.KindSwitchStatement,
	"throw_statement":          syntax.KindThrowStatement,
	"return_statement":         syntax.KindReturnStatement,
	"expression_statement":     syntax.KindExpressionStatement,

	"break_statement":             syntax.KindStatement,
	"checked_statement":           syntax.KindStatement,
	"continue_statement":          syntax.KindStatement,
	"empty_statement":             syntax.KindStatement,
	"fixed_statement":             syntax.KindStatement,
	"goto_statement":              syntax.KindStatement,
	"local_declaration_statement": syntax.KindStatement,
	"lock_statement":              syntax.KindStatement,
	"try_statement":               syntax.KindStatement,
	"unsafe_statement":            syntax.KindStatement,
	"using_statement":             syntax.KindStatement,
	"yield_statement":             syntax.KindStatement,

	"switch_section":            syntax.KindSwitchSection,
	"case_switch_label":         syntax.KindCaseLabel,
	"case_pattern_switch_label": syntax.KindCaseLabel,
	"switch_expression_arm":     syntax.KindSwitchExpressionArm,
	"catch_clause":              syntax.KindCatchClause,
	"conditional_expression":    syntax.KindConditionalExpression,
	"binary_expression":         syntax.KindBinaryExpression,
	"assignment_expression":     syntax.KindAssignmentExpression,
	"invocation_expression":     syntax.KindInvocationExpression,
	"member_access_expression":  syntax.KindMemberAccessExpression,
	"parenthesized_expression":  syntax.KindParenthesizedExpression,
	"is_pattern_expression":     syntax.KindIsPatternExpression,
	"negated_pattern":           syntax.KindNegatedPattern,
	"throw_expression":          syntax.KindThrowExpression,
	"null_literal":              syntax.KindNullLiteral,
}

// tokenKinds maps anonymous token types onto normalized kinds
var tokenKinds = map[string]syntax.Kind{
	"&&":  syntax.KindLogicalAndToken,
	"||":  syntax.KindLogicalOrToken,
	"??":  syntax.KindCoalesceToken,
	"??=": syntax.KindCoalesceAssignToken,
	"+":   syntax.KindPlusToken,
	"-":   syntax.KindMinusToken,
	"==":  syntax.KindEqualsEqualsToken,
}

// fieldNames maps normalized fields onto grammar field names
var fieldNames = map[syntax.Field]string{
	syntax.FieldCondition:   "condition",
	syntax.FieldConsequence: "consequence",
	syntax.FieldAlternative: "alternative",
	syntax.FieldLeft:        "left",
	syntax.FieldRight:       "right",
	syntax.FieldFunction:    "function",
}

func kindOf(n *tree_sitter.Node) syntax.Kind {
	typ := n.Kind()

	if !n.IsNamed() {
		if k, ok := tokenKinds[typ]; ok {
			return k
		}
		// `case` is a label only inside a switch section, not in `goto case`
		if typ == "case" {
			if p := n.Parent(); p != nil && p.Kind() == "switch_section" {
				return syntax.KindCaseLabel
			}
		}
		return syntax.KindToken
	}

	if typ == "identifier" {
		if isDeclaredName(n) {
			return syntax.KindIdentifier
		}
		return syntax.KindIdentifierName
	}

	if k, ok := nodeKinds[typ]; ok {
		return k
	}
	return syntax.KindOther
}

// isDeclaredName reports whether an identifier is the name being declared by
// its parent rather than a reference to something else.
func isDeclaredName(n *tree_sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}

	pk := parent.Kind()
	declaring := strings.HasSuffix(pk, "_declaration") ||
		strings.HasSuffix(pk, "_declarator") ||
		pk == "variable_declarator" ||
		pk == "parameter" ||
		pk == "type_parameter" ||
		pk == "local_function_statement" ||
		pk == "catch_declaration" ||
		pk == "enum_member_declaration"
	if !declaring {
		return false
	}

	name := parent.ChildByFieldName("name")
	return name != nil && name.StartByte() == n.StartByte() && name.EndByte() == n.EndByte()
}
