package syntax

// Kind is the normalized tag of a node. Grammar adapters map their own node
// types onto these values; anything without a dedicated value becomes
// KindStatement, KindToken or KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindError

	// Statements
	KindBlock
	KindLabeledStatement
	KindLocalFunctionStatement
	KindIfStatement
	KindWhileStatement
	KindDoStatement
	KindForStatement
	KindForEachStatement
	KindSwitchStatement
	KindThrowStatement
	KindReturnStatement
	KindExpressionStatement
	KindStatement

	// Clauses and expressions
	KindSwitchSection
	KindCaseLabel
	KindSwitchExpressionArm
	KindCatchClause
	KindConditionalExpression
	KindBinaryExpression
	KindAssignmentExpression
	KindInvocationExpression
	KindMemberAccessExpression
	KindParenthesizedExpression
	KindIsPatternExpression
	KindNegatedPattern
	KindThrowExpression
	KindNullLiteral
	KindIdentifierName
	KindIdentifier

	// Tokens
	KindLogicalAndToken
	KindLogicalOrToken
	KindCoalesceToken
	KindCoalesceAssignToken
	KindPlusToken
	KindMinusToken
	KindEqualsEqualsToken
	KindToken
)

var kindNames = map[Kind]string{
	KindOther:                   "other",
	KindError:                   "error",
	KindBlock:                   "block",
	KindLabeledStatement:        "labeled_statement",
	KindLocalFunctionStatement:  "local_function_statement",
	KindIfStatement:             "if_statement",
	KindWhileStatement:          "while_statement",
	KindDoStatement:             "do_statement",
	KindForStatement:            "for_statement",
	KindForEachStatement:        "foreach_statement",
	KindSwitchStatement:         "switch_statement",
	KindThrowStatement:          "throw_statement",
	KindReturnStatement:         "return_statement",
	KindExpressionStatement:     "expression_statement",
	KindStatement:               "statement",
	KindSwitchSection:           "switch_section",
	KindCaseLabel:               "case_label",
	KindSwitchExpressionArm:     "switch_expression_arm",
	KindCatchClause:             "catch_clause",
	KindConditionalExpression:   "conditional_expression",
	KindBinaryExpression:        "binary_expression",
	KindAssignmentExpression:    "assignment_expression",
	KindInvocationExpression:    "invocation_expression",
	KindMemberAccessExpression:  "member_access_expression",
	KindParenthesizedExpression: "parenthesized_expression",
	KindIsPatternExpression:     "is_pattern_expression",
	KindNegatedPattern:          "negated_pattern",
	KindThrowExpression:         "throw_expression",
	KindNullLiteral:             "null_literal",
	KindIdentifierName:          "identifier_name",
	KindIdentifier:              "identifier",
	KindLogicalAndToken:         "&&",
	KindLogicalOrToken:          "||",
	KindCoalesceToken:           "??",
	KindCoalesceAssignToken:     "??=",
	KindPlusToken:               "+",
	KindMinusToken:              "-",
	KindEqualsEqualsToken:       "==",
	KindToken:                   "token",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsStatement reports whether the kind belongs to the statement category
func (k Kind) IsStatement() bool {
	return k >= KindBlock && k <= KindStatement
}

// IsToken reports whether the kind is a leaf token
func (k Kind) IsToken() bool {
	return k >= KindLogicalAndToken && k <= KindToken
}
