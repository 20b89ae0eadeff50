// Package syntax defines the closed set of grammatical kinds shared by every
// dialect's grammar: node kinds (the shapes a Sequence/OneOf/... can wrap a
// match in), leaf token kinds, and the handful of zero-width meta kinds used
// for layout.
//
// Kind IDs are never reused across versions of this package; code elsewhere
// (notably SyntaxSet word packing) assumes the numbering is stable within a
// build.
package syntax

import "fmt"

// Kind identifies a single grammatical category. A Kind is either a meta
// kind (zero-width, layout-only), a token kind (leaf), or a node kind
// (produced by wrapping a match in a SyntaxKind per grammar.Matched).
//
//nolint:revive // Kind_* constant names mirror the SQL grammar terms they name.
type Kind uint16

const (
	// Unknown is the zero value; it is never produced by the lexer or
	// parser and exists so an uninitialised Kind is detectable.
	Unknown Kind = iota

	// --- meta kinds: zero-width, carry layout intent only ---
	Indent
	Dedent
	Implicit
	EndOfFile

	// --- leaf token kinds ---
	Whitespace
	Newline
	InlineComment
	BlockComment
	Unlexable
	CodePlaceholder // a templated {{ ... }} macro span, pre-expansion

	Keyword
	NakedIdentifier
	QuotedIdentifier
	BackQuotedIdentifier
	SingleQuotedIdentifier
	NumericLiteral
	QuotedLiteral
	DateLiteral
	BitLiteral
	DollarQuotedLiteral
	PositionalParameter // Snowflake-style $1, $2, ... procedure/UDF parameter

	Comma
	Dot
	StartBracket
	EndBracket
	StartSquareBracket
	EndSquareBracket
	StartCurlyBracket
	EndCurlyBracket
	StartAngleBracket
	EndAngleBracket

	Plus
	Minus
	Star
	Divide
	Modulo
	Concat
	EqualsOperator
	NotEqualToOperator
	LessThanOperator
	GreaterThanOperator
	LessThanOrEqualToOperator
	GreaterThanOrEqualToOperator
	CastOperator // ::
	ArrowOperator
	ColonOperator
	Semicolon

	// --- node kinds ---
	File
	Unparsable
	Statement
	SelectStatement
	SetExpression
	SetOperator
	WithCompoundStatement
	CommonTableExpression
	CommonTableExpressionNameElement

	SelectClause
	SelectClauseElement
	SelectClauseModifier
	WildcardExpression
	WildcardIdentifier
	ColumnReference
	ObjectReference
	TableReference
	AliasExpression
	ColumnDefinition

	FromClause
	FromExpression
	FromExpressionElement
	JoinClause
	JoinKeywords
	JoinOnCondition
	JoinUsingCondition
	TableExpression

	WhereClause
	GroupByClause
	HavingClause
	QualifyClause
	OrderByClause
	OrderByClauseElement
	LimitClause
	OffsetClause

	Expression
	ColumnExpression
	BracketedExpression
	CaseExpression
	WhenClause
	ElseClause
	Function
	FunctionName
	FunctionContents
	FunctionParameter
	BracketedArguments
	ArrayAccessor
	CastExpression
	ShorthandCastExpression
	LiteralExpression
	BooleanLiteral
	NullLiteral
	Parameter
	Datatype
	IntervalExpression
	StarExpression

	WindowSpecification
	OverClause
	PartitionByClause
	NamedWindow
	NamedWindowExpression
	FrameClause

	ReplaceClause // DuckDB: SELECT * REPLACE (...)
	ExceptClause  // DuckDB/BigQuery: SELECT * EXCEPT (...)

	CreateTableStatement
	TableReferenceList

	// numKinds must stay last: it is the cardinality of the closed kind
	// space and sizes SyntaxSet's backing words.
	numKinds
)

// NumKinds is the total number of distinct Kind values, including Unknown.
const NumKinds = int(numKinds)

var names = [numKinds]string{
	Unknown:  "unknown",
	Indent:   "indent",
	Dedent:   "dedent",
	Implicit: "implicit",

	EndOfFile:              "end_of_file",
	Whitespace:             "whitespace",
	Newline:                "newline",
	InlineComment:          "inline_comment",
	BlockComment:           "block_comment",
	Unlexable:              "unlexable",
	CodePlaceholder:        "code_placeholder",
	Keyword:                "keyword",
	NakedIdentifier:        "naked_identifier",
	QuotedIdentifier:       "quoted_identifier",
	BackQuotedIdentifier:   "back_quoted_identifier",
	SingleQuotedIdentifier: "single_quoted_identifier",
	NumericLiteral:         "numeric_literal",
	QuotedLiteral:          "quoted_literal",
	DateLiteral:            "date_literal",
	BitLiteral:             "bit_literal",
	DollarQuotedLiteral:    "dollar_quoted_literal",
	PositionalParameter:    "positional_parameter",

	Comma:              "comma",
	Dot:                "dot",
	StartBracket:       "start_bracket",
	EndBracket:         "end_bracket",
	StartSquareBracket: "start_square_bracket",
	EndSquareBracket:   "end_square_bracket",
	StartCurlyBracket:  "start_curly_bracket",
	EndCurlyBracket:    "end_curly_bracket",
	StartAngleBracket:  "start_angle_bracket",
	EndAngleBracket:    "end_angle_bracket",

	Plus:                         "plus",
	Minus:                        "minus",
	Star:                         "star",
	Divide:                       "divide",
	Modulo:                       "modulo",
	Concat:                       "concat",
	EqualsOperator:               "equals",
	NotEqualToOperator:           "not_equal_to",
	LessThanOperator:             "less_than",
	GreaterThanOperator:          "greater_than",
	LessThanOrEqualToOperator:    "less_than_or_equal_to",
	GreaterThanOrEqualToOperator: "greater_than_or_equal_to",
	CastOperator:                 "cast_operator",
	ArrowOperator:                "arrow_operator",
	ColonOperator:                "colon_operator",
	Semicolon:                    "semicolon",

	File:                              "file",
	Unparsable:                        "unparsable",
	Statement:                         "statement",
	SelectStatement:                   "select_statement",
	SetExpression:                     "set_expression",
	SetOperator:                       "set_operator",
	WithCompoundStatement:             "with_compound_statement",
	CommonTableExpression:             "common_table_expression",
	CommonTableExpressionNameElement:  "common_table_expression_name_element",
	SelectClause:                      "select_clause",
	SelectClauseElement:               "select_clause_element",
	SelectClauseModifier:              "select_clause_modifier",
	WildcardExpression:                "wildcard_expression",
	WildcardIdentifier:                "wildcard_identifier",
	ColumnReference:                   "column_reference",
	ObjectReference:                   "object_reference",
	TableReference:                    "table_reference",
	AliasExpression:                   "alias_expression",
	ColumnDefinition:                  "column_definition",
	FromClause:                        "from_clause",
	FromExpression:                    "from_expression",
	FromExpressionElement:             "from_expression_element",
	JoinClause:                        "join_clause",
	JoinKeywords:                      "join_keywords",
	JoinOnCondition:                   "join_on_condition",
	JoinUsingCondition:                "join_using_condition",
	TableExpression:                   "table_expression",
	WhereClause:                       "where_clause",
	GroupByClause:                     "groupby_clause",
	HavingClause:                      "having_clause",
	QualifyClause:                     "qualify_clause",
	OrderByClause:                     "orderby_clause",
	OrderByClauseElement:              "orderby_clause_element",
	LimitClause:                       "limit_clause",
	OffsetClause:                      "offset_clause",
	Expression:                        "expression",
	ColumnExpression:                  "column_expression",
	BracketedExpression:               "bracketed_expression",
	CaseExpression:                    "case_expression",
	WhenClause:                        "when_clause",
	ElseClause:                        "else_clause",
	Function:                          "function",
	FunctionName:                      "function_name",
	FunctionContents:                  "function_contents",
	FunctionParameter:                 "function_parameter",
	BracketedArguments:                "bracketed_arguments",
	ArrayAccessor:                     "array_accessor",
	CastExpression:                    "cast_expression",
	ShorthandCastExpression:           "shorthand_cast_expression",
	LiteralExpression:                 "literal_expression",
	BooleanLiteral:                    "boolean_literal",
	NullLiteral:                       "null_literal",
	Parameter:                         "parameter",
	Datatype:                          "data_type",
	IntervalExpression:                "interval_expression",
	StarExpression:                    "star_expression",
	WindowSpecification:               "window_specification",
	OverClause:                        "over_clause",
	PartitionByClause:                 "partitionby_clause",
	NamedWindow:                       "named_window",
	NamedWindowExpression:             "named_window_expression",
	FrameClause:                       "frame_clause",
	ReplaceClause:                     "replace_clause",
	ExceptClause:                      "except_clause",
	CreateTableStatement:              "create_table_statement",
	TableReferenceList:                "table_reference_list",
}

// String returns the stable snake_case name used in serialisation and rule
// configuration (spec §4.A: "kind.as_str()").
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IndentVal returns the layout contribution of a meta kind: +1 for Indent,
// -1 for Dedent, 0 for everything else (including non-meta kinds).
func (k Kind) IndentVal() int {
	switch k {
	case Indent:
		return 1
	case Dedent:
		return -1
	default:
		return 0
	}
}

// IsMeta returns true for the zero-width layout/sentinel kinds.
func (k Kind) IsMeta() bool {
	switch k {
	case Indent, Dedent, Implicit, EndOfFile:
		return true
	default:
		return false
	}
}
