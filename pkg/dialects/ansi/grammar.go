package ansi

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

func kw(word string) *grammar.Ref       { return grammar.NewRef(word+"KeywordSegment", false, true) }
func kwOpt(word string) *grammar.Ref    { return grammar.NewRef(word+"KeywordSegment", true, true) }
func ref(name string) *grammar.Ref      { return grammar.NewRef(name, false, true) }
func refOpt(name string) *grammar.Ref   { return grammar.NewRef(name, true, true) }
func opTok(k syntax.Kind) *grammar.TypedParser {
	return grammar.NewTypedParser(k, k, false)
}
func litTok(k syntax.Kind) *grammar.TypedParser {
	return grammar.NewTypedParser(k, k, false)
}

// optional wraps m as a 0-or-1 repetition, for multi-element groups that
// NewRef's own optional flag can't express (spec §4.E's AnyNumberOf with
// min 0 max 1 is the combinator-level idiom for "this whole shape is
// optional").
func optional(m grammar.Matchable) *grammar.AnyNumberOf {
	a := grammar.NewAnyNumberOf(0, m)
	a.MaxTimes = 1
	return a
}

var commaTok = grammar.NewTypedParser(syntax.Comma, syntax.Comma, false)
var dotTok = grammar.NewTypedParser(syntax.Dot, syntax.Dot, false)

// objectReferencePart matches one naked or quoted identifier — the unit
// Delimited chains together to build a dotted object reference (spec §4.E's
// generic "ObjectReference" shape, grounded on sqruff's
// object_reference.rs dotted-name splitting, see DESIGN.md).
func objectReferencePart() grammar.Matchable {
	return grammar.NewOneOf(litTok(syntax.NakedIdentifier), litTok(syntax.QuotedIdentifier), litTok(syntax.BackQuotedIdentifier))
}

// BuildGrammar registers every named grammar entry the ANSI dialect's root
// segment and its clause sub-grammars resolve through. Overlay dialects
// call Library().Copy/Replace/Extend on top of this base (spec §4.G).
func BuildGrammar(d *dialect.Dialect) {
	lib := d.Library()

	lib.Extend("ObjectReferenceSegment", grammar.NewNode(syntax.ObjectReference, grammar.NewDelimited(objectReferencePart(), dotTok)))
	lib.Extend("ColumnReferenceSegment", grammar.NewNode(syntax.ColumnReference, grammar.NewDelimited(objectReferencePart(), dotTok)))
	lib.Extend("TableReferenceSegment", grammar.NewNode(syntax.TableReference, grammar.NewDelimited(objectReferencePart(), dotTok)))

	lib.Extend("AliasExpressionSegment", grammar.NewNode(syntax.AliasExpression, grammar.NewSequence(
		kwOpt("AS"),
		grammar.NewOneOf(litTok(syntax.NakedIdentifier), litTok(syntax.QuotedIdentifier)),
	)))

	lib.Extend("StarExpressionSegment", grammar.NewNode(syntax.StarExpression, opTok(syntax.Star)))
	wildcardIdentifier := grammar.NewNode(syntax.WildcardIdentifier, opTok(syntax.Star))
	lib.Extend("WildcardExpressionSegment", grammar.NewNode(syntax.WildcardExpression, grammar.NewOneOf(
		grammar.NewSequence(ref("ObjectReferenceSegment"), dotTok, wildcardIdentifier),
		wildcardIdentifier,
	)))

	lib.Extend("SelectClauseModifierSegment", grammar.NewNode(syntax.SelectClauseModifier, grammar.NewOneOf(kw("DISTINCT"), kw("ALL"))))

	lib.Extend("SelectClauseElementSegment", grammar.NewNode(syntax.SelectClauseElement, grammar.NewOneOf(
		ref("WildcardExpressionSegment"),
		grammar.NewSequence(ref("ExpressionSegment"), refOpt("AliasExpressionSegment")),
	)))

	selectTerminators := []grammar.Matchable{
		kw("FROM"), kw("WHERE"), kw("GROUP"), kw("HAVING"), kw("QUALIFY"),
		kw("WINDOW"), kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	selectClause := grammar.NewNode(syntax.SelectClause, grammar.NewSequence(
		kw("SELECT"),
		refOpt("SelectClauseModifierSegment"),
		grammar.NewDelimited(ref("SelectClauseElementSegment"), commaTok),
	))
	selectClause.Inner.(*grammar.Sequence).Terminators = selectTerminators
	lib.Extend("SelectClauseSegment", selectClause)

	lib.Extend("TableExpressionSegment", grammar.NewNode(syntax.TableExpression, grammar.NewOneOf(
		ref("TableReferenceSegment"),
		grammar.NewBracketed(grammar.NewOneOf(ref("SelectStatementSegment"), ref("SetExpressionSegment")), "round", false),
	)))

	lib.Extend("FromExpressionElementSegment", grammar.NewNode(syntax.FromExpressionElement, grammar.NewSequence(
		ref("TableExpressionSegment"),
		refOpt("AliasExpressionSegment"),
	)))

	lib.Extend("JoinOnConditionSegment", grammar.NewNode(syntax.JoinOnCondition, grammar.NewSequence(kw("ON"), ref("ExpressionSegment"))))
	lib.Extend("JoinUsingConditionSegment", grammar.NewNode(syntax.JoinUsingCondition, grammar.NewSequence(
		kw("USING"),
		grammar.NewBracketed(grammar.NewDelimited(ref("ColumnReferenceSegment"), commaTok), "round", false),
	)))

	lib.Extend("JoinKeywordsSegment", grammar.NewNode(syntax.JoinKeywords, grammar.NewOneOf(
		grammar.NewSequence(kw("INNER"), kw("JOIN")),
		grammar.NewSequence(kw("LEFT"), kwOpt("OUTER"), kw("JOIN")),
		grammar.NewSequence(kw("RIGHT"), kwOpt("OUTER"), kw("JOIN")),
		grammar.NewSequence(kw("FULL"), kwOpt("OUTER"), kw("JOIN")),
		grammar.NewSequence(kw("CROSS"), kw("JOIN")),
		grammar.NewSequence(kw("NATURAL"), kwOpt("INNER"), kw("JOIN")),
		kw("JOIN"),
	)))

	lib.Extend("JoinClauseSegment", grammar.NewNode(syntax.JoinClause, grammar.NewSequence(
		ref("JoinKeywordsSegment"),
		ref("FromExpressionElementSegment"),
		optional(grammar.NewOneOf(ref("JoinOnConditionSegment"), ref("JoinUsingConditionSegment"))),
	)))

	lib.Extend("FromExpressionSegment", grammar.NewNode(syntax.FromExpression, grammar.NewSequence(
		ref("FromExpressionElementSegment"),
		grammar.NewAnyNumberOf(0, ref("JoinClauseSegment")),
	)))

	fromClause := grammar.NewNode(syntax.FromClause, grammar.NewSequence(
		kw("FROM"),
		grammar.NewDelimited(ref("FromExpressionSegment"), commaTok),
	))
	fromClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("WHERE"), kw("GROUP"), kw("HAVING"), kw("QUALIFY"), kw("WINDOW"),
		kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("FromClauseSegment", fromClause)

	whereClause := grammar.NewNode(syntax.WhereClause, grammar.NewSequence(kw("WHERE"), ref("ExpressionSegment")))
	whereClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("GROUP"), kw("HAVING"), kw("QUALIFY"), kw("WINDOW"), kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("WhereClauseSegment", whereClause)

	groupByClause := grammar.NewNode(syntax.GroupByClause, grammar.NewSequence(
		kw("GROUP"), kw("BY"), grammar.NewDelimited(ref("ExpressionSegment"), commaTok),
	))
	groupByClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("HAVING"), kw("QUALIFY"), kw("WINDOW"), kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("GroupByClauseSegment", groupByClause)

	havingClause := grammar.NewNode(syntax.HavingClause, grammar.NewSequence(kw("HAVING"), ref("ExpressionSegment")))
	havingClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("QUALIFY"), kw("WINDOW"), kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("HavingClauseSegment", havingClause)

	qualifyClause := grammar.NewNode(syntax.QualifyClause, grammar.NewSequence(kw("QUALIFY"), ref("ExpressionSegment")))
	qualifyClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("WINDOW"), kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("QualifyClauseSegment", qualifyClause)

	lib.Extend("NamedWindowExpressionSegment", grammar.NewNode(syntax.NamedWindowExpression, grammar.NewSequence(
		litTok(syntax.NakedIdentifier), kw("AS"), ref("WindowSpecificationSegment"),
	)))
	namedWindow := grammar.NewNode(syntax.NamedWindow, grammar.NewSequence(
		kw("WINDOW"), grammar.NewDelimited(ref("NamedWindowExpressionSegment"), commaTok),
	))
	namedWindow.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{
		kw("ORDER"), kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon),
	}
	lib.Extend("NamedWindowSegment", namedWindow)

	lib.Extend("OrderByClauseElementSegment", grammar.NewNode(syntax.OrderByClauseElement, grammar.NewSequence(
		ref("ExpressionSegment"),
		optional(grammar.NewOneOf(kw("ASC"), kw("DESC"))),
		optional(grammar.NewSequence(kw("NULLS"), grammar.NewOneOf(kw("FIRST"), kw("LAST")))),
	)))
	orderByClause := grammar.NewNode(syntax.OrderByClause, grammar.NewSequence(
		kw("ORDER"), kw("BY"), grammar.NewDelimited(ref("OrderByClauseElementSegment"), commaTok),
	))
	orderByClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{kw("LIMIT"), kw("OFFSET"), opTok(syntax.Semicolon)}
	lib.Extend("OrderByClauseSegment", orderByClause)

	limitClause := grammar.NewNode(syntax.LimitClause, grammar.NewSequence(kw("LIMIT"), litTok(syntax.NumericLiteral)))
	limitClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{kw("OFFSET"), opTok(syntax.Semicolon)}
	lib.Extend("LimitClauseSegment", limitClause)

	offsetClause := grammar.NewNode(syntax.OffsetClause, grammar.NewSequence(kw("OFFSET"), litTok(syntax.NumericLiteral)))
	offsetClause.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{opTok(syntax.Semicolon)}
	lib.Extend("OffsetClauseSegment", offsetClause)

	// --- expression precedence chain (spec §4.K's Expression module) ---

	lib.Extend("BooleanLiteralGrammar", grammar.NewNode(syntax.BooleanLiteral, grammar.NewOneOf(kw("TRUE"), kw("FALSE"))))
	lib.Extend("NullLiteralGrammar", grammar.NewNode(syntax.NullLiteral, kw("NULL")))
	lib.Extend("LiteralExpressionSegment", grammar.NewNode(syntax.LiteralExpression, grammar.NewOneOf(
		ref("BooleanLiteralGrammar"),
		ref("NullLiteralGrammar"),
		litTok(syntax.NumericLiteral),
		litTok(syntax.QuotedLiteral),
	)))

	lib.Extend("ParameterSegment", grammar.NewNode(syntax.Parameter, grammar.NewSequence(opTok(syntax.ColonOperator), litTok(syntax.NakedIdentifier))))

	lib.Extend("DatatypeSegment", grammar.NewNode(syntax.Datatype, grammar.NewSequence(
		litTok(syntax.NakedIdentifier),
		optional(grammar.NewBracketed(grammar.NewDelimited(litTok(syntax.NumericLiteral), commaTok), "round", false)),
		optional(grammar.NewBracketed(ref("DatatypeSegment"), "angle", false)),
	)))

	lib.Extend("CastExpressionSegment", grammar.NewNode(syntax.CastExpression, grammar.NewSequence(
		grammar.NewOneOf(kw("CAST"), kw("TRY_CAST")),
		grammar.NewBracketed(grammar.NewSequence(ref("ExpressionSegment"), kw("AS"), ref("DatatypeSegment")), "round", false),
	)))

	lib.Extend("IntervalExpressionSegment", grammar.NewNode(syntax.IntervalExpression, grammar.NewSequence(
		kw("INTERVAL"),
		litTok(syntax.QuotedLiteral),
		grammar.NewOneOf(kw("YEAR"), kw("MONTH"), kw("DAY"), kw("HOUR"), kw("MINUTE"), kw("SECOND")),
	)))

	lib.Extend("WhenClauseSegment", withTerminators(grammar.NewNode(syntax.WhenClause, grammar.NewSequence(
		kw("WHEN"), ref("ExpressionSegment"), kw("THEN"), ref("ExpressionSegment"),
	)), kw("WHEN"), kw("ELSE"), kw("END")))
	lib.Extend("ElseClauseSegment", withTerminators(grammar.NewNode(syntax.ElseClause, grammar.NewSequence(
		kw("ELSE"), ref("ExpressionSegment"),
	)), kw("END")))
	lib.Extend("CaseExpressionSegment", grammar.NewNode(syntax.CaseExpression, grammar.NewSequence(
		kw("CASE"),
		optional(ref("ExpressionSegment")),
		grammar.NewAnyNumberOf(1, ref("WhenClauseSegment")),
		optional(ref("ElseClauseSegment")),
		kw("END"),
	)))

	lib.Extend("FunctionNameSegment", grammar.NewNode(syntax.FunctionName, objectReferencePart()))
	lib.Extend("FunctionParameterSegment", grammar.NewNode(syntax.FunctionParameter, ref("ExpressionSegment")))
	lib.Extend("FunctionContentsSegment", grammar.NewNode(syntax.FunctionContents, grammar.NewBracketed(
		grammar.NewAnyNumberOf(0, grammar.NewOneOf(ref("StarExpressionSegment"), grammar.NewDelimited(ref("FunctionParameterSegment"), commaTok))),
		"round", false,
	)))

	lib.Extend("PartitionByClauseSegment", withTerminators(grammar.NewNode(syntax.PartitionByClause, grammar.NewSequence(
		kw("PARTITION"), kw("BY"), grammar.NewDelimited(ref("ExpressionSegment"), commaTok),
	)), kw("ORDER"), kw("ROWS"), kw("RANGE")))

	lib.Extend("FrameClauseSegment", grammar.NewNode(syntax.FrameClause, grammar.NewSequence(
		grammar.NewOneOf(kw("ROWS"), kw("RANGE")),
		grammar.NewOneOf(
			grammar.NewSequence(kw("BETWEEN"), frameBound(), kw("AND"), frameBound()),
			frameBound(),
		),
	)))

	lib.Extend("WindowSpecificationSegment", grammar.NewNode(syntax.WindowSpecification, grammar.NewBracketed(grammar.NewSequence(
		optional(ref("PartitionByClauseSegment")),
		optional(ref("OrderByClauseSegment")),
		optional(ref("FrameClauseSegment")),
	), "round", false)))

	lib.Extend("OverClauseSegment", grammar.NewNode(syntax.OverClause, grammar.NewSequence(
		kw("OVER"), grammar.NewOneOf(ref("WindowSpecificationSegment"), litTok(syntax.NakedIdentifier)),
	)))

	lib.Extend("FunctionSegment", grammar.NewNode(syntax.Function, grammar.NewSequence(
		ref("FunctionNameSegment"),
		ref("FunctionContentsSegment"),
		optional(ref("OverClauseSegment")),
	)))

	lib.Extend("BracketedExpressionSegment", grammar.NewNode(syntax.BracketedExpression, grammar.NewBracketed(ref("ExpressionSegment"), "round", false)))

	lib.Extend("PrimaryExpressionSegment", grammar.NewOneOf(
		ref("CastExpressionSegment"),
		ref("CaseExpressionSegment"),
		ref("IntervalExpressionSegment"),
		ref("FunctionSegment"),
		ref("BracketedExpressionSegment"),
		ref("LiteralExpressionSegment"),
		ref("ParameterSegment"),
		grammar.NewSequence(ref("ColumnReferenceSegment"), grammar.NewAnyNumberOf(0, grammar.NewNode(syntax.ArrayAccessor, grammar.NewBracketed(ref("ExpressionSegment"), "square", false)))),
	))

	lib.Extend("ShorthandCastExpressionSegment", grammar.NewOneOf(
		grammar.NewNode(syntax.ShorthandCastExpression, grammar.NewSequence(
			ref("PrimaryExpressionSegment"),
			grammar.NewAnyNumberOf(1, grammar.NewSequence(opTok(syntax.CastOperator), ref("DatatypeSegment"))),
		)),
		ref("PrimaryExpressionSegment"),
	))

	lib.Extend("UnaryExpressionSegment", grammar.NewOneOf(
		grammar.NewSequence(opTok(syntax.Minus), ref("UnaryExpressionSegment")),
		grammar.NewSequence(kw("NOT"), ref("UnaryExpressionSegment")),
		ref("ShorthandCastExpressionSegment"),
	))

	lib.Extend("MultiplicativeExpressionSegment", grammar.NewSequence(
		ref("UnaryExpressionSegment"),
		grammar.NewAnyNumberOf(0, grammar.NewSequence(grammar.NewOneOf(opTok(syntax.Star), opTok(syntax.Divide), opTok(syntax.Modulo)), ref("UnaryExpressionSegment"))),
	))

	lib.Extend("AdditiveExpressionSegment", grammar.NewSequence(
		ref("MultiplicativeExpressionSegment"),
		grammar.NewAnyNumberOf(0, grammar.NewSequence(grammar.NewOneOf(opTok(syntax.Plus), opTok(syntax.Minus), opTok(syntax.Concat)), ref("MultiplicativeExpressionSegment"))),
	))

	comparisonTail := grammar.NewOneOf(
		grammar.NewSequence(opTok(syntax.EqualsOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(opTok(syntax.NotEqualToOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(opTok(syntax.LessThanOrEqualToOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(opTok(syntax.GreaterThanOrEqualToOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(opTok(syntax.LessThanOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(opTok(syntax.GreaterThanOperator), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(kwOpt("NOT"), kw("IN"), grammar.NewBracketed(grammar.NewDelimited(ref("ExpressionSegment"), commaTok), "round", false)),
		grammar.NewSequence(kwOpt("NOT"), kw("LIKE"), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(kwOpt("NOT"), kw("BETWEEN"), ref("AdditiveExpressionSegment"), kw("AND"), ref("AdditiveExpressionSegment")),
		grammar.NewSequence(kw("IS"), kwOpt("NOT"), grammar.NewOneOf(kw("NULL"), kw("TRUE"), kw("FALSE"), kw("UNKNOWN"))),
	)
	lib.Extend("ComparisonExpressionSegment", grammar.NewSequence(ref("AdditiveExpressionSegment"), optional(comparisonTail)))

	lib.Extend("AndExpressionSegment", grammar.NewSequence(
		ref("ComparisonExpressionSegment"),
		grammar.NewAnyNumberOf(0, grammar.NewSequence(kw("AND"), ref("ComparisonExpressionSegment"))),
	))

	lib.Extend("ExpressionSegment", grammar.NewNode(syntax.Expression, grammar.NewSequence(
		ref("AndExpressionSegment"),
		grammar.NewAnyNumberOf(0, grammar.NewSequence(kw("OR"), ref("AndExpressionSegment"))),
	)))

	// --- statement-level shapes ---

	lib.Extend("SetOperatorSegment", grammar.NewNode(syntax.SetOperator, grammar.NewOneOf(
		grammar.NewSequence(kw("UNION"), optional(grammar.NewOneOf(kw("ALL"), kw("DISTINCT")))),
		kw("INTERSECT"),
		kw("EXCEPT"),
		kw("MINUS"),
	)))

	selectStatement := grammar.NewNode(syntax.SelectStatement, grammar.NewSequence(
		ref("SelectClauseSegment"),
		refOpt("FromClauseSegment"),
		refOpt("WhereClauseSegment"),
		refOpt("GroupByClauseSegment"),
		refOpt("HavingClauseSegment"),
		refOpt("QualifyClauseSegment"),
		refOpt("NamedWindowSegment"),
		refOpt("OrderByClauseSegment"),
		refOpt("LimitClauseSegment"),
		refOpt("OffsetClauseSegment"),
	))
	selectStatement.Inner.(*grammar.Sequence).Terminators = []grammar.Matchable{opTok(syntax.Semicolon)}
	lib.Extend("SelectStatementSegment", selectStatement)

	lib.Extend("SetExpressionSegment", grammar.NewNode(syntax.SetExpression, grammar.NewSequence(
		ref("SelectStatementSegment"),
		grammar.NewAnyNumberOf(1, grammar.NewSequence(ref("SetOperatorSegment"), ref("SelectStatementSegment"))),
	)))

	lib.Extend("CommonTableExpressionNameElementSegment", grammar.NewNode(syntax.CommonTableExpressionNameElement, grammar.NewSequence(
		litTok(syntax.NakedIdentifier),
		optional(grammar.NewBracketed(grammar.NewDelimited(ref("ColumnReferenceSegment"), commaTok), "round", false)),
	)))
	lib.Extend("CommonTableExpressionSegment", grammar.NewNode(syntax.CommonTableExpression, grammar.NewSequence(
		ref("CommonTableExpressionNameElementSegment"),
		kw("AS"),
		grammar.NewBracketed(grammar.NewOneOf(ref("SelectStatementSegment"), ref("SetExpressionSegment")), "round", false),
	)))
	lib.Extend("WithCompoundStatementSegment", grammar.NewNode(syntax.WithCompoundStatement, grammar.NewSequence(
		kw("WITH"),
		kwOpt("RECURSIVE"),
		grammar.NewDelimited(ref("CommonTableExpressionSegment"), commaTok),
		grammar.NewOneOf(ref("SetExpressionSegment"), ref("SelectStatementSegment")),
	)))

	lib.Extend("ColumnDefinitionSegment", grammar.NewNode(syntax.ColumnDefinition, grammar.NewSequence(
		litTok(syntax.NakedIdentifier),
		ref("DatatypeSegment"),
		grammar.NewAnyNumberOf(0, grammar.NewOneOf(
			grammar.NewSequence(kw("NOT"), kw("NULL")),
			grammar.NewSequence(kw("PRIMARY"), kw("KEY")),
			grammar.NewSequence(kw("DEFAULT"), ref("ExpressionSegment")),
		)),
	)))
	lib.Extend("CreateTableStatementSegment", grammar.NewNode(syntax.CreateTableStatement, grammar.NewSequence(
		kw("CREATE"),
		optional(grammar.NewOneOf(kw("TEMP"), kw("TEMPORARY"))),
		kw("TABLE"),
		optional(grammar.NewSequence(kw("IF"), kw("NOT"), kw("EXISTS"))),
		ref("TableReferenceSegment"),
		grammar.NewBracketed(grammar.NewDelimited(ref("ColumnDefinitionSegment"), commaTok), "round", false),
	)))

	lib.Extend("StatementSegment", grammar.NewNode(syntax.Statement, grammar.NewOneOf(
		ref("WithCompoundStatementSegment"),
		ref("SetExpressionSegment"),
		ref("SelectStatementSegment"),
		ref("CreateTableStatementSegment"),
	)))

	lib.Extend("FileSegment", grammar.NewNode(syntax.File, delimitedTrailing(ref("StatementSegment"), opTok(syntax.Semicolon))))
}

// withTerminators sets Terminators on a *grammar.Node wrapping a *grammar.Sequence.
func withTerminators(n *grammar.Node, terms ...grammar.Matchable) *grammar.Node {
	n.Inner.(*grammar.Sequence).Terminators = terms
	return n
}

// frameBound builds the ROWS/RANGE frame boundary alternatives; it isn't
// registered as a named grammar since it's only ever used inline by
// FrameClauseSegment (spec §4.K names FrameClause as the node kind of
// interest, not its internal boundary shape).
func frameBound() grammar.Matchable {
	return grammar.NewOneOf(
		grammar.NewSequence(kw("UNBOUNDED"), grammar.NewOneOf(kw("PRECEDING"), kw("FOLLOWING"))),
		grammar.NewSequence(litTok(syntax.NumericLiteral), grammar.NewOneOf(kw("PRECEDING"), kw("FOLLOWING"))),
		grammar.NewSequence(kw("CURRENT"), kw("ROW")),
	)
}

// delimitedTrailing builds a Delimited that tolerates (and consumes) a
// trailing delimiter with no following element — a dangling statement
// terminator at end of file.
func delimitedTrailing(element, delimiter grammar.Matchable) *grammar.Delimited {
	d := grammar.NewDelimited(element, delimiter)
	d.AllowTrailing = true
	return d
}
