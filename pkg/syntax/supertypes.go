package syntax

// supertypes maps a node/token kind to the additional kinds its class-type
// set carries beyond its own kind, per spec §3 invariant (ii): "a node's
// SyntaxSet ⊇ own kind plus supertypes (e.g. ColumnReference ⇒
// {ColumnReference, ObjectReference})".
//
// This table is the single source of truth for spec §8 property 4
// (class-type monotonicity) and is consulted (via ClassTypes) by
// segment.NewToken and segment.NewNode to populate a
// segment's cached class_types.
var supertypes = map[Kind][]Kind{
	ColumnReference:        {ObjectReference},
	TableReference:         {ObjectReference},
	WildcardIdentifier:     {ObjectReference},
	CommonTableExpressionNameElement: {ObjectReference},

	SelectStatement: {Statement},
	SetExpression:   {Statement},

	NumericLiteral:      {LiteralExpression},
	QuotedLiteral:       {LiteralExpression},
	BooleanLiteral:      {LiteralExpression},
	NullLiteral:         {LiteralExpression},
	DateLiteral:         {LiteralExpression},
	BitLiteral:          {LiteralExpression},
	DollarQuotedLiteral:  {LiteralExpression},

	CastExpression:          {Expression},
	ShorthandCastExpression: {Expression},
	CaseExpression:          {Expression},
	Function:                {Expression},
	IntervalExpression:      {Expression},
	ColumnExpression:        {Expression},
	BracketedExpression:     {Expression},
}

// Supertypes returns the set of additional kinds implied by k (not
// including k itself).
func Supertypes(k Kind) Set {
	var s Set
	for _, sup := range supertypes[k] {
		s.Insert(sup)
	}
	return s
}

// ClassTypes returns k's full class-type set: k itself plus every implied
// supertype, transitively (a supertype may itself have supertypes).
func ClassTypes(k Kind) Set {
	s := Single(k)
	frontier := []Kind{k}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, sup := range supertypes[cur] {
			if !s.Contains(sup) {
				s.Insert(sup)
				frontier = append(frontier, sup)
			}
		}
	}
	return s
}
