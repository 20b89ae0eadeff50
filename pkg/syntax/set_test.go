package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnionLaw(t *testing.T) {
	a := NewSet(SelectStatement, WhereClause)
	b := NewSet(WhereClause, FromClause)

	u := a.Union(b)
	for _, k := range []Kind{SelectStatement, WhereClause, FromClause} {
		assert.True(t, u.Contains(k), "union must contain %s", k)
	}
	assert.False(t, u.Contains(HavingClause))

	for _, k := range []Kind{SelectStatement, WhereClause, FromClause, HavingClause, Comma} {
		got := u.Contains(k)
		want := a.Contains(k) || b.Contains(k)
		assert.Equal(t, want, got, "union law violated for %s", k)
	}
}

func TestSetIntersectionLenBound(t *testing.T) {
	a := NewSet(SelectStatement, WhereClause, FromClause)
	b := NewSet(WhereClause, FromClause, HavingClause, Comma)

	i := a.Intersection(b)
	require.LessOrEqual(t, i.Len(), a.Len())
	require.LessOrEqual(t, i.Len(), b.Len())
	assert.True(t, i.Contains(WhereClause))
	assert.True(t, i.Contains(FromClause))
	assert.False(t, i.Contains(Comma))
}

func TestSetInsertRemove(t *testing.T) {
	var s Set
	assert.True(t, s.IsEmpty())
	s.Insert(SelectStatement)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Len())
	s.Remove(SelectStatement)
	assert.True(t, s.IsEmpty())
}

func TestClassTypeMonotonicity(t *testing.T) {
	// spec §8 property 4
	assert.True(t, ClassTypes(ColumnReference).Contains(ObjectReference))
	assert.True(t, ClassTypes(WildcardIdentifier).Contains(ObjectReference))
	assert.True(t, ClassTypes(TableReference).Contains(ObjectReference))
}

func TestKindStringStable(t *testing.T) {
	assert.Equal(t, "select_statement", SelectStatement.String())
	assert.Equal(t, "column_reference", ColumnReference.String())
}

func TestIndentVal(t *testing.T) {
	assert.Equal(t, 1, Indent.IndentVal())
	assert.Equal(t, -1, Dedent.IndentVal())
	assert.Equal(t, 0, SelectStatement.IndentVal())
}
