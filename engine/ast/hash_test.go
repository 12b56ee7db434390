package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSimpleSelect(tr *Tree) NodeID {
	col, _ := tr.newIdentColumn("id")
	tbl, _ := tr.NewNode(Table, map[SlotID]Arg{SlotThis: StringArg("users")})
	from, _ := tr.NewNode(From, map[SlotID]Arg{SlotExpressions: ListArg(tbl)})
	sel, _ := tr.NewNode(Select, map[SlotID]Arg{
		SlotExpressions: ListArg(col),
		SlotFrom:        NodeArg(from),
	})
	return sel
}

func TestHashEqualStructurallyIdenticalTrees(t *testing.T) {
	t1 := NewTree()
	s1 := buildSimpleSelect(t1)

	t2 := NewTree()
	s2 := buildSimpleSelect(t2)

	require.Equal(t, t1.Hash(s1), t2.Hash(s2))
	require.True(t, Equal(t1, s1, t2, s2))
}

func TestHashDiffersOnDifferentTableName(t *testing.T) {
	t1 := NewTree()
	s1 := buildSimpleSelect(t1)

	t2 := NewTree()
	col, _ := t2.newIdentColumn("id")
	tbl, _ := t2.NewNode(Table, map[SlotID]Arg{SlotThis: StringArg("accounts")})
	from, _ := t2.NewNode(From, map[SlotID]Arg{SlotExpressions: ListArg(tbl)})
	s2, _ := t2.NewNode(Select, map[SlotID]Arg{SlotExpressions: ListArg(col), SlotFrom: NodeArg(from)})

	require.NotEqual(t, t1.Hash(s1), t2.Hash(s2))
	require.False(t, Equal(t1, s1, t2, s2))
}

func TestEqualDistinguishesStringFromNumberLiteral(t *testing.T) {
	tr := NewTree()
	str := tr.NewLiteralString("5")
	num := tr.NewLiteralNumber("5")
	require.False(t, tr.Equal(str, num))
}

func TestHashCacheInvalidatedOnMutation(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	first := tr.Hash(sel)
	require.NotNil(t, tr.node(sel).hashCache)

	newCol, _ := tr.newIdentColumn("email")
	tr.Append(sel, SlotExpressions, newCol)

	require.Nil(t, tr.node(sel).hashCache, "mutating a slot must clear the cached hash")
	second := tr.Hash(sel)
	require.NotEqual(t, first, second)
}

func TestInvalidateHashStopsAtFirstClearedAncestor(t *testing.T) {
	tr := NewTree()
	leaf, _ := tr.newIdentColumn("id")
	wrapper, _ := tr.NewNode(Paren, map[SlotID]Arg{SlotThis: NodeArg(leaf)})
	outer, _ := tr.NewNode(Paren, map[SlotID]Arg{SlotThis: NodeArg(wrapper)})

	tr.Hash(outer)
	require.NotNil(t, tr.node(wrapper).hashCache)
	require.NotNil(t, tr.node(outer).hashCache)

	// Directly pre-clear the middle ancestor's cache, then invalidate the
	// leaf: the walk must stop at wrapper (already nil) and never touch
	// outer, which keeps its now-stale cached hash.
	tr.node(wrapper).hashCache = nil
	tr.invalidateHash(leaf)
	require.NotNil(t, tr.node(outer).hashCache, "invariant 5: walk stops at first already-invalidated ancestor")
}

func TestNonRawStringArgsHashCaseInsensitively(t *testing.T) {
	tr := NewTree()
	lower, _ := tr.NewNode(Table, map[SlotID]Arg{SlotThis: StringArg("users")})
	upper, _ := tr.NewNode(Table, map[SlotID]Arg{SlotThis: StringArg("USERS")})
	// Table isn't a HashRawArgs kind, so its string slot values are
	// case-folded before hashing, unlike Literal/Identifier/Var/HexString.
	require.Equal(t, tr.Hash(lower), tr.Hash(upper))
}

func TestRawArgKindsHashCaseSensitively(t *testing.T) {
	tr := NewTree()
	lower := tr.NewLiteralString("hello")
	upper := tr.NewLiteralString("HELLO")
	require.NotEqual(t, tr.Hash(lower), tr.Hash(upper))
}
