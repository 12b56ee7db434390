package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOverwritesSingleSlot(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	newFrom, _ := tr.NewNode(From, map[SlotID]Arg{
		SlotExpressions: ListArg(mustTable(tr, "accounts")),
	})
	one := NodeArg(newFrom)
	tr.Set(sel, SlotFrom, &one, nil, false)

	require.Equal(t, newFrom, tr.Get(sel, SlotFrom).Node)
	require.Equal(t, sel, tr.node(newFrom).Parent)
}

func mustTable(t *Tree, name string) NodeID {
	id, _ := t.NewNode(Table, map[SlotID]Arg{SlotThis: StringArg(name)})
	return id
}

func TestSetRemovesSlotWhenValueNil(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	tr.Set(sel, SlotFrom, nil, nil, false)
	require.Equal(t, ArgAbsent, tr.Get(sel, SlotFrom).Kind)
}

func TestAppendCreatesListAndReparents(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	col2, _ := tr.newIdentColumn("name")
	tr.Append(sel, SlotExpressions, col2)

	exprs := tr.Expressions(sel)
	require.Len(t, exprs, 2)
	require.Equal(t, col2, exprs[1])
	require.Equal(t, sel, tr.node(col2).Parent)
	require.Equal(t, 1, tr.node(col2).Index)
}

func TestReplaceSwapsNodeInParentSlot(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	from := tr.Get(sel, SlotFrom).Node
	replacement, _ := tr.NewNode(From, map[SlotID]Arg{SlotExpressions: ListArg(mustTable(tr, "accounts"))})

	got := tr.Replace(from, replacement)
	require.Equal(t, replacement, got)
	require.Equal(t, replacement, tr.Get(sel, SlotFrom).Node)
	require.Equal(t, NilID, tr.node(from).Parent, "the replaced node is detached")
}

func TestReplaceAtRootIsNoOp(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	other, _ := tr.NewNode(Null, nil)
	got := tr.Replace(sel, other)
	require.Equal(t, other, got, "Replace still returns newID even though nothing was wired (root has no parent)")
}

func TestReplaceWithNilRemovesListElement(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	col2, _ := tr.newIdentColumn("name")
	tr.Append(sel, SlotExpressions, col2)
	require.Len(t, tr.Expressions(sel), 2)

	tr.Replace(col2, NilID)
	require.Len(t, tr.Expressions(sel), 1)
}

func TestReplaceManySplicesIntoListSlot(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	original := tr.Expressions(sel)[0]
	a, _ := tr.newIdentColumn("a")
	b, _ := tr.newIdentColumn("b")

	tr.ReplaceMany(original, []NodeID{a, b})
	exprs := tr.Expressions(sel)
	require.Equal(t, []NodeID{a, b}, exprs)
}

func TestPopDetachesAndReturnsNode(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	from := tr.Get(sel, SlotFrom).Node
	popped := tr.Pop(from)
	require.Equal(t, from, popped)
	require.Equal(t, ArgAbsent, tr.Get(sel, SlotFrom).Kind)
	require.Equal(t, NilID, tr.node(popped).Parent)
}

func TestTransformInPlaceMutatesSameTree(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)

	renamed, _ := tr.Transform(sel, func(tt *Tree, id NodeID) NodeID {
		if tt.KindOf(id) == Table {
			return mustTable(tt, "renamed")
		}
		return id
	}, false)

	require.Same(t, tr, renamed)
	from := tr.Get(sel, SlotFrom).Node
	tbl := tr.Expressions(from)[0]
	require.Equal(t, "renamed", tr.Text(tbl, SlotThis))
}

func TestTransformCopyFirstLeavesOriginalUntouched(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)

	copied, newRoot := tr.Transform(sel, func(tt *Tree, id NodeID) NodeID {
		if tt.KindOf(id) == Table {
			return mustTable(tt, "renamed")
		}
		return id
	}, true)

	require.NotSame(t, tr, copied)
	from := tr.Get(sel, SlotFrom).Node
	tbl := tr.Expressions(from)[0]
	require.Equal(t, "users", tr.Text(tbl, SlotThis), "original tree must be untouched")

	newFrom := copied.Get(newRoot, SlotFrom).Node
	newTbl := copied.Expressions(newFrom)[0]
	require.Equal(t, "renamed", copied.Text(newTbl, SlotThis))
}

func TestTransformTerminatesOnReplacedSubtree(t *testing.T) {
	tr := NewTree()
	sel := buildSimpleSelect(tr)
	visited := 0

	_, _ = tr.Transform(sel, func(tt *Tree, id NodeID) NodeID {
		visited++
		if tt.KindOf(id) == From {
			// Replace with a brand new subtree; Transform must not descend
			// into the replacement and loop forever.
			return mustFrom(tt, "swapped")
		}
		return id
	}, false)

	require.Less(t, visited, 50, "transform must terminate and not re-visit the grafted replacement")
}

func mustFrom(t *Tree, tableName string) NodeID {
	id, _ := t.NewNode(From, map[SlotID]Arg{SlotExpressions: ListArg(mustTable(t, tableName))})
	return id
}

func TestAddCommentsParsesMetaDirective(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Null, nil)
	tr.AddComments(id, []string{"plain comment", "sqlglot.meta foo=bar, flag"}, false)

	require.Equal(t, []string{"plain comment", "sqlglot.meta foo=bar, flag"}, tr.node(id).Comments)
	require.Equal(t, "bar", tr.Meta(id)["foo"])
	require.Equal(t, true, tr.Meta(id)["flag"])
}

func TestPopCommentsClears(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Null, nil)
	tr.AddComments(id, []string{"a", "b"}, false)
	got := tr.PopComments(id)
	require.Equal(t, []string{"a", "b"}, got)
	require.Nil(t, tr.node(id).Comments)
}
