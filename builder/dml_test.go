package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismql/prismql/dialect/generic"
	"github.com/prismql/prismql/engine/ast"
)

func TestInsertWithColumnsAndValues(t *testing.T) {
	tr := ast.NewTree()
	d := Insert(tr, generic.Parse, "users", []string{"id", "name"}).
		Values([][]any{{1, "alice"}, {2, "bob"}})
	require.NoError(t, d.Err())
	require.Equal(t, ast.Insert, tr.KindOf(d.Root))

	cols := tr.Get(d.Root, ast.SlotColumns).List
	require.Len(t, cols, 2)

	values := tr.Get(d.Root, ast.SlotExpression).Node
	require.Equal(t, ast.Values, tr.KindOf(values))
	tuples := tr.Expressions(values)
	require.Len(t, tuples, 2)
	require.Len(t, tr.Expressions(tuples[0]), 2)
}

func TestInsertWithoutColumns(t *testing.T) {
	tr := ast.NewTree()
	d := Insert(tr, generic.Parse, "users", nil)
	require.NoError(t, d.Err())
	cols := tr.Get(d.Root, ast.SlotColumns)
	require.Equal(t, ast.ArgAbsent, cols.Kind)
}

func TestUpdateSetWhereReturning(t *testing.T) {
	tr := ast.NewTree()
	d := Update(tr, generic.Parse, "users").
		Set("name", "'bob'").
		Set("active", "true").
		Where("id = 1").
		Returning("id", "name")
	require.NoError(t, d.Err())
	require.Equal(t, ast.Update, tr.KindOf(d.Root))

	items := tr.Expressions(d.Root)
	require.Len(t, items, 2)
	require.Equal(t, ast.SetItem, tr.KindOf(items[0]))

	where := tr.Get(d.Root, ast.SlotWhere).Node
	require.Equal(t, ast.EQ, tr.KindOf(tr.This(where)))

	returning := tr.Get(d.Root, ast.SlotReturning).Node
	require.Len(t, tr.Expressions(returning), 2)
}

func TestDeleteWithWhere(t *testing.T) {
	tr := ast.NewTree()
	d := Delete(tr, generic.Parse, "users").Where("id = 1")
	require.NoError(t, d.Err())
	require.Equal(t, ast.Delete, tr.KindOf(d.Root))
	where := tr.Get(d.Root, ast.SlotWhere).Node
	require.Equal(t, ast.EQ, tr.KindOf(tr.This(where)))
}

func TestDMLErrStopsChainAfterFirstFailure(t *testing.T) {
	tr := ast.NewTree()
	d := Insert(tr, generic.Parse, "users", []string{"###"}).
		Values([][]any{{1}})
	require.Error(t, d.Err())
}
