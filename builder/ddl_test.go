package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismql/prismql/engine/ast"
)

func TestCreateTableBuildsColumnsAndConstraints(t *testing.T) {
	tr := ast.NewTree()
	d := CreateTable(tr, "users").
		Column("id", "AUTO", "PRIMARY_KEY").
		Column("email", "STRING", "UNIQUE", "NOT_NULL")
	require.NoError(t, d.Err())
	require.Equal(t, ast.CreateTable, tr.KindOf(d.Root))

	table := tr.This(d.Root)
	require.Equal(t, ast.Table, tr.KindOf(table))
	require.Equal(t, "users", tr.Text(table, ast.SlotThis))

	cols := tr.Expressions(d.Root)
	require.Len(t, cols, 2)

	id := cols[0]
	require.Equal(t, ast.ColumnDef, tr.KindOf(id))
	require.Equal(t, "id", tr.Text(tr.This(id), ast.SlotThis))
	kind := tr.Get(id, ast.SlotKind).Node
	require.Equal(t, ast.DataType, tr.KindOf(kind))
	require.Equal(t, "AUTO", tr.Text(kind, ast.SlotThis))
	constraints := tr.Get(id, ast.SlotConstraints).List
	require.Len(t, constraints, 1)
	require.Equal(t, ast.PrimaryKeyColumnConstraint, tr.KindOf(constraints[0]))

	email := cols[1]
	emailConstraints := tr.Get(email, ast.SlotConstraints).List
	require.Len(t, emailConstraints, 2)
	require.Equal(t, ast.UniqueColumnConstraint, tr.KindOf(emailConstraints[0]))
	require.Equal(t, ast.NotNullColumnConstraint, tr.KindOf(emailConstraints[1]))
}

func TestCreateTableUnknownConstraintFails(t *testing.T) {
	tr := ast.NewTree()
	d := CreateTable(tr, "users").Column("id", "AUTO", "BOGUS")
	require.Error(t, d.Err())
}
