package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismql/prismql/engine/ast"
)

func TestIngestSimpleSelect(t *testing.T) {
	tr, root, err := Ingest("SELECT id, name FROM users WHERE id = 1 LIMIT 10")
	require.NoError(t, err)
	require.Equal(t, ast.Select, tr.KindOf(root))
	require.Len(t, tr.Expressions(root), 2)

	from := tr.Get(root, ast.SlotFrom).Node
	tables := tr.Expressions(from)
	require.Len(t, tables, 1)
	require.Equal(t, ast.Table, tr.KindOf(tables[0]))
	require.Equal(t, "users", tr.Text(tables[0], ast.SlotThis))

	where := tr.Get(root, ast.SlotWhere).Node
	require.Equal(t, ast.EQ, tr.KindOf(tr.This(where)))

	limit := tr.Get(root, ast.SlotLimit).Node
	require.Equal(t, "10", tr.Text(tr.This(limit), ast.SlotThis))
}

func TestIngestSelectStarYieldsSingleStarTarget(t *testing.T) {
	tr, root, err := Ingest("SELECT * FROM users")
	require.NoError(t, err)
	exprs := tr.Expressions(root)
	require.Len(t, exprs, 1)
}

func TestIngestAliasedTarget(t *testing.T) {
	tr, root, err := Ingest("SELECT id AS user_id FROM users")
	require.NoError(t, err)
	exprs := tr.Expressions(root)
	require.Equal(t, ast.Alias, tr.KindOf(exprs[0]))
	alias := tr.Get(exprs[0], ast.SlotAlias).Node
	require.Equal(t, "user_id", tr.Text(alias, ast.SlotThis))
}

func TestIngestUnionCombinesTwoSelects(t *testing.T) {
	tr, root, err := Ingest("SELECT id FROM users UNION SELECT id FROM admins")
	require.NoError(t, err)
	require.Equal(t, ast.Union, tr.KindOf(root))
	require.True(t, tr.Get(root, ast.SlotDistinct).Bool, "UNION without ALL is distinct")
}

func TestIngestMalformedSQLReturnsParseFailure(t *testing.T) {
	_, _, err := Ingest("SELEKT id FORM users")
	require.Error(t, err)
	var pf *ast.ParseFailureError
	require.ErrorAs(t, err, &pf)
}

func TestIngestUnsupportedStatementErrors(t *testing.T) {
	_, _, err := Ingest("INSERT INTO users (id) VALUES (1)")
	require.Error(t, err)
}
