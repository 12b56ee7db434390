package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismql/prismql/dialect/generic"
	"github.com/prismql/prismql/engine/ast"
)

func TestSelectFromWhereBuildsSelectNode(t *testing.T) {
	tr := ast.NewTree()
	q := Select(tr, generic.Parse, "id", "name").
		From("users").
		Where("id = 1")
	require.NoError(t, q.Err())
	require.Equal(t, ast.Select, tr.KindOf(q.Root))
	require.Len(t, tr.Expressions(q.Root), 2)

	from := tr.Get(q.Root, ast.SlotFrom).Node
	require.NotEqual(t, ast.NilID, from)

	where := tr.Get(q.Root, ast.SlotWhere).Node
	require.Equal(t, ast.EQ, tr.KindOf(tr.This(where)))
}

func TestWhereANDsSubsequentConditions(t *testing.T) {
	tr := ast.NewTree()
	q := Select(tr, generic.Parse, "*").
		From("users").
		Where("id = 1").
		Where("active = true")
	require.NoError(t, q.Err())

	where := tr.Get(q.Root, ast.SlotWhere).Node
	cond := tr.This(where)
	require.Equal(t, ast.And, tr.KindOf(cond))
}

func TestGroupByHavingOrderByLimitOffset(t *testing.T) {
	tr := ast.NewTree()
	q := Select(tr, generic.Parse, "id").
		From("users").
		GroupBy("id").
		Having("id > 1").
		OrderBy("id", true).
		OrderBy("name", false).
		Limit(10).
		Offset(5)
	require.NoError(t, q.Err())

	group := tr.Get(q.Root, ast.SlotGroup).Node
	require.Equal(t, ast.Group, tr.KindOf(group))

	having := tr.Get(q.Root, ast.SlotHaving).Node
	require.Equal(t, ast.GT, tr.KindOf(tr.This(having)))

	order := tr.Get(q.Root, ast.SlotOrder).Node
	ordereds := tr.Expressions(order)
	require.Len(t, ordereds, 2)
	require.True(t, tr.Get(ordereds[0], ast.SlotDesc).Bool)
	require.False(t, tr.Get(ordereds[1], ast.SlotDesc).Bool)

	limit := tr.Get(q.Root, ast.SlotLimit).Node
	require.Equal(t, "10", tr.Text(tr.This(limit), ast.SlotThis))

	offset := tr.Get(q.Root, ast.SlotOffset).Node
	require.Equal(t, "5", tr.Text(tr.This(offset), ast.SlotThis))
}

func TestJoinAppendsToJoinsList(t *testing.T) {
	tr := ast.NewTree()
	q := Select(tr, generic.Parse, "*").
		From("users").
		Join("orders", "LEFT", "users.id = orders.user_id")
	require.NoError(t, q.Err())

	joins := tr.Get(q.Root, ast.SlotJoins).List
	require.Len(t, joins, 1)
	require.Equal(t, "LEFT", tr.Text(joins[0], ast.SlotSide))
	on := tr.Get(joins[0], ast.SlotOn).Node
	require.Equal(t, ast.EQ, tr.KindOf(on))
}

func TestWithPrependsNamedCTE(t *testing.T) {
	tr := ast.NewTree()
	inner := Select(tr, generic.Parse, "id").From("users")
	require.NoError(t, inner.Err())

	outer := Select(tr, generic.Parse, "*").
		From("active_users").
		With("active_users", inner, false)
	require.NoError(t, outer.Err())

	with := tr.Get(outer.Root, ast.SlotWith).Node
	require.Equal(t, ast.With, tr.KindOf(with))
	ctes := tr.Expressions(with)
	require.Len(t, ctes, 1)
	require.Equal(t, ast.CTE, tr.KindOf(ctes[0]))
	require.Equal(t, inner.Root, tr.This(ctes[0]))
}

func TestSetOpCombinesTwoQueries(t *testing.T) {
	tr := ast.NewTree()
	a := Select(tr, generic.Parse, "id").From("users")
	b := Select(tr, generic.Parse, "id").From("admins")
	require.NoError(t, a.Err())
	require.NoError(t, b.Err())

	u := a.SetOp(ast.Union, b, true)
	require.NoError(t, u.Err())
	require.Equal(t, ast.Union, tr.KindOf(u.Root))
	require.False(t, tr.Get(u.Root, ast.SlotDistinct).Bool, "all=true means UNION ALL, not DISTINCT")
}

func TestSubqueryWrapsWithAlias(t *testing.T) {
	tr := ast.NewTree()
	inner := Select(tr, generic.Parse, "id").From("users")
	require.NoError(t, inner.Err())

	sub := inner.Subquery("u")
	require.NoError(t, sub.Err())
	require.Equal(t, ast.Subquery, tr.KindOf(sub.Root))
	alias := tr.Get(sub.Root, ast.SlotAlias).Node
	require.Equal(t, "u", tr.Text(alias, ast.SlotThis))
}

func TestErrStopsChainAfterFirstFailure(t *testing.T) {
	tr := ast.NewTree()
	q := Select(tr, generic.Parse, "*").
		From("users").
		Where("###").
		Where("id = 2")
	require.Error(t, q.Err())
}

func TestExpandPluralizesLowercased(t *testing.T) {
	require.Equal(t, "users", Expand("User"))
	require.Equal(t, "categories", Expand("Category"))
}

func TestTableNameJoinsNonEmptyParts(t *testing.T) {
	require.Equal(t, "catalog.db.table", TableName("catalog", "db", "table"))
	require.Equal(t, "db.table", TableName("", "db", "table"))
	require.Equal(t, "table", TableName("", "", "table"))
}
