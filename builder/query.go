// Package builder provides a fluent DSL for assembling ast.Tree query
// nodes without going through a dialect parser, grounded on the teacher's
// per-clause BuildXSQL decomposition (engine/builders/postgres/builders.go)
// but producing Expression nodes rather than SQL text.
package builder

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/prismql/prismql/engine/ast"
)

// ParseFunc parses a SQL fragment in some dialect into an ast.Tree node.
// Builders accept one so that a string shorthand ("x.id = y.id") can be
// woven in without this package importing any concrete dialect, mirroring
// how the source threads a dialect-bound parser through its builder calls
// instead of holding a global parser reference.
type ParseFunc func(tree *ast.Tree, sql string) (ast.NodeID, error)

// Query wraps a Tree plus the NodeID of the Select/Union/etc. under
// construction so clause methods can chain.
type Query struct {
	Tree   *ast.Tree
	Root   ast.NodeID
	Parse  ParseFunc
	lastFn error
}

// Err returns the first error raised by any chained call, if any.
func (q *Query) Err() error { return q.lastFn }

func (q *Query) fail(err error) *Query {
	if q.lastFn == nil {
		q.lastFn = err
	}
	return q
}

// Select starts a new Query with the given select-list expressions
// (strings are parsed with parse; anything else is rejected).
func Select(tree *ast.Tree, parse ParseFunc, columns ...string) *Query {
	var ids []ast.NodeID
	q := &Query{Tree: tree, Parse: parse}
	for _, c := range columns {
		id, err := parse(tree, c)
		if err != nil {
			return q.fail(err)
		}
		ids = append(ids, id)
	}
	root, err := tree.NewNode(ast.Select, map[ast.SlotID]ast.Arg{
		ast.SlotExpressions: ast.ListArg(ids...),
	})
	if err != nil {
		return q.fail(err)
	}
	q.Root = root
	return q
}

func (q *Query) parseInto(slot ast.SlotID, sql string) *Query {
	if q.lastFn != nil {
		return q
	}
	id, err := q.Parse(q.Tree, sql)
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(id)
	q.Tree.Set(q.Root, slot, &one, nil, false)
	return q
}

// From sets the FROM clause from a table reference expression.
func (q *Query) From(table string) *Query {
	if q.lastFn != nil {
		return q
	}
	id, err := q.Parse(q.Tree, table)
	if err != nil {
		return q.fail(err)
	}
	fromID, err := q.Tree.NewNode(ast.From, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(id)})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(fromID)
	q.Tree.Set(q.Root, ast.SlotFrom, &one, nil, false)
	return q
}

// Where ANDs condition onto any existing WHERE clause. When combining, the
// existing condition and the new one are each wrapped in Paren if they are
// themselves connectors (AND/OR/XOR).
func (q *Query) Where(condition string) *Query {
	if q.lastFn != nil {
		return q
	}
	id, err := q.Parse(q.Tree, condition)
	if err != nil {
		return q.fail(err)
	}

	existing := q.Tree.Get(q.Root, ast.SlotWhere)
	if existing.Kind != ast.ArgNode || existing.Node == ast.NilID {
		whereID, err := q.Tree.NewNode(ast.Where, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(id)})
		if err != nil {
			return q.fail(err)
		}
		one := ast.NodeArg(whereID)
		q.Tree.Set(q.Root, ast.SlotWhere, &one, nil, false)
		return q
	}

	prior := q.Tree.This(existing.Node)
	if q.Tree.IsConnector(prior) {
		if prior, err = q.Tree.NewNode(ast.Paren, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(prior)}); err != nil {
			return q.fail(err)
		}
	}
	if q.Tree.IsConnector(id) {
		if id, err = q.Tree.NewNode(ast.Paren, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(id)}); err != nil {
			return q.fail(err)
		}
	}
	conj, err := q.Tree.NewNode(ast.And, map[ast.SlotID]ast.Arg{
		ast.SlotThis:       ast.NodeArg(prior),
		ast.SlotExpression: ast.NodeArg(id),
	})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(conj)
	q.Tree.Set(existing.Node, ast.SlotThis, &one, nil, false)
	return q
}

// GroupBy appends expressions to GROUP BY.
func (q *Query) GroupBy(exprs ...string) *Query {
	if q.lastFn != nil {
		return q
	}
	var ids []ast.NodeID
	for _, e := range exprs {
		id, err := q.Parse(q.Tree, e)
		if err != nil {
			return q.fail(err)
		}
		ids = append(ids, id)
	}
	groupID, err := q.Tree.NewNode(ast.Group, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(ids...)})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(groupID)
	q.Tree.Set(q.Root, ast.SlotGroup, &one, nil, false)
	return q
}

// Having sets the HAVING clause.
func (q *Query) Having(condition string) *Query {
	if q.lastFn != nil {
		return q
	}
	id, err := q.Parse(q.Tree, condition)
	if err != nil {
		return q.fail(err)
	}
	havingID, err := q.Tree.NewNode(ast.Having, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(id)})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(havingID)
	q.Tree.Set(q.Root, ast.SlotHaving, &one, nil, false)
	return q
}

// OrderBy appends one ordered expression, descending when desc is true.
func (q *Query) OrderBy(expr string, desc bool) *Query {
	if q.lastFn != nil {
		return q
	}
	id, err := q.Parse(q.Tree, expr)
	if err != nil {
		return q.fail(err)
	}
	ordered, err := q.Tree.NewNode(ast.Ordered, map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(id),
		ast.SlotDesc: ast.BoolArg(desc),
	})
	if err != nil {
		return q.fail(err)
	}

	existing := q.Tree.Get(q.Root, ast.SlotOrder)
	var orderID ast.NodeID
	if existing.Kind == ast.ArgNode && existing.Node != ast.NilID {
		orderID = existing.Node
		q.Tree.Append(orderID, ast.SlotExpressions, ordered)
	} else {
		orderID, err = q.Tree.NewNode(ast.Order, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(ordered)})
		if err != nil {
			return q.fail(err)
		}
		one := ast.NodeArg(orderID)
		q.Tree.Set(q.Root, ast.SlotOrder, &one, nil, false)
	}
	return q
}

// Limit sets the LIMIT clause to a literal integer.
func (q *Query) Limit(n int64) *Query {
	if q.lastFn != nil {
		return q
	}
	lit := q.Tree.NewLiteralNumber(itoa(n))
	limitID, err := q.Tree.NewNode(ast.Limit, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(lit)})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(limitID)
	q.Tree.Set(q.Root, ast.SlotLimit, &one, nil, false)
	return q
}

// Offset sets the OFFSET clause to a literal integer.
func (q *Query) Offset(n int64) *Query {
	if q.lastFn != nil {
		return q
	}
	lit := q.Tree.NewLiteralNumber(itoa(n))
	offsetID, err := q.Tree.NewNode(ast.Offset, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(lit)})
	if err != nil {
		return q.fail(err)
	}
	one := ast.NodeArg(offsetID)
	q.Tree.Set(q.Root, ast.SlotOffset, &one, nil, false)
	return q
}

// Join appends a JOIN against table, with an optional ON condition (empty
// for a natural/cross join) and join side ("LEFT", "RIGHT", "", ...).
func (q *Query) Join(table, side, on string) *Query {
	if q.lastFn != nil {
		return q
	}
	tableID, err := q.Parse(q.Tree, table)
	if err != nil {
		return q.fail(err)
	}
	args := map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(tableID),
		ast.SlotSide: ast.StringArg(strings.ToUpper(side)),
	}
	if on != "" {
		onID, err := q.Parse(q.Tree, on)
		if err != nil {
			return q.fail(err)
		}
		args[ast.SlotOn] = ast.NodeArg(onID)
	}
	joinID, err := q.Tree.NewNode(ast.Join, args)
	if err != nil {
		return q.fail(err)
	}
	q.Tree.Append(q.Root, ast.SlotJoins, joinID)
	return q
}

// With prepends a named CTE (WITH name AS (query)).
func (q *Query) With(name string, query *Query, recursive bool) *Query {
	if q.lastFn != nil {
		return q
	}
	if query.lastFn != nil {
		return q.fail(query.lastFn)
	}
	aliasID, err := q.Tree.NewNode(TableAliasKind(), map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(name)})
	if err != nil {
		return q.fail(err)
	}
	cteID, err := q.Tree.NewNode(ast.CTE, map[ast.SlotID]ast.Arg{
		ast.SlotThis:  ast.NodeArg(query.Root),
		ast.SlotAlias: ast.NodeArg(aliasID),
	})
	if err != nil {
		return q.fail(err)
	}

	existing := q.Tree.Get(q.Root, ast.SlotWith)
	var withID ast.NodeID
	if existing.Kind == ast.ArgNode && existing.Node != ast.NilID {
		withID = existing.Node
		q.Tree.Append(withID, ast.SlotExpressions, cteID)
	} else {
		withID, err = q.Tree.NewNode(ast.With, map[ast.SlotID]ast.Arg{
			ast.SlotExpressions: ast.ListArg(cteID),
			ast.SlotRecursive:   ast.BoolArg(recursive),
		})
		if err != nil {
			return q.fail(err)
		}
		one := ast.NodeArg(withID)
		q.Tree.Set(q.Root, ast.SlotWith, &one, nil, false)
	}
	return q
}

// SetOp combines this query with other via kind (ast.Union, ast.Intersect,
// or ast.Except).
func (q *Query) SetOp(kind ast.Kind, other *Query, all bool) *Query {
	if q.lastFn != nil {
		return q
	}
	if other.lastFn != nil {
		return q.fail(other.lastFn)
	}
	id, err := q.Tree.NewNode(kind, map[ast.SlotID]ast.Arg{
		ast.SlotThis:       ast.NodeArg(q.Root),
		ast.SlotExpression: ast.NodeArg(other.Root),
		ast.SlotDistinct:   ast.BoolArg(!all),
	})
	if err != nil {
		return q.fail(err)
	}
	q.Root = id
	return q
}

// Subquery wraps the query in a Subquery node with the given alias.
func (q *Query) Subquery(alias string) *Query {
	if q.lastFn != nil {
		return q
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(q.Root)}
	if alias != "" {
		aliasID, err := q.Tree.NewNode(TableAliasKind(), map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(alias)})
		if err != nil {
			return q.fail(err)
		}
		args[ast.SlotAlias] = ast.NodeArg(aliasID)
	}
	id, err := q.Tree.NewNode(ast.Subquery, args)
	if err != nil {
		return q.fail(err)
	}
	q.Root = id
	return q
}

// TableAliasKind exposes ast.TableAlias for callers in this package's
// sibling files without a second import of the ast package's kind table.
func TableAliasKind() ast.Kind { return ast.TableAlias }

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Expand synthesizes an alias for a derived table expression the way a
// generator does when a subquery needs a name but the user didn't supply
// one: it pluralizes the table's own name via inflection, the same
// dependency the source's alias-expansion path pulls in for naming CTEs
// and derived tables from their singular entity name.
func Expand(baseName string) string {
	return inflection.Plural(strings.ToLower(baseName))
}

// TableName builds a dotted table reference (catalog.db.table), omitting
// empty parts, grounded on the teacher's Table() helpers used throughout
// its DDL builders.
func TableName(catalog, db, table string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{catalog, db, table} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
