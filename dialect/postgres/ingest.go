// Package postgres converts a parsed Postgres statement into an ast.Tree,
// using pg_query_go (the real Postgres grammar, compiled from the server's
// own parser) to do the actual tokenizing and grammar work the overall
// library's Non-goals keep out of this codebase. This package only maps
// pg_query_go's parse tree onto the node-kind registry.
package postgres

import (
	"fmt"

	pgquery "github.com/pganalyze/pg_query_go/v5"
	"go.uber.org/zap"

	"github.com/prismql/prismql/engine/ast"
	"github.com/prismql/prismql/telemetry"
)

// Ingest parses a single Postgres SQL statement and converts it to an
// ast.Tree, returning the root node. Statements pg_query_go parses but this
// converter doesn't yet recognize surface as *ast.ParseFailureError rather
// than panicking, so callers can fall back to another dialect.
func Ingest(sql string) (*ast.Tree, ast.NodeID, error) {
	result, err := pgquery.Parse(sql)
	if err != nil {
		telemetry.Warn("postgres ingest failed", zap.Error(err))
		return nil, ast.NilID, ast.NewParseFailure(ast.Token{Value: sql}, err.Error())
	}
	if len(result.Stmts) == 0 {
		return nil, ast.NilID, &ast.ParseFailureError{Message: "empty statement"}
	}

	t := ast.NewTree()
	c := &converter{tree: t}
	root, err := c.statement(result.Stmts[0].Stmt)
	if err != nil {
		return nil, ast.NilID, err
	}
	telemetry.Debug("postgres ingest ok", zap.Int32("root", int32(root)))
	return t, root, nil
}

type converter struct {
	tree *ast.Tree
}

func (c *converter) unsupported(what string) (ast.NodeID, error) {
	return ast.NilID, &ast.ParseFailureError{Message: "postgres: unsupported " + what}
}

func (c *converter) statement(n *pgquery.Node) (ast.NodeID, error) {
	switch {
	case n.GetSelectStmt() != nil:
		return c.selectStmt(n.GetSelectStmt())
	case n.GetInsertStmt() != nil:
		return c.insertStmt(n.GetInsertStmt())
	case n.GetUpdateStmt() != nil:
		return c.updateStmt(n.GetUpdateStmt())
	case n.GetDeleteStmt() != nil:
		return c.deleteStmt(n.GetDeleteStmt())
	default:
		return c.unsupported(fmt.Sprintf("statement %T", n.Node))
	}
}

func (c *converter) selectStmt(s *pgquery.SelectStmt) (ast.NodeID, error) {
	if s.Op != pgquery.SetOperation_SETOP_NONE && s.Larg != nil && s.Rarg != nil {
		left, err := c.selectStmt(s.Larg)
		if err != nil {
			return ast.NilID, err
		}
		right, err := c.selectStmt(s.Rarg)
		if err != nil {
			return ast.NilID, err
		}
		kind := ast.Union
		switch s.Op {
		case pgquery.SetOperation_SETOP_INTERSECT:
			kind = ast.Intersect
		case pgquery.SetOperation_SETOP_EXCEPT:
			kind = ast.Except
		}
		return c.tree.NewNode(kind, map[ast.SlotID]ast.Arg{
			ast.SlotThis:       ast.NodeArg(left),
			ast.SlotExpression: ast.NodeArg(right),
			ast.SlotDistinct:   ast.BoolArg(!s.All),
		})
	}

	var selected []ast.NodeID
	for _, t := range s.TargetList {
		id, err := c.resTarget(t)
		if err != nil {
			return ast.NilID, err
		}
		selected = append(selected, id)
	}
	if len(selected) == 0 {
		star, err := c.tree.NewNode(ast.Star, nil)
		if err != nil {
			return ast.NilID, err
		}
		selected = []ast.NodeID{star}
	}

	args := map[ast.SlotID]ast.Arg{
		ast.SlotExpressions: ast.ListArg(selected...),
		ast.SlotDistinct:    ast.BoolArg(len(s.DistinctClause) > 0),
	}

	if len(s.FromClause) > 0 {
		var fromIDs []ast.NodeID
		for _, f := range s.FromClause {
			id, err := c.fromItem(f)
			if err != nil {
				return ast.NilID, err
			}
			fromIDs = append(fromIDs, id)
		}
		fromID, err := c.tree.NewNode(ast.From, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(fromIDs...)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotFrom] = ast.NodeArg(fromID)
	}

	if s.WhereClause != nil {
		cond, err := c.expr(s.WhereClause)
		if err != nil {
			return ast.NilID, err
		}
		whereID, err := c.tree.NewNode(ast.Where, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(cond)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotWhere] = ast.NodeArg(whereID)
	}

	if s.LimitCount != nil {
		lim, err := c.expr(s.LimitCount)
		if err != nil {
			return ast.NilID, err
		}
		limitID, err := c.tree.NewNode(ast.Limit, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(lim)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotLimit] = ast.NodeArg(limitID)
	}

	if s.LimitOffset != nil {
		off, err := c.expr(s.LimitOffset)
		if err != nil {
			return ast.NilID, err
		}
		offsetID, err := c.tree.NewNode(ast.Offset, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(off)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotOffset] = ast.NodeArg(offsetID)
	}

	return c.tree.NewNode(ast.Select, args)
}

func (c *converter) resTarget(n *pgquery.Node) (ast.NodeID, error) {
	rt := n.GetResTarget()
	if rt == nil {
		return c.unsupported("select target")
	}
	val, err := c.expr(rt.Val)
	if err != nil {
		return ast.NilID, err
	}
	if rt.Name == "" {
		return val, nil
	}
	aliasID, err := c.tree.NewNode(ast.TableAlias, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(rt.Name)})
	if err != nil {
		return ast.NilID, err
	}
	return c.tree.NewNode(ast.Alias, map[ast.SlotID]ast.Arg{
		ast.SlotThis:  ast.NodeArg(val),
		ast.SlotAlias: ast.NodeArg(aliasID),
	})
}

func (c *converter) fromItem(n *pgquery.Node) (ast.NodeID, error) {
	rv := n.GetRangeVar()
	if rv == nil {
		return c.unsupported("from item")
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(rv.Relname)}
	if rv.Schemaname != "" {
		args[ast.SlotDB] = ast.StringArg(rv.Schemaname)
	}
	if rv.Catalogname != "" {
		args[ast.SlotCatalog] = ast.StringArg(rv.Catalogname)
	}
	if rv.Alias != nil && rv.Alias.Aliasname != "" {
		aliasID, err := c.tree.NewNode(ast.TableAlias, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(rv.Alias.Aliasname)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotAlias] = ast.NodeArg(aliasID)
	}
	return c.tree.NewNode(ast.Table, args)
}

var pgComparison = map[string]ast.Kind{
	"=": ast.EQ, "<>": ast.NEQ, "!=": ast.NEQ,
	">": ast.GT, ">=": ast.GTE, "<": ast.LT, "<=": ast.LTE,
	"~~": ast.Like,
}

func (c *converter) expr(n *pgquery.Node) (ast.NodeID, error) {
	switch {
	case n.GetColumnRef() != nil:
		return c.columnRef(n.GetColumnRef())
	case n.GetAConst() != nil:
		return c.aConst(n.GetAConst())
	case n.GetAExpr() != nil:
		return c.aExpr(n.GetAExpr())
	case n.GetBoolExpr() != nil:
		return c.boolExpr(n.GetBoolExpr())
	case n.GetFuncCall() != nil:
		return c.funcCall(n.GetFuncCall())
	default:
		return c.unsupported(fmt.Sprintf("expression %T", n.Node))
	}
}

func (c *converter) columnRef(cr *pgquery.ColumnRef) (ast.NodeID, error) {
	var names []string
	for _, f := range cr.Fields {
		if s := f.GetString_(); s != nil {
			names = append(names, s.Sval)
		} else if f.GetAStar() != nil {
			names = append(names, "*")
		}
	}
	if len(names) == 0 {
		return c.unsupported("column reference")
	}
	col := names[len(names)-1]
	var thisArg ast.Arg
	if col == "*" {
		id, err := c.tree.NewNode(ast.Star, nil)
		if err != nil {
			return ast.NilID, err
		}
		thisArg = ast.NodeArg(id)
	} else {
		id, err := c.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(col)})
		if err != nil {
			return ast.NilID, err
		}
		thisArg = ast.NodeArg(id)
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: thisArg}
	if len(names) > 1 {
		tableID, err := c.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(names[len(names)-2])})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotTable] = ast.NodeArg(tableID)
	}
	return c.tree.NewNode(ast.Column, args)
}

func (c *converter) aConst(ac *pgquery.A_Const) (ast.NodeID, error) {
	switch {
	case ac.GetIval() != nil:
		return c.tree.NewLiteralNumber(fmt.Sprintf("%d", ac.GetIval().Ival)), nil
	case ac.GetFval() != nil:
		return c.tree.NewLiteralNumber(ac.GetFval().Fval), nil
	case ac.GetSval() != nil:
		return c.tree.NewLiteralString(ac.GetSval().Sval), nil
	case ac.GetBoolval() != nil:
		return c.tree.NewNode(ast.Boolean, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.BoolArg(ac.GetBoolval().Boolval)})
	default:
		return c.tree.NewNode(ast.Null, nil)
	}
}

func (c *converter) aExpr(ae *pgquery.A_Expr) (ast.NodeID, error) {
	left, err := c.expr(ae.Lexpr)
	if err != nil {
		return ast.NilID, err
	}
	right, err := c.expr(ae.Rexpr)
	if err != nil {
		return ast.NilID, err
	}
	opName := ""
	if len(ae.Name) > 0 {
		if s := ae.Name[0].GetString_(); s != nil {
			opName = s.Sval
		}
	}
	kind, ok := pgComparison[opName]
	if !ok {
		return c.unsupported("operator " + opName)
	}
	return c.tree.NewNode(kind, map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(left), ast.SlotExpression: ast.NodeArg(right),
	})
}

func (c *converter) boolExpr(be *pgquery.BoolExpr) (ast.NodeID, error) {
	if len(be.Args) == 0 {
		return c.unsupported("empty boolean expression")
	}
	if be.Boolop == pgquery.BoolExprType_NOT_EXPR {
		inner, err := c.expr(be.Args[0])
		if err != nil {
			return ast.NilID, err
		}
		return c.tree.NewNode(ast.Not, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(inner)})
	}

	kind := ast.And
	if be.Boolop == pgquery.BoolExprType_OR_EXPR {
		kind = ast.Or
	}
	acc, err := c.expr(be.Args[0])
	if err != nil {
		return ast.NilID, err
	}
	for _, a := range be.Args[1:] {
		next, err := c.expr(a)
		if err != nil {
			return ast.NilID, err
		}
		acc, err = c.tree.NewNode(kind, map[ast.SlotID]ast.Arg{
			ast.SlotThis: ast.NodeArg(acc), ast.SlotExpression: ast.NodeArg(next),
		})
		if err != nil {
			return ast.NilID, err
		}
	}
	return acc, nil
}

func (c *converter) funcCall(fc *pgquery.FuncCall) (ast.NodeID, error) {
	name := ""
	if len(fc.Funcname) > 0 {
		if s := fc.Funcname[len(fc.Funcname)-1].GetString_(); s != nil {
			name = s.Sval
		}
	}
	var argIDs []ast.NodeID
	for _, a := range fc.Args {
		id, err := c.expr(a)
		if err != nil {
			return ast.NilID, err
		}
		argIDs = append(argIDs, id)
	}
	return c.tree.NewNode(ast.Anonymous, map[ast.SlotID]ast.Arg{
		ast.SlotThis:        ast.StringArg(name),
		ast.SlotExpressions: ast.ListArg(argIDs...),
	})
}

func (c *converter) insertStmt(s *pgquery.InsertStmt) (ast.NodeID, error) {
	return c.unsupported("INSERT ingestion")
}

func (c *converter) updateStmt(s *pgquery.UpdateStmt) (ast.NodeID, error) {
	return c.unsupported("UPDATE ingestion")
}

func (c *converter) deleteStmt(s *pgquery.DeleteStmt) (ast.NodeID, error) {
	return c.unsupported("DELETE ingestion")
}
