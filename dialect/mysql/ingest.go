// Package mysql converts a parsed MySQL statement into an ast.Tree, using
// pingcap/tidb's parser (a real MySQL-compatible grammar) to do the
// tokenizing and grammar work this library's Non-goals keep out of the
// AST core. This package only maps tidb's parse tree onto the node-kind
// registry, for the same bounded SELECT subset dialect/postgres handles.
package mysql

import (
	"fmt"

	"github.com/pingcap/tidb/parser"
	tiast "github.com/pingcap/tidb/parser/ast"
	"github.com/pingcap/tidb/parser/opcode"
	"github.com/pingcap/tidb/parser/test_driver"
	"go.uber.org/zap"

	"github.com/prismql/prismql/engine/ast"
	"github.com/prismql/prismql/telemetry"
)

// Ingest parses a single MySQL SQL statement and converts it to an
// ast.Tree, returning the root node.
func Ingest(sql string) (*ast.Tree, ast.NodeID, error) {
	p := parser.New()
	stmtNodes, _, err := p.Parse(sql, "", "")
	if err != nil {
		telemetry.Warn("mysql ingest failed", zap.Error(err))
		return nil, ast.NilID, ast.NewParseFailure(ast.Token{Value: sql}, err.Error())
	}
	if len(stmtNodes) == 0 {
		return nil, ast.NilID, &ast.ParseFailureError{Message: "empty statement"}
	}

	t := ast.NewTree()
	c := &converter{tree: t}
	root, cerr := c.statement(stmtNodes[0])
	if cerr != nil {
		return nil, ast.NilID, cerr
	}
	telemetry.Debug("mysql ingest ok", zap.Int32("root", int32(root)))
	return t, root, nil
}

type converter struct {
	tree *ast.Tree
}

func (c *converter) unsupported(what string) (ast.NodeID, error) {
	return ast.NilID, &ast.ParseFailureError{Message: "mysql: unsupported " + what}
}

func (c *converter) statement(n tiast.StmtNode) (ast.NodeID, error) {
	switch s := n.(type) {
	case *tiast.SelectStmt:
		return c.selectStmt(s)
	default:
		return c.unsupported(fmt.Sprintf("statement %T", s))
	}
}

func (c *converter) selectStmt(s *tiast.SelectStmt) (ast.NodeID, error) {
	var selected []ast.NodeID
	if s.Fields != nil {
		for _, field := range s.Fields.Fields {
			id, err := c.selectField(field)
			if err != nil {
				return ast.NilID, err
			}
			selected = append(selected, id)
		}
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
		ast.SlotDistinct:    ast.BoolArg(s.Distinct),
	}

	if s.From != nil && s.From.TableRefs != nil {
		fromID, joins, err := c.tableRefs(s.From.TableRefs)
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotFrom] = ast.NodeArg(fromID)
		if len(joins) > 0 {
			args[ast.SlotJoins] = ast.ListArg(joins...)
		}
	}

	if s.Where != nil {
		cond, err := c.expr(s.Where)
		if err != nil {
			return ast.NilID, err
		}
		whereID, err := c.tree.NewNode(ast.Where, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(cond)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotWhere] = ast.NodeArg(whereID)
	}

	if s.Limit != nil && s.Limit.Count != nil {
		lim, err := c.expr(s.Limit.Count)
		if err != nil {
			return ast.NilID, err
		}
		limitID, err := c.tree.NewNode(ast.Limit, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(lim)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotLimit] = ast.NodeArg(limitID)

		if s.Limit.Offset != nil {
			off, err := c.expr(s.Limit.Offset)
			if err != nil {
				return ast.NilID, err
			}
			offsetID, err := c.tree.NewNode(ast.Offset, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(off)})
			if err != nil {
				return ast.NilID, err
			}
			args[ast.SlotOffset] = ast.NodeArg(offsetID)
		}
	}

	return c.tree.NewNode(ast.Select, args)
}

func (c *converter) selectField(f *tiast.SelectField) (ast.NodeID, error) {
	if f.WildCard != nil {
		star, err := c.tree.NewNode(ast.Star, nil)
		if err != nil {
			return ast.NilID, err
		}
		if f.WildCard.Table.L == "" {
			return star, nil
		}
		tableID, err := c.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(f.WildCard.Table.O)})
		if err != nil {
			return ast.NilID, err
		}
		return c.tree.NewNode(ast.Column, map[ast.SlotID]ast.Arg{
			ast.SlotThis: ast.NodeArg(star), ast.SlotTable: ast.NodeArg(tableID),
		})
	}
	val, err := c.expr(f.Expr)
	if err != nil {
		return ast.NilID, err
	}
	if f.AsName.L == "" {
		return val, nil
	}
	aliasID, err := c.tree.NewNode(ast.TableAlias, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(f.AsName.O)})
	if err != nil {
		return ast.NilID, err
	}
	return c.tree.NewNode(ast.Alias, map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(val), ast.SlotAlias: ast.NodeArg(aliasID),
	})
}

// tableRefs returns the base FROM node and any joins hung off it; joins are
// gathered into a flat slice for Select's own Joins slot rather than nested,
// since the node-kind registry keeps Join as a sibling list, not a chain.
func (c *converter) tableRefs(n tiast.ResultSetNode) (ast.NodeID, []ast.NodeID, error) {
	switch t := n.(type) {
	case *tiast.TableSource:
		id, err := c.tableSource(t)
		return id, nil, err
	case *tiast.Join:
		if t.Right == nil {
			return c.tableRefs(t.Left)
		}
		fromID, joins, err := c.tableRefs(t.Left)
		if err != nil {
			return ast.NilID, nil, err
		}
		rightSrc, ok := t.Right.(*tiast.TableSource)
		if !ok {
			_, err := c.unsupported("non-table JOIN target")
			return ast.NilID, nil, err
		}
		rightID, err := c.tableSourceOnly(rightSrc)
		if err != nil {
			return ast.NilID, nil, err
		}
		args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(rightID)}
		if t.On != nil {
			cond, err := c.expr(t.On.Expr)
			if err != nil {
				return ast.NilID, nil, err
			}
			args[ast.SlotOn] = ast.NodeArg(cond)
		}
		switch t.Tp {
		case tiast.LeftJoin:
			args[ast.SlotSide] = ast.StringArg("LEFT")
		case tiast.RightJoin:
			args[ast.SlotSide] = ast.StringArg("RIGHT")
		}
		joinID, err := c.tree.NewNode(ast.Join, args)
		if err != nil {
			return ast.NilID, nil, err
		}
		return fromID, append(joins, joinID), nil
	default:
		_, err := c.unsupported(fmt.Sprintf("table reference %T", t))
		return ast.NilID, nil, err
	}
}

func (c *converter) tableSource(ts *tiast.TableSource) (ast.NodeID, error) {
	tableID, err := c.tableSourceOnly(ts)
	if err != nil {
		return ast.NilID, err
	}
	return c.tree.NewNode(ast.From, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(tableID)})
}

func (c *converter) tableSourceOnly(ts *tiast.TableSource) (ast.NodeID, error) {
	tn, ok := ts.Source.(*tiast.TableName)
	if !ok {
		return c.unsupported("non-table source")
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(tn.Name.O)}
	if tn.Schema.O != "" {
		args[ast.SlotDB] = ast.StringArg(tn.Schema.O)
	}
	if ts.AsName.O != "" {
		aliasID, err := c.tree.NewNode(ast.TableAlias, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(ts.AsName.O)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotAlias] = ast.NodeArg(aliasID)
	}
	return c.tree.NewNode(ast.Table, args)
}

var mysqlComparison = map[opcode.Op]ast.Kind{
	opcode.EQ: ast.EQ, opcode.NE: ast.NEQ,
	opcode.GT: ast.GT, opcode.GE: ast.GTE,
	opcode.LT: ast.LT, opcode.LE: ast.LTE,
	opcode.LogicAnd: ast.And, opcode.LogicOr: ast.Or,
}

func (c *converter) expr(n tiast.ExprNode) (ast.NodeID, error) {
	switch e := n.(type) {
	case *tiast.ColumnNameExpr:
		return c.columnName(e.Name)
	case *test_driver.ValueExpr:
		return c.valueExpr(e)
	case *tiast.BinaryOperationExpr:
		return c.binaryOp(e)
	case *tiast.ParenthesesExpr:
		inner, err := c.expr(e.Expr)
		if err != nil {
			return ast.NilID, err
		}
		return c.tree.NewNode(ast.Paren, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(inner)})
	case *tiast.FuncCallExpr:
		return c.funcCall(e)
	default:
		return c.unsupported(fmt.Sprintf("expression %T", e))
	}
}

func (c *converter) columnName(name *tiast.ColumnName) (ast.NodeID, error) {
	identID, err := c.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(name.Name.O)})
	if err != nil {
		return ast.NilID, err
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(identID)}
	if name.Table.O != "" {
		tableID, err := c.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(name.Table.O)})
		if err != nil {
			return ast.NilID, err
		}
		args[ast.SlotTable] = ast.NodeArg(tableID)
	}
	return c.tree.NewNode(ast.Column, args)
}

func (c *converter) valueExpr(v *test_driver.ValueExpr) (ast.NodeID, error) {
	d := v.Datum
	switch d.Kind() {
	case test_driver.KindNull:
		return c.tree.NewNode(ast.Null, nil)
	case test_driver.KindInt64:
		return c.tree.NewLiteralNumber(fmt.Sprintf("%d", d.GetInt64())), nil
	case test_driver.KindUint64:
		return c.tree.NewLiteralNumber(fmt.Sprintf("%d", d.GetUint64())), nil
	case test_driver.KindFloat64:
		return c.tree.NewLiteralNumber(fmt.Sprintf("%v", d.GetFloat64())), nil
	case test_driver.KindString:
		return c.tree.NewLiteralString(d.GetString()), nil
	case test_driver.KindBytes:
		return c.tree.NewLiteralString(string(d.GetBytes())), nil
	default:
		return c.tree.NewLiteralString(fmt.Sprintf("%v", d.GetValue())), nil
	}
}

func (c *converter) binaryOp(b *tiast.BinaryOperationExpr) (ast.NodeID, error) {
	left, err := c.expr(b.L)
	if err != nil {
		return ast.NilID, err
	}
	right, err := c.expr(b.R)
	if err != nil {
		return ast.NilID, err
	}
	kind, ok := mysqlComparison[b.Op]
	if !ok {
		return c.unsupported(fmt.Sprintf("operator %v", b.Op))
	}
	return c.tree.NewNode(kind, map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(left), ast.SlotExpression: ast.NodeArg(right),
	})
}

func (c *converter) funcCall(f *tiast.FuncCallExpr) (ast.NodeID, error) {
	var argIDs []ast.NodeID
	for _, a := range f.Args {
		id, err := c.expr(a)
		if err != nil {
			return ast.NilID, err
		}
		argIDs = append(argIDs, id)
	}
	return c.tree.NewNode(ast.Anonymous, map[ast.SlotID]ast.Arg{
		ast.SlotThis:        ast.StringArg(f.FnName.O),
		ast.SlotExpressions: ast.ListArg(argIDs...),
	})
}
