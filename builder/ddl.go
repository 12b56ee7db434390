package builder

import (
	"strings"

	"github.com/prismql/prismql/engine/ast"
)

// DDL wraps a Tree plus the NodeID of the CreateTable node under
// construction, mirroring Query's and DML's chain-with-first-error shape.
type DDL struct {
	Tree   *ast.Tree
	Root   ast.NodeID
	lastFn error
}

// Err returns the first error raised by any chained call, if any.
func (d *DDL) Err() error { return d.lastFn }

func (d *DDL) fail(err error) *DDL {
	if d.lastFn == nil {
		d.lastFn = err
	}
	return d
}

// CreateTable starts a CREATE TABLE builder for table.
func CreateTable(tree *ast.Tree, table string) *DDL {
	d := &DDL{Tree: tree}
	tableID, err := tree.NewNode(ast.Table, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(table)})
	if err != nil {
		return d.fail(err)
	}
	root, err := tree.NewNode(ast.CreateTable, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(tableID)})
	if err != nil {
		return d.fail(err)
	}
	d.Root = root
	return d
}

// Column appends a column definition. universalType is one of the
// dialect-neutral type tags mapping.TypeMap translates (e.g. "AUTO",
// "STRING", "JSONB"); constraints are keywords such as "PRIMARY_KEY",
// "NOT_NULL", "UNIQUE", "DEFAULT", "CHECK".
func (d *DDL) Column(name, universalType string, constraints ...string) *DDL {
	if d.lastFn != nil {
		return d
	}
	nameID, err := d.Tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(name)})
	if err != nil {
		return d.fail(err)
	}
	typeID, err := d.Tree.NewNode(ast.DataType, map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.StringArg(strings.ToUpper(universalType)),
	})
	if err != nil {
		return d.fail(err)
	}

	var constraintIDs []ast.NodeID
	for _, c := range constraints {
		kind, ok := constraintKindFor(c)
		if !ok {
			return d.fail(&ast.InvalidNodeError{Message: "unknown column constraint " + c})
		}
		id, err := d.Tree.NewNode(kind, nil)
		if err != nil {
			return d.fail(err)
		}
		constraintIDs = append(constraintIDs, id)
	}

	args := map[ast.SlotID]ast.Arg{
		ast.SlotThis: ast.NodeArg(nameID),
		ast.SlotKind: ast.NodeArg(typeID),
	}
	if len(constraintIDs) > 0 {
		args[ast.SlotConstraints] = ast.ListArg(constraintIDs...)
	}
	colID, err := d.Tree.NewNode(ast.ColumnDef, args)
	if err != nil {
		return d.fail(err)
	}
	d.Tree.Append(d.Root, ast.SlotExpressions, colID)
	return d
}

func constraintKindFor(name string) (ast.Kind, bool) {
	switch strings.ToUpper(name) {
	case "PRIMARY_KEY", "PRIMARY KEY":
		return ast.PrimaryKeyColumnConstraint, true
	case "NOT_NULL", "NOT NULL":
		return ast.NotNullColumnConstraint, true
	case "UNIQUE":
		return ast.UniqueColumnConstraint, true
	case "DEFAULT":
		return ast.DefaultColumnConstraint, true
	case "CHECK":
		return ast.CheckColumnConstraint, true
	default:
		return ast.KindUnset, false
	}
}
