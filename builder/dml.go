package builder

import "github.com/prismql/prismql/engine/ast"

// DML wraps an Insert/Update/Delete node under construction.
type DML struct {
	Tree   *ast.Tree
	Root   ast.NodeID
	Parse  ParseFunc
	lastFn error
}

func (d *DML) Err() error { return d.lastFn }

func (d *DML) fail(err error) *DML {
	if d.lastFn == nil {
		d.lastFn = err
	}
	return d
}

// Insert starts an INSERT INTO table (columns) VALUES (...) statement.
func Insert(tree *ast.Tree, parse ParseFunc, table string, columns []string) *DML {
	d := &DML{Tree: tree, Parse: parse}
	tableID, err := parse(tree, table)
	if err != nil {
		return d.fail(err)
	}
	args := map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(tableID)}
	if len(columns) > 0 {
		colIDs := make([]ast.NodeID, len(columns))
		for i, c := range columns {
			colIDs[i], err = parse(tree, c)
			if err != nil {
				return d.fail(err)
			}
		}
		args[ast.SlotColumns] = ast.ListArg(colIDs...)
	}
	root, err := tree.NewNode(ast.Insert, args)
	if err != nil {
		return d.fail(err)
	}
	d.Root = root
	return d
}

// Values attaches a VALUES clause built from rows of host values, each
// converted through ast.Convert (C8), mirroring the teacher's BuildInsertSQL
// / BuildBulkInsertSQL parameterization loop but producing Literal nodes
// instead of placeholder strings.
func (d *DML) Values(rows [][]any) *DML {
	if d.lastFn != nil {
		return d
	}
	tupleIDs := make([]ast.NodeID, len(rows))
	for i, row := range rows {
		cellIDs := make([]ast.NodeID, len(row))
		for j, v := range row {
			id, err := d.Tree.Convert(v)
			if err != nil {
				return d.fail(err)
			}
			cellIDs[j] = id
		}
		tupleID, err := d.Tree.NewNode(ast.Tuple, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(cellIDs...)})
		if err != nil {
			return d.fail(err)
		}
		tupleIDs[i] = tupleID
	}
	valuesID, err := d.Tree.NewNode(ast.Values, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(tupleIDs...)})
	if err != nil {
		return d.fail(err)
	}
	one := ast.NodeArg(valuesID)
	d.Tree.Set(d.Root, ast.SlotExpression, &one, nil, false)
	return d
}

// Update starts an UPDATE table statement.
func Update(tree *ast.Tree, parse ParseFunc, table string) *DML {
	d := &DML{Tree: tree, Parse: parse}
	tableID, err := parse(tree, table)
	if err != nil {
		return d.fail(err)
	}
	root, err := tree.NewNode(ast.Update, map[ast.SlotID]ast.Arg{
		ast.SlotThis:        ast.NodeArg(tableID),
		ast.SlotExpressions: ast.ListArg(),
	})
	if err != nil {
		return d.fail(err)
	}
	d.Root = root
	return d
}

// Set appends a column = expression assignment to an UPDATE.
func (d *DML) Set(column, expr string) *DML {
	if d.lastFn != nil {
		return d
	}
	colID, err := d.Parse(d.Tree, column)
	if err != nil {
		return d.fail(err)
	}
	exprID, err := d.Parse(d.Tree, expr)
	if err != nil {
		return d.fail(err)
	}
	item, err := d.Tree.NewNode(ast.SetItem, map[ast.SlotID]ast.Arg{
		ast.SlotThis:       ast.NodeArg(colID),
		ast.SlotExpression: ast.NodeArg(exprID),
	})
	if err != nil {
		return d.fail(err)
	}
	d.Tree.Append(d.Root, ast.SlotExpressions, item)
	return d
}

// Delete starts a DELETE FROM table statement.
func Delete(tree *ast.Tree, parse ParseFunc, table string) *DML {
	d := &DML{Tree: tree, Parse: parse}
	tableID, err := parse(tree, table)
	if err != nil {
		return d.fail(err)
	}
	root, err := tree.NewNode(ast.Delete, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(tableID)})
	if err != nil {
		return d.fail(err)
	}
	d.Root = root
	return d
}

// Where attaches a WHERE predicate to an UPDATE or DELETE.
func (d *DML) Where(condition string) *DML {
	if d.lastFn != nil {
		return d
	}
	id, err := d.Parse(d.Tree, condition)
	if err != nil {
		return d.fail(err)
	}
	whereID, err := d.Tree.NewNode(ast.Where, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(id)})
	if err != nil {
		return d.fail(err)
	}
	one := ast.NodeArg(whereID)
	d.Tree.Set(d.Root, ast.SlotWhere, &one, nil, false)
	return d
}

// Returning attaches a RETURNING clause.
func (d *DML) Returning(columns ...string) *DML {
	if d.lastFn != nil {
		return d
	}
	ids := make([]ast.NodeID, len(columns))
	for i, c := range columns {
		id, err := d.Parse(d.Tree, c)
		if err != nil {
			return d.fail(err)
		}
		ids[i] = id
	}
	retID, err := d.Tree.NewNode(ast.Returning, map[ast.SlotID]ast.Arg{ast.SlotExpressions: ast.ListArg(ids...)})
	if err != nil {
		return d.fail(err)
	}
	one := ast.NodeArg(retID)
	d.Tree.Set(d.Root, ast.SlotReturning, &one, nil, false)
	return d
}
