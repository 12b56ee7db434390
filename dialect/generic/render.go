package generic

import (
	"fmt"
	"strings"

	"github.com/prismql/prismql/engine/ast"
	"github.com/prismql/prismql/mapping"
)

// DialectName selects which dialect-keyed mapping.OperatorMap row Render
// consults for operator spelling (e.g. ILIKE on Postgres vs LIKE on MySQL).
type DialectName string

const (
	PostgreSQL DialectName = "PostgreSQL"
	MySQL      DialectName = "MySQL"
	SQLite     DialectName = "SQLite"
)

var kindOperator = map[ast.Kind]string{
	ast.EQ: "=", ast.NEQ: "!=", ast.GT: ">", ast.GTE: ">=",
	ast.LT: "<", ast.LTE: "<=", ast.Like: "LIKE", ast.ILike: "ILIKE",
}

// Render walks an ast.Tree node and produces SQL text for the given
// dialect, covering the SELECT/WHERE/comparison subset dialect/postgres
// and dialect/mysql ingest. Set operations (Union/Intersect/Except), which
// dialect/postgres can ingest, are not rendered and return an error. The
// validate package can re-parse the rendered text under a dialect's
// grammar.
func Render(t *ast.Tree, id ast.NodeID, dialect DialectName) (string, error) {
	var b strings.Builder
	if err := render(t, id, dialect, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func argNode(t *ast.Tree, id ast.NodeID, slot ast.SlotID) ast.NodeID {
	a := t.Get(id, slot)
	if a.Kind != ast.ArgNode {
		return ast.NilID
	}
	return a.Node
}

func argList(t *ast.Tree, id ast.NodeID, slot ast.SlotID) []ast.NodeID {
	a := t.Get(id, slot)
	if a.Kind != ast.ArgList {
		return nil
	}
	return a.List
}

func argBool(t *ast.Tree, id ast.NodeID, slot ast.SlotID) bool {
	a := t.Get(id, slot)
	return a.Kind == ast.ArgBool && a.Bool
}

func argString(t *ast.Tree, id ast.NodeID, slot ast.SlotID) string {
	a := t.Get(id, slot)
	if a.Kind == ast.ArgString {
		return a.Str
	}
	return ""
}

func render(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	if id == ast.NilID {
		return nil
	}
	kind := t.KindOf(id)
	switch kind {
	case ast.Select:
		return renderSelect(t, id, dialect, b)
	case ast.Star:
		b.WriteString("*")
		return nil
	case ast.Column:
		return renderColumn(t, id, dialect, b)
	case ast.Identifier:
		b.WriteString(t.Text(id, ast.SlotThis))
		return nil
	case ast.Table:
		return renderTable(t, id, dialect, b)
	case ast.TableAlias:
		b.WriteString(t.Text(id, ast.SlotThis))
		return nil
	case ast.Alias:
		if err := render(t, t.This(id), dialect, b); err != nil {
			return err
		}
		b.WriteString(" AS ")
		return render(t, argNode(t, id, ast.SlotAlias), dialect, b)
	case ast.Literal:
		return renderLiteral(t, id, b)
	case ast.Boolean:
		if argBool(t, id, ast.SlotThis) {
			b.WriteString("TRUE")
		} else {
			b.WriteString("FALSE")
		}
		return nil
	case ast.Null:
		b.WriteString("NULL")
		return nil
	case ast.Neg:
		b.WriteString("-")
		return render(t, t.This(id), dialect, b)
	case ast.Not:
		b.WriteString("NOT ")
		return render(t, t.This(id), dialect, b)
	case ast.Paren:
		b.WriteString("(")
		if err := render(t, t.This(id), dialect, b); err != nil {
			return err
		}
		b.WriteString(")")
		return nil
	case ast.And:
		return renderBinary(t, id, dialect, b, "AND")
	case ast.Or:
		return renderBinary(t, id, dialect, b, "OR")
	case ast.EQ, ast.NEQ, ast.GT, ast.GTE, ast.LT, ast.LTE, ast.Like, ast.ILike:
		op, err := operatorFor(kind, dialect)
		if err != nil {
			return err
		}
		return renderBinary(t, id, dialect, b, op)
	case ast.Anonymous:
		return renderAnonymous(t, id, dialect, b)
	case ast.CreateTable:
		return renderCreateTable(t, id, dialect, b)
	case ast.ColumnDef:
		return renderColumnDef(t, id, dialect, b)
	case ast.DataType:
		return renderDataType(t, id, dialect, b)
	default:
		return fmt.Errorf("generic render: unsupported kind %s", kind.Tag())
	}
}

func renderSelect(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	b.WriteString("SELECT ")
	if argBool(t, id, ast.SlotDistinct) {
		b.WriteString("DISTINCT ")
	}
	cols := t.Expressions(id)
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := render(t, c, dialect, b); err != nil {
			return err
		}
	}
	if from := argNode(t, id, ast.SlotFrom); from != ast.NilID {
		b.WriteString(" FROM ")
		tables := t.Expressions(from)
		for i, tb := range tables {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := render(t, tb, dialect, b); err != nil {
				return err
			}
		}
	}
	for _, j := range argList(t, id, ast.SlotJoins) {
		b.WriteString(" ")
		if err := renderJoin(t, j, dialect, b); err != nil {
			return err
		}
	}
	if where := argNode(t, id, ast.SlotWhere); where != ast.NilID {
		b.WriteString(" WHERE ")
		if err := render(t, t.This(where), dialect, b); err != nil {
			return err
		}
	}
	if limit := argNode(t, id, ast.SlotLimit); limit != ast.NilID {
		b.WriteString(" LIMIT ")
		if err := render(t, t.This(limit), dialect, b); err != nil {
			return err
		}
	}
	if offset := argNode(t, id, ast.SlotOffset); offset != ast.NilID {
		b.WriteString(" OFFSET ")
		if err := render(t, t.This(offset), dialect, b); err != nil {
			return err
		}
	}
	return nil
}

func renderJoin(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	switch argString(t, id, ast.SlotSide) {
	case "LEFT":
		b.WriteString("LEFT JOIN ")
	case "RIGHT":
		b.WriteString("RIGHT JOIN ")
	default:
		b.WriteString("JOIN ")
	}
	if err := render(t, t.This(id), dialect, b); err != nil {
		return err
	}
	if on := argNode(t, id, ast.SlotOn); on != ast.NilID {
		b.WriteString(" ON ")
		return render(t, on, dialect, b)
	}
	return nil
}

func renderTable(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	if db := argString(t, id, ast.SlotDB); db != "" {
		b.WriteString(db)
		b.WriteString(".")
	}
	b.WriteString(argString(t, id, ast.SlotThis))
	if alias := argNode(t, id, ast.SlotAlias); alias != ast.NilID {
		b.WriteString(" AS ")
		return render(t, alias, dialect, b)
	}
	return nil
}

func renderColumn(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	if table := argNode(t, id, ast.SlotTable); table != ast.NilID {
		if err := render(t, table, dialect, b); err != nil {
			return err
		}
		b.WriteString(".")
	}
	return render(t, t.This(id), dialect, b)
}

func renderLiteral(t *ast.Tree, id ast.NodeID, b *strings.Builder) error {
	if t.IsString(id) {
		b.WriteString("'")
		b.WriteString(strings.ReplaceAll(argString(t, id, ast.SlotThis), "'", "''"))
		b.WriteString("'")
		return nil
	}
	b.WriteString(argString(t, id, ast.SlotThis))
	return nil
}

func renderBinary(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder, op string) error {
	if err := render(t, t.This(id), dialect, b); err != nil {
		return err
	}
	b.WriteString(" ")
	b.WriteString(op)
	b.WriteString(" ")
	return render(t, t.Expression(id), dialect, b)
}

func renderAnonymous(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	b.WriteString(argString(t, id, ast.SlotThis))
	b.WriteString("(")
	args := t.Expressions(id)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := render(t, a, dialect, b); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

func renderCreateTable(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	b.WriteString("CREATE TABLE ")
	if err := render(t, t.This(id), dialect, b); err != nil {
		return err
	}
	b.WriteString(" (")
	cols := t.Expressions(id)
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := render(t, c, dialect, b); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

func renderColumnDef(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	if err := render(t, t.This(id), dialect, b); err != nil {
		return err
	}
	b.WriteString(" ")
	if err := render(t, argNode(t, id, ast.SlotKind), dialect, b); err != nil {
		return err
	}
	for _, c := range argList(t, id, ast.SlotConstraints) {
		b.WriteString(" ")
		b.WriteString(ast.Schema(t.KindOf(c)).SQLNames[0])
	}
	return nil
}

// renderDataType looks up the universal type name stored on the node
// against mapping.TypeMap for dialect, the same lookup the teacher's
// buildColumnDefinition does for Postgres DDL, generalized to every
// dialect this package renders.
func renderDataType(t *ast.Tree, id ast.NodeID, dialect DialectName, b *strings.Builder) error {
	universal := argString(t, id, ast.SlotThis)
	sqlType, ok := mapping.TypeMap[string(dialect)][universal]
	if !ok {
		sqlType = universal
	}
	b.WriteString(sqlType)
	return nil
}

func operatorFor(kind ast.Kind, dialect DialectName) (string, error) {
	op, ok := kindOperator[kind]
	if !ok {
		return "", fmt.Errorf("generic render: no operator text for %s", kind.Tag())
	}
	if mapped, ok := mapping.OperatorMap[string(dialect)][op]; ok {
		return mapped, nil
	}
	return op, nil
}
