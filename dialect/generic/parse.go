// Package generic parses the small expression fragments the builder DSL's
// string shorthand accepts — column references, table names, literals, and
// simple binary comparisons — without committing to any dialect's full
// grammar. Full statement parsing belongs to a dialect package backed by a
// real SQL front end (dialect/postgres, dialect/mysql); this is the
// fallback for dialects the pack carries no parser for, grounded on the
// teacher's hand-rolled tokenizer (engine/lexer/lexer.go).
package generic

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/prismql/prismql/engine/ast"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokStar
	tokDot
	tokLParen
	tokRParen
	tokComma
	tokOp
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) []token {
	var toks []token
	r := []rune(s)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '*':
			toks = append(toks, token{tokStar, "*"})
			i++
		case c == '.':
			toks = append(toks, token{tokDot, "."})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '\'':
			j := i + 1
			for j < len(r) && r[j] != '\'' {
				j++
			}
			toks = append(toks, token{tokString, string(r[i+1 : j])})
			i = j + 1
		case c == '=' || c == '<' || c == '>' || c == '!':
			j := i + 1
			for j < len(r) && (r[j] == '=' || r[j] == '<' || r[j] == '>') {
				j++
			}
			toks = append(toks, token{tokOp, string(r[i:j])})
			i = j
		case unicode.IsDigit(c) || (c == '-' && i+1 < len(r) && unicode.IsDigit(r[i+1])):
			j := i + 1
			for j < len(r) && (unicode.IsDigit(r[j]) || r[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(r[i:j])})
			i = j
		case unicode.IsLetter(c) || c == '_' || c == '"':
			quoted := c == '"'
			j := i + 1
			if quoted {
				for j < len(r) && r[j] != '"' {
					j++
				}
				toks = append(toks, token{tokIdent, string(r[i+1 : j])})
				i = j + 1
			} else {
				for j < len(r) && (unicode.IsLetter(r[j]) || unicode.IsDigit(r[j]) || r[j] == '_') {
					j++
				}
				word := string(r[i:j])
				switch strings.ToUpper(word) {
				case "AND", "OR", "NOT", "LIKE", "IS", "IN", "BETWEEN":
					toks = append(toks, token{tokOp, strings.ToUpper(word)})
				default:
					toks = append(toks, token{tokIdent, word})
				}
				i = j
			}
		default:
			i++
		}
	}
	toks = append(toks, token{tokEOF, ""})
	return toks
}

type parser struct {
	toks []token
	pos  int
	tree *ast.Tree
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// Parse implements builder.ParseFunc for the generic fallback dialect: a
// dotted identifier chain, a function call, a literal, or a left OP right
// comparison joined by AND/OR.
func Parse(tree *ast.Tree, sql string) (ast.NodeID, error) {
	p := &parser{toks: tokenize(sql), tree: tree}
	id, err := p.parseOr()
	if err != nil {
		return ast.NilID, err
	}
	return id, nil
}

func (p *parser) parseOr() (ast.NodeID, error) {
	left, err := p.parseAnd()
	if err != nil {
		return ast.NilID, err
	}
	for p.peek().kind == tokOp && p.peek().text == "OR" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return ast.NilID, err
		}
		left, err = p.tree.NewNode(ast.Or, map[ast.SlotID]ast.Arg{
			ast.SlotThis: ast.NodeArg(left), ast.SlotExpression: ast.NodeArg(right),
		})
		if err != nil {
			return ast.NilID, err
		}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.NodeID, error) {
	left, err := p.parseComparison()
	if err != nil {
		return ast.NilID, err
	}
	for p.peek().kind == tokOp && p.peek().text == "AND" {
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return ast.NilID, err
		}
		left, err = p.tree.NewNode(ast.And, map[ast.SlotID]ast.Arg{
			ast.SlotThis: ast.NodeArg(left), ast.SlotExpression: ast.NodeArg(right),
		})
		if err != nil {
			return ast.NilID, err
		}
	}
	return left, nil
}

var comparisonKinds = map[string]ast.Kind{
	"=": ast.EQ, "!=": ast.NEQ, "<>": ast.NEQ,
	">": ast.GT, ">=": ast.GTE, "<": ast.LT, "<=": ast.LTE,
	"LIKE": ast.Like,
}

func (p *parser) parseComparison() (ast.NodeID, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return ast.NilID, err
	}
	if p.peek().kind == tokOp {
		if kind, ok := comparisonKinds[p.peek().text]; ok {
			p.next()
			right, err := p.parsePrimary()
			if err != nil {
				return ast.NilID, err
			}
			return p.tree.NewNode(kind, map[ast.SlotID]ast.Arg{
				ast.SlotThis: ast.NodeArg(left), ast.SlotExpression: ast.NodeArg(right),
			})
		}
	}
	return left, nil
}

func (p *parser) parsePrimary() (ast.NodeID, error) {
	t := p.next()
	switch t.kind {
	case tokStar:
		return p.tree.NewNode(ast.Star, nil)
	case tokNumber:
		return p.tree.NewLiteralNumber(t.text), nil
	case tokString:
		return p.tree.NewLiteralString(t.text), nil
	case tokIdent:
		name := t.text
		if strings.EqualFold(name, "NULL") {
			return p.tree.NewNode(ast.Null, nil)
		}
		if strings.EqualFold(name, "TRUE") {
			id, _ := p.tree.NewNode(ast.Boolean, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.BoolArg(true)})
			return id, nil
		}
		if strings.EqualFold(name, "FALSE") {
			id, _ := p.tree.NewNode(ast.Boolean, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.BoolArg(false)})
			return id, nil
		}
		if p.peek().kind == tokLParen {
			return p.parseCall(name)
		}
		return p.parseDotted(name)
	case tokLParen:
		inner, err := p.parseOr()
		if err != nil {
			return ast.NilID, err
		}
		if p.peek().kind == tokRParen {
			p.next()
		}
		return p.tree.NewNode(ast.Paren, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(inner)})
	default:
		return ast.NilID, &ast.ParseFailureError{Message: "unexpected token " + t.text}
	}
}

func (p *parser) parseDotted(first string) (ast.NodeID, error) {
	parts := []string{first}
	for p.peek().kind == tokDot {
		p.next()
		if p.peek().kind != tokIdent && p.peek().kind != tokStar {
			break
		}
		if p.peek().kind == tokStar {
			p.next()
			parts = append(parts, "*")
			break
		}
		parts = append(parts, p.next().text)
	}

	if len(parts) == 1 {
		ident, err := p.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(parts[0])})
		if err != nil {
			return ast.NilID, err
		}
		return p.tree.NewNode(ast.Column, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.NodeArg(ident)})
	}

	colName := parts[len(parts)-1]
	var thisArg ast.Arg
	if colName == "*" {
		starID, _ := p.tree.NewNode(ast.Star, nil)
		thisArg = ast.NodeArg(starID)
	} else {
		identID, err := p.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(colName)})
		if err != nil {
			return ast.NilID, err
		}
		thisArg = ast.NodeArg(identID)
	}
	tableID, err := p.tree.NewNode(ast.Identifier, map[ast.SlotID]ast.Arg{ast.SlotThis: ast.StringArg(strings.Join(parts[:len(parts)-1], "."))})
	if err != nil {
		return ast.NilID, err
	}
	return p.tree.NewNode(ast.Column, map[ast.SlotID]ast.Arg{
		ast.SlotThis:  thisArg,
		ast.SlotTable: ast.NodeArg(tableID),
	})
}

func (p *parser) parseCall(name string) (ast.NodeID, error) {
	p.next() // consume '('
	var args []ast.NodeID
	for p.peek().kind != tokRParen && p.peek().kind != tokEOF {
		a, err := p.parseOr()
		if err != nil {
			return ast.NilID, err
		}
		args = append(args, a)
		if p.peek().kind == tokComma {
			p.next()
		}
	}
	if p.peek().kind == tokRParen {
		p.next()
	}
	return p.tree.NewNode(ast.Anonymous, map[ast.SlotID]ast.Arg{
		ast.SlotThis:        ast.StringArg(name),
		ast.SlotExpressions: ast.ListArg(args...),
	})
}

// ParseInt is a small helper for callers that already hold a numeric string
// and do not need to re-tokenize it.
func ParseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
