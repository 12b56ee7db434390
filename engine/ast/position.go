package ast

// Position meta keys, copied verbatim between a Token/Node and a derived
// Node's meta map (C11).
const (
	metaLine  = "line"
	metaCol   = "col"
	metaStart = "start"
	metaEnd   = "end"
)

func (t *Tree) meta(id NodeID) map[string]any {
	n := t.node(id)
	if n.Meta == nil {
		n.Meta = map[string]any{}
	}
	return n.Meta
}

// Meta returns the node's metadata map, creating it on first access.
func (t *Tree) Meta(id NodeID) map[string]any { return t.meta(id) }

// UpdatePositionsFromToken copies line/col/start/end from tok into id's meta.
func (t *Tree) UpdatePositionsFromToken(id NodeID, tok Token) {
	m := t.meta(id)
	m[metaLine] = tok.Line
	m[metaCol] = tok.Column
	m[metaStart] = tok.Position
	m[metaEnd] = tok.Position + len(tok.Value)
}

// UpdatePositionsFromNode copies line/col/start/end from src's meta into
// id's meta, the way builders and rewriters propagate position to a
// semantically-equivalent replacement node.
func (t *Tree) UpdatePositionsFromNode(id, src NodeID) {
	srcMeta := t.node(src).Meta
	if srcMeta == nil {
		return
	}
	m := t.meta(id)
	for _, k := range [...]string{metaLine, metaCol, metaStart, metaEnd} {
		if v, ok := srcMeta[k]; ok {
			m[k] = v
		}
	}
}

// UpdatePositions writes explicit field values into id's meta.
func (t *Tree) UpdatePositions(id NodeID, line, col, start, end int) {
	m := t.meta(id)
	m[metaLine] = line
	m[metaCol] = col
	m[metaStart] = start
	m[metaEnd] = end
}

// Position reads back the position fields stashed in a node's meta.
func (t *Tree) Position(id NodeID) Position {
	m := t.node(id).Meta
	get := func(k string) int {
		if v, ok := m[k]; ok {
			if i, ok := v.(int); ok {
				return i
			}
		}
		return 0
	}
	return Position{Line: get(metaLine), Col: get(metaCol), Start: get(metaStart), End: get(metaEnd)}
}
