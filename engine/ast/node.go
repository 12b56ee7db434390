package ast

import "fmt"

// NodeID is an index into a Tree's arena. The arena/index representation
// (rather than a pointer graph) is what makes invariants 2 and 3 — no
// self-reachable cycles, at most one owning slot per node — mechanically
// checkable: each Node records a single Parent/ArgKey/Index, and a Tree's
// arena never frees slots out from under a live reference. NewNode and Set
// re-point a child's parent link but do not remove the child from a slot
// it already occupies elsewhere.
type NodeID int32

// NilID marks an absent child reference.
const NilID NodeID = -1

// ArgKind tags the payload carried by an Arg.
type ArgKind uint8

const (
	ArgAbsent ArgKind = iota
	ArgNode
	ArgList
	ArgString
	ArgInt
	ArgBool
	ArgFloat
)

// Arg is a slot value: a child Node, an ordered sequence of child Nodes,
// or one of a handful of scalar kinds. At most one of the typed fields is
// meaningful, selected by Kind.
type Arg struct {
	Kind  ArgKind
	Node  NodeID
	List  []NodeID
	Str   string
	Int   int64
	Bool  bool
	Float float64
}

// NodeArg wraps a child Node reference as an Arg.
func NodeArg(id NodeID) Arg { return Arg{Kind: ArgNode, Node: id} }

// ListArg wraps an ordered sequence of child Nodes as an Arg.
func ListArg(ids ...NodeID) Arg { return Arg{Kind: ArgList, List: ids} }

// StringArg wraps a scalar string as an Arg.
func StringArg(s string) Arg { return Arg{Kind: ArgString, Str: s} }

// IntArg wraps a scalar integer as an Arg.
func IntArg(i int64) Arg { return Arg{Kind: ArgInt, Int: i} }

// BoolArg wraps a scalar boolean as an Arg.
func BoolArg(b bool) Arg { return Arg{Kind: ArgBool, Bool: b} }

// FloatArg wraps a scalar float as an Arg.
func FloatArg(f float64) Arg { return Arg{Kind: ArgFloat, Float: f} }

// isEmpty reports whether a is the absent sentinel, a false bool, or an
// empty list — the set of values invariant-4.4 treats as equal to absent.
func (a Arg) isEmpty() bool {
	switch a.Kind {
	case ArgAbsent:
		return true
	case ArgBool:
		return !a.Bool
	case ArgList:
		return len(a.List) == 0
	default:
		return false
	}
}

// Node is a single AST vertex: a kind tag, an ordered argument map, a
// parent back-link, comments, an optional type annotation, and free-form
// metadata (C2). The zero Node is not valid; use Tree.NewNode.
type Node struct {
	Kind      Kind
	Args      map[SlotID]Arg
	Parent    NodeID
	ArgKey    SlotID
	HasArgKey bool
	Index     int // -1 when not inside a list slot
	Comments  []string
	TypeID    NodeID // NilID when absent; when set, refers to a DataType node
	Meta      map[string]any
	hashCache *uint64
}

// Tree is an arena of Nodes. Every cross-node reference inside a Tree is a
// NodeID, never a pointer, so a Tree can be copied, walked, and mutated
// without ever risking aliasing across trees.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) node(id NodeID) *Node {
	return &t.nodes[id]
}

// Valid reports whether id refers to a live node in t.
func (t *Tree) Valid(id NodeID) bool {
	return id != NilID && int(id) >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) schemaOf(id NodeID) KindSchema {
	return Schema(t.node(id).Kind)
}

// KindOf returns the kind tag of id.
func (t *Tree) KindOf(id NodeID) Kind { return t.node(id).Kind }

// NewNode allocates a Node of the given kind with the supplied slot
// values, wires parent back-links into every child Arg, and returns its
// NodeID (C2 creation contract). It fails with InvalidNode when
// StrictMode is enabled and an unknown slot name is supplied; the
// required-slot check only runs when the caller later calls Validate
// (matching the source's "errors bubble to callers that validate").
func (t *Tree) NewNode(kind Kind, args map[SlotID]Arg) (NodeID, error) {
	if !kind.Valid() {
		return NilID, &InvalidNodeError{Message: fmt.Sprintf("unknown kind %d", kind)}
	}
	if StrictMode() {
		schema := Schema(kind)
		allowed := make(map[SlotID]bool, len(schema.Slots))
		for _, s := range schema.Slots {
			allowed[s.Slot] = true
		}
		for k := range args {
			if !allowed[k] {
				return NilID, &InvalidNodeError{
					Message: fmt.Sprintf("unexpected slot %q for kind %s", SlotName(k), kind.Tag()),
				}
			}
		}
	}

	if args == nil {
		args = map[SlotID]Arg{}
	} else {
		cp := make(map[SlotID]Arg, len(args))
		for k, v := range args {
			cp[k] = v
		}
		args = cp
	}

	if Schema(kind).Facets.Has(FacetTimeUnit) {
		if unit, ok := args[SlotUnit]; ok && unit.Kind == ArgString {
			args[SlotUnit] = StringArg(NormalizeTimeUnit(unit.Str))
		}
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:   kind,
		Args:   args,
		Parent: NilID,
		Index:  -1,
		TypeID: NilID,
	})

	for slot, val := range args {
		t.setParent(id, slot, val)
	}
	return id, nil
}

func (t *Tree) setParent(owner NodeID, slot SlotID, val Arg) {
	switch val.Kind {
	case ArgNode:
		if val.Node != NilID {
			c := t.node(val.Node)
			c.Parent = owner
			c.ArgKey = slot
			c.HasArgKey = true
			c.Index = -1
		}
	case ArgList:
		for i, child := range val.List {
			if child == NilID {
				continue
			}
			c := t.node(child)
			c.Parent = owner
			c.ArgKey = slot
			c.HasArgKey = true
			c.Index = i
		}
	}
}

// Validate checks invariant 7 (required slots populated) and, in
// StrictMode, the closed-slot-schema check already enforced at
// construction time. It returns the full list of problems rather than
// failing fast, mirroring the source's error_messages.
func (t *Tree) Validate(id NodeID) []error {
	n := t.node(id)
	schema := Schema(n.Kind)
	var errs []error
	for _, s := range schema.Slots {
		if !s.Required {
			continue
		}
		v, ok := n.Args[s.Slot]
		if !ok || v.isEmpty() {
			errs = append(errs, &InvalidNodeError{
				Message: fmt.Sprintf("required slot %q missing for kind %s", SlotName(s.Slot), n.Kind.Tag()),
			})
		}
	}
	if StrictMode() {
		allowed := make(map[SlotID]bool, len(schema.Slots))
		for _, s := range schema.Slots {
			allowed[s.Slot] = true
		}
		for k := range n.Args {
			if !allowed[k] {
				errs = append(errs, &InvalidNodeError{
					Message: fmt.Sprintf("unexpected slot %q for kind %s", SlotName(k), n.Kind.Tag()),
				})
			}
		}
	}
	return errs
}

// Get returns the raw Arg stored under slot, or the absent sentinel.
func (t *Tree) Get(id NodeID, slot SlotID) Arg {
	if v, ok := t.node(id).Args[slot]; ok {
		return v
	}
	return Arg{}
}

// This returns slot "this" as a NodeID, or NilID if absent or not a node.
func (t *Tree) This(id NodeID) NodeID {
	a := t.Get(id, SlotThis)
	if a.Kind != ArgNode {
		return NilID
	}
	return a.Node
}

// Expression returns slot "expression" as a NodeID, or NilID.
func (t *Tree) Expression(id NodeID) NodeID {
	a := t.Get(id, SlotExpression)
	if a.Kind != ArgNode {
		return NilID
	}
	return a.Node
}

// Expressions returns slot "expressions" as a node list, defaulting to empty.
func (t *Tree) Expressions(id NodeID) []NodeID {
	a := t.Get(id, SlotExpressions)
	if a.Kind != ArgList {
		return nil
	}
	return a.List
}

// Text extracts the string payload of a leaf-kind slot value (Identifier,
// Literal, Var, Null, Star) or empty string otherwise.
func (t *Tree) Text(id NodeID, slot SlotID) string {
	a := t.Get(id, slot)
	switch a.Kind {
	case ArgString:
		return a.Str
	case ArgNode:
		if a.Node == NilID {
			return ""
		}
		child := t.node(a.Node)
		switch child.Kind {
		case Identifier, Literal, Var:
			if this, ok := child.Args[SlotThis]; ok && this.Kind == ArgString {
				return this.Str
			}
		case Star, Null:
			return ""
		}
	}
	return ""
}

// IsString reports whether id is a string Literal.
func (t *Tree) IsString(id NodeID) bool {
	n := t.node(id)
	if n.Kind != Literal {
		return false
	}
	v := n.Args[SlotIsString]
	return v.Kind == ArgBool && v.Bool
}

// IsNumber reports whether id is a numeric Literal or a Neg of one.
func (t *Tree) IsNumber(id NodeID) bool {
	n := t.node(id)
	if n.Kind == Literal {
		v := n.Args[SlotIsString]
		return !(v.Kind == ArgBool && v.Bool)
	}
	if n.Kind == Neg {
		return t.IsNumber(t.This(id))
	}
	return false
}

// IsInt reports whether id is an integer-valued numeric literal.
func (t *Tree) IsInt(id NodeID) bool {
	if !t.IsNumber(id) {
		return false
	}
	text := t.numberText(id)
	for _, r := range text {
		if r == '.' || r == 'e' || r == 'E' {
			return false
		}
	}
	return text != ""
}

func (t *Tree) numberText(id NodeID) string {
	n := t.node(id)
	if n.Kind == Neg {
		return t.numberText(t.This(id))
	}
	if v, ok := n.Args[SlotThis]; ok && v.Kind == ArgString {
		return v.Str
	}
	return ""
}

// IsStar reports whether id is a Star, or a Column wrapping one.
func (t *Tree) IsStar(id NodeID) bool {
	n := t.node(id)
	if n.Kind == Star {
		return true
	}
	if n.Kind == Column {
		this := t.This(id)
		return this != NilID && t.node(this).Kind == Star
	}
	return false
}

// IsLeaf reports whether id has no Node or non-empty list children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.node(id)
	for _, v := range n.Args {
		if v.Kind == ArgNode && v.Node != NilID {
			return false
		}
		if v.Kind == ArgList && len(v.List) > 0 {
			return false
		}
	}
	return true
}

// Name returns Text(id, "this").
func (t *Tree) Name(id NodeID) string { return t.Text(id, SlotThis) }

// Alias returns the alias of id, or "" if unaliased.
func (t *Tree) Alias(id NodeID) string {
	a := t.Get(id, SlotAlias)
	if a.Kind == ArgNode && a.Node != NilID && t.node(a.Node).Kind == TableAlias {
		return t.Text(a.Node, SlotThis)
	}
	return t.Text(id, SlotAlias)
}

// AliasOrName returns Alias(id) if non-empty, else Name(id).
func (t *Tree) AliasOrName(id NodeID) string {
	if a := t.Alias(id); a != "" {
		return a
	}
	return t.Name(id)
}

// OutputName returns the name of the output column if id is a selection,
// or "" otherwise. Select-list items carry their own output naming rule,
// expressed via the Alias kind and via Column identifiers.
func (t *Tree) OutputName(id NodeID) string {
	n := t.node(id)
	switch n.Kind {
	case Alias:
		return t.Alias(id)
	case Column:
		return t.Name(id)
	default:
		return ""
	}
}
