package ast

// Dump and Load serialize a subtree to and from a JSON-shaped value:
//
//	[kind_tag, {slot_name: value, ...}, comments|nil, meta|nil, type_dump|nil]
//
// where a slot value is itself a dumped node, a list of dumped nodes, or a
// scalar, recursively. This is C10's wire format; Load(Dump(n)) must be
// Equal to n and share its Hash.
func Dump(t *Tree, id NodeID) any {
	n := t.node(id)
	slots := make(map[string]any, len(n.Args))
	for slot, v := range n.Args {
		if v.isEmpty() && v.Kind != ArgList {
			continue
		}
		slots[SlotName(slot)] = dumpArg(t, v)
	}

	out := []any{n.Kind.Tag(), slots}

	var comments any
	if len(n.Comments) > 0 {
		comments = append([]string{}, n.Comments...)
	}
	out = append(out, comments)

	var meta any
	if len(n.Meta) > 0 {
		m := make(map[string]any, len(n.Meta))
		for k, v := range n.Meta {
			m[k] = v
		}
		meta = m
	}
	out = append(out, meta)

	var typeDump any
	if n.TypeID != NilID {
		typeDump = Dump(t, n.TypeID)
	}
	out = append(out, typeDump)

	return out
}

func dumpArg(t *Tree, v Arg) any {
	switch v.Kind {
	case ArgNode:
		if v.Node == NilID {
			return nil
		}
		return Dump(t, v.Node)
	case ArgList:
		list := make([]any, len(v.List))
		for i, c := range v.List {
			list[i] = Dump(t, c)
		}
		return list
	case ArgString:
		return v.Str
	case ArgInt:
		return v.Int
	case ArgBool:
		return v.Bool
	case ArgFloat:
		return v.Float
	default:
		return nil
	}
}

// Load rebuilds a subtree from a value previously produced by Dump,
// returning the fresh Tree it allocated the subtree into and the root's
// NodeID within it. Returns *UnknownKindError if a kind tag isn't
// registered.
func Load(value any) (*Tree, NodeID, error) {
	t := NewTree()
	id, err := loadInto(t, value)
	if err != nil {
		return nil, NilID, err
	}
	return t, id, nil
}

func loadInto(t *Tree, value any) (NodeID, error) {
	if value == nil {
		return NilID, nil
	}
	arr, ok := value.([]any)
	if !ok || len(arr) != 5 {
		return NilID, &InvalidNodeError{Message: "malformed dumped node"}
	}

	tag, _ := arr[0].(string)
	kind, ok := LookupByTag(tag)
	if !ok {
		return NilID, &UnknownKindError{Tag: tag}
	}

	slotVals, _ := arr[1].(map[string]any)
	args := make(map[SlotID]Arg, len(slotVals))
	for name, raw := range slotVals {
		slot, ok := lookupSlot(name)
		if !ok {
			return NilID, &UnknownSlotError{Name: name}
		}
		a, err := loadArg(t, raw)
		if err != nil {
			return NilID, err
		}
		args[slot] = a
	}

	id, err := t.NewNode(kind, args)
	if err != nil {
		return NilID, err
	}

	if comments, ok := arr[2].([]string); ok {
		t.node(id).Comments = comments
	} else if commentsAny, ok := arr[2].([]any); ok {
		cs := make([]string, 0, len(commentsAny))
		for _, c := range commentsAny {
			if s, ok := c.(string); ok {
				cs = append(cs, s)
			}
		}
		t.node(id).Comments = cs
	}

	if meta, ok := arr[3].(map[string]any); ok && len(meta) > 0 {
		m := make(map[string]any, len(meta))
		for k, v := range meta {
			m[k] = v
		}
		t.node(id).Meta = m
	}

	if arr[4] != nil {
		typeID, err := loadInto(t, arr[4])
		if err != nil {
			return NilID, err
		}
		t.node(id).TypeID = typeID
	}

	return id, nil
}

func loadArg(t *Tree, raw any) (Arg, error) {
	switch v := raw.(type) {
	case nil:
		return Arg{}, nil
	case string:
		return StringArg(v), nil
	case bool:
		return BoolArg(v), nil
	case int64:
		return IntArg(v), nil
	case int:
		return IntArg(int64(v)), nil
	case float64:
		return FloatArg(v), nil
	case []any:
		if isDumpedNode(v) {
			id, err := loadInto(t, v)
			if err != nil {
				return Arg{}, err
			}
			return NodeArg(id), nil
		}
		ids := make([]NodeID, len(v))
		for i, elem := range v {
			id, err := loadInto(t, elem)
			if err != nil {
				return Arg{}, err
			}
			ids[i] = id
		}
		return ListArg(ids...), nil
	default:
		return Arg{}, &InvalidNodeError{Message: "unrecognized argument shape"}
	}
}

// isDumpedNode distinguishes a single dumped-node tuple
// [tag, slots, comments, meta, type] from a list of such tuples: only the
// former has a string tag in position 0 and a slot map in position 1.
func isDumpedNode(v []any) bool {
	if len(v) != 5 {
		return false
	}
	if _, ok := v[0].(string); !ok {
		return false
	}
	_, ok := v[1].(map[string]any)
	return ok
}
