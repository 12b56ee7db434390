package ast

// Copy produces an independent deep copy of the subtree rooted at id,
// returning the new Tree and the copied root's id within it (C7). Uses an
// explicit work stack rather than recursion so arbitrarily deep trees
// don't blow the Go call stack.
func (t *Tree) Copy(id NodeID) (*Tree, NodeID) {
	dst := NewTree()
	mapped := make(map[NodeID]NodeID, 64)

	type frame struct {
		src NodeID
	}
	// Post-order via a two-pass marking stack: push src once to allocate
	// the shell with args already translated via the already-copied
	// children, since children are always allocated before their parent
	// is ever referenced by slot.
	var order []NodeID
	stack := []frame{{id}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, f.src)
		if tid := t.node(f.src).TypeID; tid != NilID {
			stack = append(stack, frame{tid})
		}
		for _, c := range t.iterChildren(f.src, nil) {
			stack = append(stack, frame{c})
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		src := order[i]
		if _, done := mapped[src]; done {
			continue
		}
		n := t.node(src)
		newArgs := make(map[SlotID]Arg, len(n.Args))
		for slot, v := range n.Args {
			switch v.Kind {
			case ArgNode:
				if v.Node == NilID {
					newArgs[slot] = v
				} else {
					newArgs[slot] = NodeArg(mapped[v.Node])
				}
			case ArgList:
				list := make([]NodeID, len(v.List))
				for j, c := range v.List {
					list[j] = mapped[c]
				}
				newArgs[slot] = ListArg(list...)
			default:
				newArgs[slot] = v
			}
		}

		newID := NodeID(len(dst.nodes))
		nn := Node{
			Kind:   n.Kind,
			Args:   newArgs,
			Parent: NilID,
			Index:  -1,
			TypeID: NilID,
		}
		if n.Comments != nil {
			nn.Comments = append([]string{}, n.Comments...)
		}
		if n.Meta != nil {
			nn.Meta = make(map[string]any, len(n.Meta))
			for k, v := range n.Meta {
				nn.Meta[k] = v
			}
		}
		if n.hashCache != nil {
			h := *n.hashCache
			nn.hashCache = &h
		}
		dst.nodes = append(dst.nodes, nn)
		mapped[src] = newID

		for slot, v := range newArgs {
			dst.setParent(newID, slot, v)
		}
		if n.TypeID != NilID {
			if tid, ok := mapped[n.TypeID]; ok {
				dst.node(newID).TypeID = tid
			}
		}
	}

	return dst, mapped[id]
}
