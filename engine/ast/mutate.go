package ast

import "strings"

// commentMetaDirective is the comment prefix that, when present, carries
// key=value pairs to be folded into a node's Meta map as well as kept as
// a literal comment line (C6, "Comments").
const commentMetaDirective = "sqlglot.meta"

func detachNode(t *Tree, id NodeID) {
	if id == NilID {
		return
	}
	n := t.node(id)
	n.Parent = NilID
	n.HasArgKey = false
	n.ArgKey = 0
	n.Index = -1
}

// setList rewrites slot entirely as a list and re-parents/re-indexes every
// element at its new position.
func (t *Tree) setList(id NodeID, slot SlotID, seq []NodeID) {
	arg := ListArg(seq...)
	t.node(id).Args[slot] = arg
	t.setParent(id, slot, arg)
	t.invalidateHash(id)
}

// Set writes slot on id (C6).
//
//   - index == nil, value == nil: removes the slot entirely.
//   - index == nil, value != nil: overwrites the slot with value.
//   - index != nil, value == nil: removes the element at index, renumbering
//     the remainder (no-op if index is out of range).
//   - index != nil, value is an ArgList: splices the list in at index.
//   - index != nil, overwrite true: replaces the element at index.
//   - index != nil, overwrite false: inserts before index.
//
// Always invalidates the hash cache on id and every ancestor, and
// re-parents any Node value(s) written.
func (t *Tree) Set(id NodeID, slot SlotID, value *Arg, index *int, overwrite bool) {
	t.invalidateHash(id)
	n := t.node(id)

	if index != nil {
		cur := n.Args[slot]
		var seq []NodeID
		if cur.Kind == ArgList {
			seq = append([]NodeID{}, cur.List...)
		}
		i := *index
		if i < 0 || i >= len(seq) {
			return
		}

		if value == nil {
			removed := seq[i]
			seq = append(seq[:i], seq[i+1:]...)
			for j := i; j < len(seq); j++ {
				t.node(seq[j]).Index = j
			}
			t.node(id).Args[slot] = ListArg(seq...)
			detachNode(t, removed)
			return
		}

		if value.Kind == ArgList {
			newSeq := append([]NodeID{}, seq[:i]...)
			newSeq = append(newSeq, value.List...)
			newSeq = append(newSeq, seq[i+1:]...)
			t.setList(id, slot, newSeq)
			return
		}

		if overwrite {
			seq[i] = value.Node
		} else {
			newSeq := append([]NodeID{}, seq[:i]...)
			newSeq = append(newSeq, value.Node)
			newSeq = append(newSeq, seq[i:]...)
			seq = newSeq
		}
		t.setList(id, slot, seq)
		return
	}

	if value == nil {
		delete(n.Args, slot)
		return
	}

	n.Args[slot] = *value
	t.setParent(id, slot, *value)
}

// Append treats slot as a list (creating one if absent) and appends child.
func (t *Tree) Append(id NodeID, slot SlotID, child NodeID) {
	cur := t.node(id).Args[slot]
	var seq []NodeID
	if cur.Kind == ArgList {
		seq = append([]NodeID{}, cur.List...)
	}
	seq = append(seq, child)
	t.setList(id, slot, seq)
}

// Replace substitutes id in its parent with newID, severs id's own
// parent/arg_key/index, and returns newID. A no-op at the root (parent is
// absent), matching the source's "replacing a root with None is a no-op".
func (t *Tree) Replace(id, newID NodeID) NodeID {
	n := t.node(id)
	parent := n.Parent

	if parent == NilID || parent == newID {
		return newID
	}

	if !n.HasArgKey {
		return newID
	}
	slot := n.ArgKey

	if newID == NilID {
		val := t.node(parent).Args[slot]
		if val.Kind == ArgList {
			idx := n.Index
			t.Set(parent, slot, nil, &idx, false)
		} else {
			t.Set(parent, slot, nil, nil, false)
		}
		detachNode(t, id)
		return NilID
	}

	val := t.node(parent).Args[slot]
	if val.Kind == ArgList {
		idx := n.Index
		one := NodeArg(newID)
		t.Set(parent, slot, &one, &idx, true)
	} else {
		one := NodeArg(newID)
		t.Set(parent, slot, &one, nil, false)
	}

	if newID != id {
		detachNode(t, id)
	}
	return newID
}

// ReplaceMany substitutes id in its parent's list slot with the given
// sequence of nodes (splicing them in at id's former position), or, if
// id occupied a single-Node slot, promotes the replacement to id's
// parent (the source's "trying to replace an Expression with a list, so
// the intention was to really replace the parent of this expression").
func (t *Tree) ReplaceMany(id NodeID, newIDs []NodeID) {
	n := t.node(id)
	parent := n.Parent
	if parent == NilID || !n.HasArgKey {
		return
	}
	slot := n.ArgKey
	val := t.node(parent).Args[slot]

	if val.Kind == ArgList {
		idx := n.Index
		listArg := ListArg(newIDs...)
		t.Set(parent, slot, &listArg, &idx, true)
		detachNode(t, id)
		return
	}

	if t.node(parent).Parent != NilID {
		t.ReplaceMany(parent, newIDs)
		detachNode(t, id)
		return
	}

	listArg := ListArg(newIDs...)
	t.Set(parent, slot, &listArg, nil, false)
	detachNode(t, id)
}

// Pop removes id from its tree and returns it, now parentless.
func (t *Tree) Pop(id NodeID) NodeID {
	t.Replace(id, NilID)
	return id
}

// TransformFunc maps a visited node to its replacement. Returning the
// same NodeID leaves the node (and its current children) in place and
// continues the walk into them; returning a different NodeID grafts it
// in whole without descending into its subtree.
type TransformFunc func(t *Tree, id NodeID) NodeID

// Transform visits root and (unless replaced) its descendants in DFS
// pre-order, applying fn to each and wiring the result back into its
// parent. When copyFirst is true, the walk and all mutation happens on a
// fresh copy of the subtree, leaving t and root untouched; the returned
// Tree is that copy (identical to t when copyFirst is false).
func (t *Tree) Transform(root NodeID, fn TransformFunc, copyFirst bool) (*Tree, NodeID) {
	working := t
	workingRoot := root
	if copyFirst {
		working, workingRoot = t.Copy(root)
	}

	stack := []NodeID{workingRoot}
	resultRoot := NilID

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := working.node(node)
		parent, hasArgKey, slot, idx := n.Parent, n.HasArgKey, n.ArgKey, n.Index

		newNode := fn(working, node)

		if resultRoot == NilID {
			resultRoot = newNode
		} else if parent != NilID && hasArgKey && newNode != node {
			one := NodeArg(newNode)
			if idx >= 0 {
				working.Set(parent, slot, &one, &idx, true)
			} else {
				working.Set(parent, slot, &one, nil, false)
			}
		}

		if newNode == node {
			children := working.iterChildren(node, nil)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
	return working, resultRoot
}

// AddComments appends (or prepends) comments to id. Any comment whose
// payload contains the directive prefix contributes key=value entries
// into id's Meta map; a bare key with no "=value" defaults to true, and a
// supplied value becomes a bool when it reads as one and stays a string
// otherwise.
func (t *Tree) AddComments(id NodeID, comments []string, prepend bool) {
	n := t.node(id)
	if len(comments) == 0 {
		return
	}
	for _, c := range comments {
		if idx := strings.Index(c, commentMetaDirective); idx >= 0 {
			directive := c[idx+len(commentMetaDirective):]
			for _, kv := range strings.Split(directive, ",") {
				kv = strings.TrimSpace(kv)
				if kv == "" {
					continue
				}
				parts := strings.SplitN(kv, "=", 2)
				key := strings.TrimSpace(parts[0])
				if key == "" {
					continue
				}
				var val any = true
				if len(parts) == 2 {
					val = toBool(strings.TrimSpace(parts[1]))
				}
				t.meta(id)[key] = val
			}
		}
	}
	if prepend {
		n.Comments = append(append([]string{}, comments...), n.Comments...)
		return
	}
	n.Comments = append(n.Comments, comments...)
}

// PopComments returns and clears id's comments.
func (t *Tree) PopComments(id NodeID) []string {
	n := t.node(id)
	c := n.Comments
	n.Comments = nil
	return c
}

func toBool(s string) any {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	case "false", "0", "no":
		return false
	default:
		return s
	}
}
