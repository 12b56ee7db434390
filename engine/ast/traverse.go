package ast

// PruneFunc returns true when a traversal should yield a node but not
// descend into it.
type PruneFunc func(t *Tree, id NodeID) bool

// iterChildren appends id's direct Node children, in declared-slot order
// (left to right), to dst and returns the extended slice. This is the
// traversal order the kind registry's slot schema fixes for a node,
// matching the source's "iter_expressions" over declaration order.
func (t *Tree) iterChildren(id NodeID, dst []NodeID) []NodeID {
	n := t.node(id)
	schema := Schema(n.Kind)
	for _, spec := range schema.Slots {
		v, ok := n.Args[spec.Slot]
		if !ok {
			continue
		}
		switch v.Kind {
		case ArgNode:
			if v.Node != NilID {
				dst = append(dst, v.Node)
			}
		case ArgList:
			for _, c := range v.List {
				if c != NilID {
					dst = append(dst, c)
				}
			}
		}
	}
	return dst
}

// Children returns id's direct Node children in declared-slot order.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.iterChildren(id, nil)
}

// DFS visits id and its transitive children in pre-order using an
// explicit stack (children pushed in reverse so the leftmost child visits
// first), honoring prune. Iterative by construction, matching C7's
// requirement for non-recursive traversal of deep trees.
func (t *Tree) DFS(id NodeID, prune PruneFunc) []NodeID {
	var order []NodeID
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		if prune != nil && prune(t, n) {
			continue
		}
		children := t.iterChildren(n, nil)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return order
}

// BFS visits id and its transitive children in breadth-first order,
// honoring prune.
func (t *Tree) BFS(id NodeID, prune PruneFunc) []NodeID {
	var order []NodeID
	queue := []NodeID{id}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		if prune != nil && prune(t, n) {
			continue
		}
		queue = append(queue, t.iterChildren(n, nil)...)
	}
	return order
}

// Walk dispatches to BFS (the default) or DFS.
func (t *Tree) Walk(id NodeID, bfs bool, prune PruneFunc) []NodeID {
	if bfs {
		return t.BFS(id, prune)
	}
	return t.DFS(id, prune)
}

// Find returns the first node under id (inclusive) whose kind is in kinds,
// using BFS unless bfs is false.
func (t *Tree) Find(id NodeID, bfs bool, kinds ...Kind) (NodeID, bool) {
	for _, n := range t.Walk(id, bfs, nil) {
		if kindIn(t.KindOf(n), kinds) {
			return n, true
		}
	}
	return NilID, false
}

// FindAll returns every node under id (inclusive) whose kind is in kinds.
func (t *Tree) FindAll(id NodeID, bfs bool, kinds ...Kind) []NodeID {
	var out []NodeID
	for _, n := range t.Walk(id, bfs, nil) {
		if kindIn(t.KindOf(n), kinds) {
			out = append(out, n)
		}
	}
	return out
}

// FindAncestor walks id's parent chain and returns the nearest ancestor
// whose kind is in kinds.
func (t *Tree) FindAncestor(id NodeID, kinds ...Kind) (NodeID, bool) {
	cur := t.node(id).Parent
	for cur != NilID {
		if kindIn(t.KindOf(cur), kinds) {
			return cur, true
		}
		cur = t.node(cur).Parent
	}
	return NilID, false
}

func kindIn(k Kind, kinds []Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// Depth returns the number of parent hops from id to the tree root.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	cur := t.node(id).Parent
	for cur != NilID {
		depth++
		cur = t.node(cur).Parent
	}
	return depth
}

// Root returns the ultimate ancestor of id.
func (t *Tree) Root(id NodeID) NodeID {
	cur := id
	for t.node(cur).Parent != NilID {
		cur = t.node(cur).Parent
	}
	return cur
}

// SameParent reports whether id's parent has the same kind as id.
func (t *Tree) SameParent(id NodeID) bool {
	p := t.node(id).Parent
	return p != NilID && t.KindOf(p) == t.KindOf(id)
}

// Unnest returns the first non-Paren descendant reached by following
// "this" through a chain of Paren wrappers, or id itself.
func (t *Tree) Unnest(id NodeID) NodeID {
	cur := id
	for t.KindOf(cur) == Paren {
		this := t.This(cur)
		if this == NilID {
			break
		}
		cur = this
	}
	return cur
}

// Unalias returns the wrapped expression if id is an Alias, or id itself.
func (t *Tree) Unalias(id NodeID) NodeID {
	if t.KindOf(id) == Alias {
		return t.This(id)
	}
	return id
}

// Flatten yields the operands of a chain of same-kind nodes rooted at id
// (e.g. A AND B AND C -> [A, B, C]), unnesting parens along the way. This
// supplements spec.md with the source's Expression.flatten.
func (t *Tree) Flatten(id NodeID, unnest bool) []NodeID {
	selfKind := t.KindOf(id)
	prune := func(tt *Tree, n NodeID) bool {
		p := tt.node(n).Parent
		return p != NilID && tt.KindOf(n) != selfKind
	}
	var out []NodeID
	for _, n := range t.DFS(id, prune) {
		if t.KindOf(n) != selfKind {
			if unnest {
				out = append(out, t.Unnest(n))
			} else {
				out = append(out, n)
			}
		}
	}
	return out
}
