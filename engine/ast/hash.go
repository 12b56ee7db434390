package ast

import (
	"encoding/binary"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/prismql/prismql/telemetry"
)

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

func fnvBytes(b []byte) uint64 {
	h := fnvOffset64
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

func fnvString(s string) uint64 { return fnvBytes([]byte(s)) }

func combine(h, x uint64) uint64 {
	h ^= x
	h *= fnvPrime64
	return h
}

func hashInt(i int64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return fnvBytes(b[:])
}

func hashFloat(f float64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	return fnvBytes(b[:])
}

// Hash computes (and caches) the 64-bit structural hash of the subtree
// rooted at id (C4). Nodes are collected bottom-up via a BFS pass so that
// every child's hash is available by the time its parent is folded,
// without recursion.
func (t *Tree) Hash(id NodeID) uint64 {
	if cached := t.node(id).hashCache; cached != nil {
		return *cached
	}

	var order []NodeID
	queue := []NodeID{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		if t.node(cur).hashCache != nil {
			continue
		}
		queue = append(queue, t.iterChildren(cur, nil)...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		nd := order[i]
		if t.node(nd).hashCache != nil {
			continue
		}
		h := t.computeNodeHash(nd)
		t.node(nd).hashCache = &h
	}
	return *t.node(id).hashCache
}

func (t *Tree) computeNodeHash(id NodeID) uint64 {
	n := t.node(id)
	schema := Schema(n.Kind)
	h := fnvString(n.Kind.Tag())

	keys := make([]SlotID, 0, len(n.Args))
	for k := range n.Args {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return SlotName(keys[i]) < SlotName(keys[j]) })

	for _, slot := range keys {
		v := n.Args[slot]
		if schema.HashRawArgs {
			if v.isEmpty() {
				continue
			}
			h = combine(h, fnvString(SlotName(slot)))
			h = combine(h, t.hashArgRaw(v))
			continue
		}

		if v.Kind == ArgList {
			for _, x := range v.List {
				h = combine(h, fnvString(SlotName(slot)))
				if x != NilID {
					h = combine(h, *t.node(x).hashCache)
				}
			}
			continue
		}

		if v.isEmpty() {
			continue
		}
		h = combine(h, fnvString(SlotName(slot)))
		h = combine(h, t.hashArgValue(v, true))
	}
	return h
}

func (t *Tree) hashArgValue(v Arg, lowerStrings bool) uint64 {
	switch v.Kind {
	case ArgNode:
		if v.Node == NilID {
			return 0
		}
		return *t.node(v.Node).hashCache
	case ArgString:
		s := v.Str
		if lowerStrings {
			s = strings.ToLower(s)
		}
		return fnvString(s)
	case ArgInt:
		return hashInt(v.Int)
	case ArgBool:
		return hashInt(boolToInt(v.Bool))
	case ArgFloat:
		return hashFloat(v.Float)
	default:
		return 0
	}
}

func (t *Tree) hashArgRaw(v Arg) uint64 {
	return t.hashArgValue(v, false)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Equal reports whether two subtrees, possibly in different Trees, are
// structurally equal (C4): same kind and equal structural hash. This
// mirrors the source's Expression.__eq__, which accepts the same
// hash-collision risk in exchange for O(1) comparison once hashed.
func Equal(t1 *Tree, id1 NodeID, t2 *Tree, id2 NodeID) bool {
	if t1.KindOf(id1) != t2.KindOf(id2) {
		return false
	}
	return t1.Hash(id1) == t2.Hash(id2)
}

// Equal reports whether id1 and id2 within t are structurally equal.
func (t *Tree) Equal(id1, id2 NodeID) bool {
	return Equal(t, id1, t, id2)
}

// invalidateHash clears id's cached hash and every ancestor's, stopping
// at the first ancestor that is already invalidated (invariant 5).
func (t *Tree) invalidateHash(id NodeID) {
	cur := id
	for cur != NilID {
		n := t.node(cur)
		if n.hashCache == nil {
			return
		}
		n.hashCache = nil
		telemetry.Debug("hash cache invalidated", zap.Int32("node", int32(cur)))
		cur = n.Parent
	}
}
