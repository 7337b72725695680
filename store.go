package genealogy

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// B-tree fanout for the graph store and the instance cache.
const btreeDegree = 32

// store is the ordered graph store: one entry per node, keyed by id.
// All operations are O(log n). Entries are immutable; mutating a node
// means building a replacement and writing it back via insert.
//
// clone returns a copy-on-write snapshot, which is what makes the remove
// cascade's working copy cheap: the cascade edits the clone freely and the
// live store is replaced by a single pointer swap on success.
type store[ID constraints.Ordered] struct {
	tree *btree.BTreeG[*node[ID]]
}

func newStore[ID constraints.Ordered]() *store[ID] {
	return &store[ID]{
		tree: btree.NewG(btreeDegree, func(a, b *node[ID]) bool { return a.id < b.id }),
	}
}

func (s *store[ID]) has(id ID) bool {
	return s.tree.Has(&node[ID]{id: id})
}

func (s *store[ID]) get(id ID) (*node[ID], bool) {
	return s.tree.Get(&node[ID]{id: id})
}

// insert adds or replaces the entry for n.id. It cannot fail; the mutation
// protocol relies on that for its commit steps.
func (s *store[ID]) insert(n *node[ID]) {
	s.tree.ReplaceOrInsert(n)
}

func (s *store[ID]) delete(id ID) {
	s.tree.Delete(&node[ID]{id: id})
}

func (s *store[ID]) len() int {
	return s.tree.Len()
}

// clone returns an isolated snapshot sharing structure with the original.
// Writes to either side are invisible to the other.
func (s *store[ID]) clone() *store[ID] {
	return &store[ID]{tree: s.tree.Clone()}
}

// ascend visits every node in ascending id order until fn returns false.
func (s *store[ID]) ascend(fn func(*node[ID]) bool) {
	s.tree.Ascend(fn)
}
