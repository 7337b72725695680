package genealogy

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// node is one stored entity: its id plus sorted parent and child id sets.
// Nodes are exclusively owned by the store and never handed out to callers.
// Once inserted they are treated as immutable: the with/without helpers
// build modified copies, so a mutation can be assembled completely off to
// the side before any of it is committed.
type node[ID constraints.Ordered] struct {
	id       ID
	parents  []ID
	children []ID
}

func (n *node[ID]) withParent(id ID) *node[ID] {
	return &node[ID]{id: n.id, parents: insertID(n.parents, id), children: slices.Clone(n.children)}
}

func (n *node[ID]) withoutParent(id ID) *node[ID] {
	return &node[ID]{id: n.id, parents: removeID(n.parents, id), children: slices.Clone(n.children)}
}

func (n *node[ID]) withChild(id ID) *node[ID] {
	return &node[ID]{id: n.id, parents: slices.Clone(n.parents), children: insertID(n.children, id)}
}

func (n *node[ID]) withoutChild(id ID) *node[ID] {
	return &node[ID]{id: n.id, parents: slices.Clone(n.parents), children: removeID(n.children, id)}
}

// containsID reports set membership in a sorted id slice.
func containsID[ID constraints.Ordered](ids []ID, id ID) bool {
	_, ok := slices.BinarySearch(ids, id)
	return ok
}

// insertID returns a copy of ids with id inserted at its sorted position.
// The input slice is never modified. Inserting a present id yields a plain
// copy, keeping the slices true sets.
func insertID[ID constraints.Ordered](ids []ID, id ID) []ID {
	idx, ok := slices.BinarySearch(ids, id)
	out := slices.Clone(ids)
	if ok {
		return out
	}
	return slices.Insert(out, idx, id)
}

// removeID returns a copy of ids without id. Removing an absent id yields
// a plain copy.
func removeID[ID constraints.Ordered](ids []ID, id ID) []ID {
	idx, ok := slices.BinarySearch(ids, id)
	out := slices.Clone(ids)
	if !ok {
		return out
	}
	return slices.Delete(out, idx, idx+1)
}

// dedupSorted returns ids sorted ascending with duplicates removed.
func dedupSorted[ID constraints.Ordered](ids []ID) []ID {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
