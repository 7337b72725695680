package genealogy

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Children returns a cursor over the child set of id, traversing in
// ascending id order. The cursor is a snapshot: mutations made after the
// call do not move it. Re-fetch to observe them.
//
// Returns ErrNotFound if id is absent.
func (g *Genealogy[ID, V]) Children(id ID) (*ChildrenIterator[ID, V], error) {
	n, ok := g.nodes.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return &ChildrenIterator[ID, V]{
		ids:   slices.Clone(n.children),
		cache: g.cache,
		pos:   -1,
	}, nil
}

// ChildrenIterator is a bidirectional cursor over one node's child set.
//
// Value returns the canonical payload instance via the container's
// instance cache, materializing it on demand; iterating therefore mutates
// internal cache state even though it is logically read-only, and it is
// not safe to use concurrently with the container.
type ChildrenIterator[ID constraints.Ordered, V any] struct {
	ids   []ID
	cache *instanceCache[ID, V]

	// pos is -1 before the first element and len(ids) past the last.
	pos int
	err error
}

// Next advances the cursor. Returns true if an element is available,
// false past the end or after a materialization error.
func (it *ChildrenIterator[ID, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.pos >= len(it.ids)-1 {
		it.pos = len(it.ids)
		return false
	}
	it.pos++
	return true
}

// Prev moves the cursor backwards. Returns true if an element is
// available, false before the start or after a materialization error.
func (it *ChildrenIterator[ID, V]) Prev() bool {
	if it.err != nil {
		return false
	}
	if it.pos <= 0 {
		it.pos = -1
		return false
	}
	it.pos--
	return true
}

// ID returns the current child id.
// Only valid after Next() or Prev() returned true.
func (it *ChildrenIterator[ID, V]) ID() ID {
	return it.ids[it.pos]
}

// Value returns the canonical payload instance for the current child,
// materializing it if needed. The pointer is identity-stable: it compares
// equal to the one returned by Lookup and by any other cursor for the
// same id. On materialization failure Value returns nil and the error is
// reported by Err.
// Only valid after Next() or Prev() returned true.
func (it *ChildrenIterator[ID, V]) Value() *V {
	v, err := it.cache.get(it.ids[it.pos])
	if err != nil {
		it.err = err
		return nil
	}
	return v
}

// Err returns any error encountered while materializing payloads.
func (it *ChildrenIterator[ID, V]) Err() error {
	return it.err
}

// Len returns the number of children in the cursor's snapshot.
func (it *ChildrenIterator[ID, V]) Len() int {
	return len(it.ids)
}

// Reset rewinds the cursor to before the first element and clears any
// materialization error.
func (it *ChildrenIterator[ID, V]) Reset() {
	it.pos = -1
	it.err = nil
}
