package genealogy

import (
	"fmt"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

type cacheEntry[ID constraints.Ordered, V any] struct {
	id  ID
	val *V
}

// instanceCache is the canonical instance cache: at most one materialized
// payload per id, kept for the container's lifetime. Repeated lookups of
// the same id return the same pointer, which is what gives callers
// identity-stable payload references across queries and iteration.
//
// Entries are not dropped when a node is removed from the graph, so
// payload pointers handed out earlier stay valid afterwards. See the
// package documentation for this lifetime caveat.
type instanceCache[ID constraints.Ordered, V any] struct {
	entries     *btree.BTreeG[cacheEntry[ID, V]]
	materialize func(ID) (V, error)
}

func newInstanceCache[ID constraints.Ordered, V any](materialize func(ID) (V, error)) *instanceCache[ID, V] {
	return &instanceCache[ID, V]{
		entries:     btree.NewG(btreeDegree, func(a, b cacheEntry[ID, V]) bool { return a.id < b.id }),
		materialize: materialize,
	}
}

// get returns the canonical instance for id, materializing it on first
// use. Returns ErrMaterialize if the factory fails; nothing is cached in
// that case, so a later call retries.
func (c *instanceCache[ID, V]) get(id ID) (*V, error) {
	if e, ok := c.entries.Get(cacheEntry[ID, V]{id: id}); ok {
		return e.val, nil
	}
	v, err := c.materialize(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %v: %v", ErrMaterialize, id, err)
	}
	e := cacheEntry[ID, V]{id: id, val: &v}
	c.entries.ReplaceOrInsert(e)
	return e.val, nil
}
