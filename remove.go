package genealogy

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Remove deletes id and, transitively, every descendant that would
// otherwise lose its last parent: id is dropped from each parent's child
// set, and each child of id either loses id from its parent set or, if id
// was its only parent, is removed by the same rule.
//
// The entire cascade is computed on a copy-on-write clone of the store;
// only on total success is the live store replaced, by a single swap. No
// partial cascade is ever observable.
//
// Returns ErrNotFound if id is absent and ErrStemRemoval if id is the
// stem; the graph is then unchanged. Cache entries for removed ids are
// kept, so previously obtained payload pointers remain valid.
func (g *Genealogy[ID, V]) Remove(id ID) error {
	if !g.nodes.has(id) {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if id == g.stemID {
		return fmt.Errorf("%w: %v", ErrStemRemoval, id)
	}

	work := g.nodes.clone()
	removeCascade(work, id)
	g.nodes = work
	g.log.V(1).Info("removed node", "id", id)
	return nil
}

// removeCascade deletes id from the working copy. The "only parent" test
// runs against the working copy's state at each step, after earlier
// detachments in the same cascade have been applied; the final removed set
// does not depend on traversal order.
func removeCascade[ID constraints.Ordered](work *store[ID], id ID) {
	n, ok := work.get(id)
	if !ok {
		return
	}

	for _, pid := range n.parents {
		if p, ok := work.get(pid); ok {
			work.insert(p.withoutChild(id))
		}
	}

	for _, cid := range n.children {
		c, ok := work.get(cid)
		if !ok {
			continue
		}
		if len(c.parents) == 1 {
			removeCascade(work, cid)
		} else {
			work.insert(c.withoutParent(id))
		}
	}

	work.delete(id)
}
