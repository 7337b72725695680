package genealogy

import (
	"fmt"

	"go.uber.org/multierr"
)

// Create inserts a new node with the single given parent and records the
// new child in the parent's child set.
//
// Returns ErrAlreadyExists if id is present (checked first, regardless of
// parent validity) and ErrNotFound if the parent is absent. On error the
// graph is exactly as before the call.
func (g *Genealogy[ID, V]) Create(id ID, parentID ID) error {
	if g.nodes.has(id) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, id)
	}
	parent, ok := g.nodes.get(parentID)
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrNotFound, parentID)
	}

	// Build both entries before touching the store; the inserts below
	// cannot fail.
	child := &node[ID]{id: id, parents: []ID{parentID}}
	updated := parent.withChild(id)

	g.nodes.insert(child)
	g.nodes.insert(updated)
	g.log.V(1).Info("created node", "id", id, "parent", parentID)
	return nil
}

// CreateWithParents inserts a new node whose parent set is exactly the
// given ids, deduplicated, and records the new child with every named
// parent.
//
// Returns ErrAlreadyExists if id is present. If any parent is absent the
// call fails before any mutation with an error aggregating every missing
// parent, each wrapping ErrNotFound. An empty parent list is a silent
// no-op: no node is created and no error is returned.
func (g *Genealogy[ID, V]) CreateWithParents(id ID, parentIDs []ID) error {
	if g.nodes.has(id) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, id)
	}

	parents := dedupSorted(parentIDs)
	var missing error
	for _, pid := range parents {
		if !g.nodes.has(pid) {
			missing = multierr.Append(missing, fmt.Errorf("%w: parent %v", ErrNotFound, pid))
		}
	}
	if missing != nil {
		return missing
	}
	if len(parents) == 0 {
		return nil
	}

	// Compute every modified parent entry first; commit only after all
	// copies exist. The inserts cannot fail.
	child := &node[ID]{id: id, parents: parents}
	updates := make([]*node[ID], 0, len(parents))
	for _, pid := range parents {
		p, _ := g.nodes.get(pid)
		updates = append(updates, p.withChild(id))
	}

	g.nodes.insert(child)
	for _, u := range updates {
		g.nodes.insert(u)
	}
	g.log.V(1).Info("created node", "id", id, "parents", parents)
	return nil
}

// Connect adds an edge from parentID to childID: parentID joins the
// child's parent set and childID joins the parent's child set, together.
// Connecting an already connected pair is a no-op.
//
// Connect does NOT verify that the new edge preserves acyclicity or
// reachability from the stem; that is the caller's responsibility.
// Validate reports violations after the fact.
//
// Returns ErrNotFound if either id is absent; the graph is then unchanged.
func (g *Genealogy[ID, V]) Connect(childID ID, parentID ID) error {
	child, ok := g.nodes.get(childID)
	if !ok {
		return fmt.Errorf("%w: child %v", ErrNotFound, childID)
	}
	parent, ok := g.nodes.get(parentID)
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrNotFound, parentID)
	}
	if containsID(child.parents, parentID) {
		return nil
	}

	// Self-edge: both set updates land on one entry.
	if childID == parentID {
		g.nodes.insert(child.withParent(parentID).withChild(childID))
		g.log.V(1).Info("connected", "child", childID, "parent", parentID)
		return nil
	}

	// Build both replacement entries, then commit both; never leave only
	// one side of the edge updated.
	uc := child.withParent(parentID)
	up := parent.withChild(childID)

	g.nodes.insert(uc)
	g.nodes.insert(up)
	g.log.V(1).Info("connected", "child", childID, "parent", parentID)
	return nil
}
