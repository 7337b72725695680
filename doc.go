// Package genealogy provides a single-owner, in-memory container for a
// lineage of entities connected by a descent relationship: a directed
// acyclic graph with multiple parents and multiple children per node,
// rooted in a permanent stem node.
//
// # Overview
//
// The container stores nodes (id, parent-id set, child-id set) keyed by a
// client-supplied ordered identifier type, and lazily materializes one
// canonical payload object per id through a client-supplied factory.
// Payload references returned by Lookup and by iterator dereferences are
// identity-stable: the same id always yields the same pointer.
//
//	type Strain struct{ ID string /* ... */ }
//
//	g := genealogy.New("stem-0", func(id string) (Strain, error) {
//	    return Strain{ID: id}, nil
//	})
//	_ = g.Create("A", "stem-0")
//	_ = g.Create("B", "stem-0")
//	_ = g.CreateWithParents("C", []string{"A", "B"})
//
//	it, _ := g.Children("stem-0")
//	for it.Next() {
//	    strain := it.Value() // canonical *Strain
//	    _ = strain
//	}
//
// # Mutation protocol
//
// Every structural change — Create, CreateWithParents, Connect, Remove —
// provides the strong guarantee: on any failure the container's observable
// state is identical to its state immediately before the call. This is
// achieved by building every modified substructure off to the side,
// validating everything that can fail up front, and committing only
// through operations that cannot fail (store writes of prebuilt entries,
// a single store swap for the remove cascade). Callers may treat any
// returned error as "the operation had zero effect" and retry with
// corrected arguments.
//
// Remove cascades: deleting a node detaches it from its parents, and every
// child that would lose its last parent is removed by the same rule. The
// cascade is computed on a copy-on-write clone of the store and committed
// by one swap, so no partial cascade is ever observable.
//
// # Error handling
//
// Failures are signalled through sentinel errors checked with errors.Is():
// ErrNotFound, ErrAlreadyExists, ErrStemRemoval, ErrMaterialize, and the
// Validate findings ErrCyclic and ErrUnreachable. All failures are
// synchronous and deterministic; nothing is retried internally.
//
// # Known limitations
//
// Connect does not verify that a new edge preserves acyclicity or
// reachability from the stem. Keeping the structure a proper DAG is the
// caller's responsibility; Validate reports violations after the fact.
//
// CreateWithParents with an empty parent list is a silent no-op, unlike
// the single-parent Create which insists on a live parent.
//
// Cache entries outlive their nodes: a payload materialized for an id
// stays cached after the node is removed, so pointers obtained earlier
// remain valid (and a re-created id yields the original instance).
//
// # Thread safety
//
// IMPORTANT: the container is NOT safe for concurrent use. Mutating
// operations change the graph store, and even logically read-only
// operations mutate the instance cache through lazy materialization.
// Synchronize externally if the container is shared across goroutines.
package genealogy
