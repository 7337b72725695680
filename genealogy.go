package genealogy

import (
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"
)

// Option configures a Genealogy.
type Option[ID constraints.Ordered, V any] func(*Genealogy[ID, V])

// WithLogr sets the logger used for mutation tracing. The default discards
// all output.
func WithLogr[ID constraints.Ordered, V any](log logr.Logger) Option[ID, V] {
	return func(g *Genealogy[ID, V]) {
		g.log = log
	}
}

// Genealogy is a single-owner, in-memory descent graph: entities connected
// by a mutation/descent relationship, with multiple parents and multiple
// children per node. A distinguished stem node is fixed at construction
// and cannot be removed.
//
// IMPORTANT: Genealogy is NOT safe for concurrent use. Even logically
// read-only calls (Lookup, Children, iterator dereferences) mutate the
// instance cache through lazy materialization. Callers needing concurrent
// access must synchronize externally.
//
// Use by pointer only; the container owns its graph and cache exclusively
// and must not be copied.
type Genealogy[ID constraints.Ordered, V any] struct {
	stemID ID
	nodes  *store[ID]
	cache  *instanceCache[ID, V]
	log    logr.Logger
}

// New creates a genealogy containing only the stem node, with empty parent
// and child sets. stemID is fixed for the container's lifetime.
//
// materialize builds a payload from its id alone. It is invoked lazily, at
// most once per id for the container's lifetime, when a payload reference
// is first needed. It must not be nil.
func New[ID constraints.Ordered, V any](stemID ID, materialize func(ID) (V, error), opts ...Option[ID, V]) *Genealogy[ID, V] {
	if materialize == nil {
		panic("genealogy: materialize must not be nil")
	}
	g := &Genealogy[ID, V]{
		stemID: stemID,
		nodes:  newStore[ID](),
		cache:  newInstanceCache[ID, V](materialize),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes.insert(&node[ID]{id: stemID})
	return g
}

// StemID returns the id fixed at construction. It never fails; the stem
// node exists for the container's whole lifetime.
func (g *Genealogy[ID, V]) StemID() ID {
	return g.stemID
}

// Exists reports whether id names a live node.
func (g *Genealogy[ID, V]) Exists(id ID) bool {
	return g.nodes.has(id)
}

// Len returns the number of live nodes, the stem included.
func (g *Genealogy[ID, V]) Len() int {
	return g.nodes.len()
}

// Lookup returns the canonical payload instance for id. The returned
// pointer is identity-stable: every Lookup and iterator dereference for
// the same id yields the same pointer for the container's lifetime, even
// past removal of the node.
//
// Returns ErrNotFound if id is absent and ErrMaterialize if the factory
// fails; in both cases the graph is untouched.
func (g *Genealogy[ID, V]) Lookup(id ID) (*V, error) {
	if !g.nodes.has(id) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return g.cache.get(id)
}

// Parents returns the parent ids of id in ascending id order.
// Returns ErrNotFound if id is absent.
func (g *Genealogy[ID, V]) Parents(id ID) ([]ID, error) {
	n, ok := g.nodes.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return slices.Clone(n.parents), nil
}

// ChildIDs returns the child ids of id in ascending id order. To traverse
// child payloads instead of ids, use Children.
// Returns ErrNotFound if id is absent.
func (g *Genealogy[ID, V]) ChildIDs(id ID) ([]ID, error) {
	n, ok := g.nodes.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return slices.Clone(n.children), nil
}
