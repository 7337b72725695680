package genealogy

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
	"go.uber.org/multierr"
)

// Validate checks the intended global properties that the mutation
// protocol deliberately does not enforce: the structure is acyclic and
// every node is reachable from the stem. Connect can violate both; this
// is the explicit, opt-in diagnostic for it. Mutations never run it.
//
// Returns nil if the structure is a proper stem-rooted DAG; otherwise an
// aggregate error whose parts wrap ErrCyclic and ErrUnreachable.
func (g *Genealogy[ID, V]) Validate() error {
	var errs error

	dg := graph.New(func(id ID) ID { return id }, graph.Directed(), graph.PreventCycles())
	g.nodes.ascend(func(n *node[ID]) bool {
		_ = dg.AddVertex(n.id)
		return true
	})
	g.nodes.ascend(func(n *node[ID]) bool {
		for _, cid := range n.children {
			if err := dg.AddEdge(n.id, cid); err != nil && errors.Is(err, graph.ErrEdgeCreatesCycle) {
				errs = multierr.Append(errs, fmt.Errorf("%w: edge %v -> %v", ErrCyclic, n.id, cid))
			}
		}
		return true
	})

	reachable := make(map[ID]bool, g.nodes.len())
	g.markReachable(g.stemID, reachable)
	g.nodes.ascend(func(n *node[ID]) bool {
		if !reachable[n.id] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrUnreachable, n.id))
		}
		return true
	})

	return errs
}

// markReachable recursively marks all nodes reachable from the given node.
func (g *Genealogy[ID, V]) markReachable(id ID, reachable map[ID]bool) {
	if reachable[id] {
		return
	}
	reachable[id] = true

	n, ok := g.nodes.get(id)
	if !ok {
		return
	}
	for _, cid := range n.children {
		g.markReachable(cid, reachable)
	}
}
