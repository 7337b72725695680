package genealogy

import (
	"fmt"
	"slices"
)

// strain is the payload type used throughout the tests. It satisfies the
// capability contract: it carries its own id and is constructible from
// one.
type strain struct {
	id string
}

func newStrain(id string) (strain, error) {
	return strain{id: id}, nil
}

// newTestGenealogy builds a strain genealogy rooted at stem "S".
func newTestGenealogy() *Genealogy[string, strain] {
	return New("S", newStrain)
}

// failingFactory materializes like newStrain but fails for the given ids.
func failingFactory(bad ...string) func(string) (strain, error) {
	return func(id string) (strain, error) {
		if slices.Contains(bad, id) {
			return strain{}, fmt.Errorf("no data for %s", id)
		}
		return strain{id: id}, nil
	}
}

// edges captures every node's parent and child sets, keyed by id. Used to
// check that failed mutations left the graph byte-for-byte unchanged.
type edges struct {
	Parents  []string
	Children []string
}

func snapshot(g *Genealogy[string, strain]) map[string]edges {
	out := make(map[string]edges, g.nodes.len())
	g.nodes.ascend(func(n *node[string]) bool {
		out[n.id] = edges{
			Parents:  slices.Clone(n.parents),
			Children: slices.Clone(n.children),
		}
		return true
	})
	return out
}
