package genealogy

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew(t *testing.T) {
	g := newTestGenealogy()
	assert.Equal(t, "S", g.StemID())
	assert.True(t, g.Exists("S"))
	assert.Equal(t, 1, g.Len())

	parents, err := g.Parents("S")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(parents))

	children, err := g.ChildIDs("S")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(children))
}

func TestExists(t *testing.T) {
	g := newTestGenealogy()
	assert.False(t, g.Exists("A"))

	assert.NoError(t, g.Create("A", "S"))
	assert.True(t, g.Exists("A"))

	assert.NoError(t, g.Remove("A"))
	assert.False(t, g.Exists("A"))
}

func TestLookup(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		g := newTestGenealogy()
		_, err := g.Lookup("A")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("identity stable", func(t *testing.T) {
		g := newTestGenealogy()
		assert.NoError(t, g.Create("A", "S"))

		first, err := g.Lookup("A")
		assert.NoError(t, err)
		second, err := g.Lookup("A")
		assert.NoError(t, err)
		assert.True(t, first == second)
		assert.Equal(t, "A", first.id)
	})

	t.Run("materialization failure", func(t *testing.T) {
		g := New("S", failingFactory("A"))
		assert.NoError(t, g.Create("A", "S"))

		_, err := g.Lookup("A")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrMaterialize))

		// The node itself is untouched.
		assert.True(t, g.Exists("A"))

		// Other ids still materialize.
		stem, err := g.Lookup("S")
		assert.NoError(t, err)
		assert.Equal(t, "S", stem.id)
	})
}

func TestParents(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		g := newTestGenealogy()
		_, err := g.Parents("A")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("ascending order", func(t *testing.T) {
		g := newTestGenealogy()
		assert.NoError(t, g.Create("B", "S"))
		assert.NoError(t, g.Create("A", "S"))
		assert.NoError(t, g.CreateWithParents("C", []string{"B", "A"}))

		parents, err := g.Parents("C")
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, parents)
	})
}

func TestChildIDs(t *testing.T) {
	g := newTestGenealogy()
	assert.NoError(t, g.Create("B", "S"))
	assert.NoError(t, g.Create("A", "S"))

	children, err := g.ChildIDs("S")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, children)

	_, err = g.ChildIDs("X")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCacheOutlivesNode(t *testing.T) {
	g := newTestGenealogy()
	assert.NoError(t, g.Create("A", "S"))

	before, err := g.Lookup("A")
	assert.NoError(t, err)

	assert.NoError(t, g.Remove("A"))
	_, err = g.Lookup("A")
	assert.True(t, errors.Is(err, ErrNotFound))

	// The instance handed out earlier is still the canonical one: after
	// re-creating the id, Lookup returns the same pointer.
	assert.NoError(t, g.Create("A", "S"))
	after, err := g.Lookup("A")
	assert.NoError(t, err)
	assert.True(t, before == after)
}
