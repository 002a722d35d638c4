package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Graph:
// - Closure is a superset of the direct dependencies
// - Closure follows chains transitively
// - Closure terminates on cycles and excludes the source itself
// - Direct returns an empty, non-nil set for isolated sources
// - Sources lists every vertex, sorted

func TestGraph_ClosureSupersetOfDirect(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(map[string][]string{
		"a.cpp": {"b.cpp"},
		"b.cpp": {"c.cpp"},
		"c.cpp": {},
	})
	require.NoError(t, err)

	closure, err := g.Closure("a.cpp")
	require.NoError(t, err)

	for _, dep := range g.Direct("a.cpp") {
		assert.Contains(t, closure, dep)
	}
	assert.Equal(t, []string{"b.cpp", "c.cpp"}, closure)
}

func TestGraph_ClosureTerminatesOnCycle(t *testing.T) {
	t.Parallel()

	// a -> b -> c -> a: every participant reaches the other two, never itself.
	g, err := NewGraph(map[string][]string{
		"a.cpp": {"b.cpp"},
		"b.cpp": {"c.cpp"},
		"c.cpp": {"a.cpp"},
	})
	require.NoError(t, err)

	closure, err := g.Closure("a.cpp")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.cpp", "c.cpp"}, closure)

	closure, err = g.Closure("b.cpp")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.cpp", "c.cpp"}, closure)
}

func TestGraph_ClosureTwoNodeCycle(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(map[string][]string{
		"a.cpp": {"b.cpp"},
		"b.cpp": {"a.cpp"},
	})
	require.NoError(t, err)

	closure, err := g.Closure("a.cpp")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.cpp"}, closure)
	assert.NotContains(t, closure, "a.cpp")
}

func TestGraph_DirectEmptyNotNil(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(map[string][]string{
		"lonely.cpp": {},
	})
	require.NoError(t, err)

	assert.NotNil(t, g.Direct("lonely.cpp"))
	assert.Empty(t, g.Direct("lonely.cpp"))

	closure, err := g.Closure("lonely.cpp")
	require.NoError(t, err)
	assert.Empty(t, closure)
}

func TestGraph_Sources(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(map[string][]string{
		"z.cpp": {},
		"a.cpp": {"z.cpp"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.cpp", "z.cpp"}, g.Sources())
}
