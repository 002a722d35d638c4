package depgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// Graph is the directed source-to-source dependency graph. Edges mean "the
// first source includes a header implemented by the second". Built once from
// the direct edge map and read-only afterward.
type Graph struct {
	direct map[string][]string
	g      graph.Graph[string, string]
}

// NewGraph builds a Graph from the direct dependency map produced by
// Analyzer.DirectDependencies. Every key becomes a vertex even when its edge
// list is empty.
func NewGraph(direct map[string][]string) (*Graph, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for source := range direct {
		if err := g.AddVertex(source); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("failed to add vertex %s: %w", source, err)
		}
	}

	for source, deps := range direct {
		for _, dep := range deps {
			if err := g.AddEdge(source, dep); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", source, dep, err)
			}
		}
	}

	return &Graph{direct: direct, g: g}, nil
}

// Sources returns all source files in the graph, sorted.
func (dg *Graph) Sources() []string {
	sources := make([]string, 0, len(dg.direct))
	for source := range dg.direct {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// Direct returns the sorted direct dependencies of a source file. The result
// is empty, not nil, for a source with no resolvable includes; it is nil only
// for files the graph has never seen.
func (dg *Graph) Direct(source string) []string {
	return dg.direct[source]
}

// Closure returns the transitive closure of a source file's dependencies,
// sorted. The traversal is guarded by a visited set so it terminates on
// cyclic graphs; the source itself is excluded from its own closure even when
// a cycle makes it reachable.
func (dg *Graph) Closure(source string) ([]string, error) {
	adjacency, err := dg.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read adjacency map: %w", err)
	}

	visited := make(map[string]bool)
	stack := make([]string, 0, len(dg.direct[source]))
	stack = append(stack, dg.direct[source]...)

	for len(stack) > 0 {
		dep := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[dep] || dep == source {
			continue
		}
		visited[dep] = true

		for next := range adjacency[dep] {
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}

	closure := make([]string, 0, len(visited))
	for dep := range visited {
		closure = append(closure, dep)
	}
	sort.Strings(closure)
	return closure, nil
}
