// File: methods_vertices.go
// Role: Vertex queries over the fixed range 0..n-1.
//
// Determinism:
//   - Neighbors() is sorted by Edge.ID; NeighborIDs() ascending.
//
// Concurrency:
//   - Adjacency reads under mu read lock.
package core

import (
	"fmt"
	"sort"
)

// hasVertex reports whether id lies in 0..n-1. numVertex is immutable, no lock needed.
func (g *Graph) hasVertex(id int) bool { return id >= 0 && id < g.numVertex }

// HasVertex reports whether id is an allocated vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool { return g.hasVertex(id) }

// VertexCount returns n, the number of allocated vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.numVertex }

// Neighbors returns all edges incident to v, sorted by Edge.ID.
// Parallel edges appear once each.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(v int) ([]*Edge, error) {
	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, ids := range g.adjacency[v] {
		for _, eid := range ids {
			out = append(out, g.edges[eid])
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to v in ascending order.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	ids := make([]int, 0, len(g.adjacency[v]))
	for u := range g.adjacency[v] {
		ids = append(ids, u)
	}
	g.mu.RUnlock()
	sort.Ints(ids)

	return ids, nil
}

// Degree returns the number of edges incident to v.
// Complexity: O(d) over distinct neighbors.
func (g *Graph) Degree(v int) (int, error) {
	if !g.hasVertex(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := 0
	for _, ids := range g.adjacency[v] {
		deg += len(ids)
	}

	return deg, nil
}
