// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are registration positions (0, 1, 2, ...).
//   - Edges() returns edges in registration order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge registers an undirected edge a–b of the given type and returns its position.
//
// Steps:
//  1. Validate endpoints against 0..n-1.
//  2. Validate edge type (non-negative, below WithEdgeTypes bound when set).
//  3. Loop constraint.
//  4. Lock mu, check multi-edge constraint.
//  5. Append to the edge catalog; the new ID is the previous EdgeCount.
//  6. Record adjacency in both directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b, edgeType int) (int, error) {
	// 1) Input validation
	if !g.hasVertex(a) {
		return -1, fmt.Errorf("%w: %d (n=%d)", ErrVertexNotFound, a, g.numVertex)
	}
	if !g.hasVertex(b) {
		return -1, fmt.Errorf("%w: %d (n=%d)", ErrVertexNotFound, b, g.numVertex)
	}
	// 2) Type constraint
	if edgeType < 0 || (g.numEdgeType > 0 && edgeType >= g.numEdgeType) {
		return -1, fmt.Errorf("%w: %d", ErrBadEdgeType, edgeType)
	}
	// 3) Loop constraint
	if a == b {
		return -1, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Multi-edge existence check
	if !g.allowMulti && len(g.adjacency[a][b]) > 0 {
		return -1, fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, a, b)
	}

	// 5) Store in the positional catalog
	eid := len(g.edges)
	g.edges = append(g.edges, &Edge{ID: eid, From: a, To: b, Type: edgeType})

	// 6) Mirror adjacency
	g.link(a, b, eid)
	g.link(b, a, eid)

	return eid, nil
}

// link appends eid to adjacency[from][to]. Caller holds mu.
func (g *Graph) link(from, to, eid int) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int][]int)
	}
	g.adjacency[from][to] = append(g.adjacency[from][to], eid)
}

// HasEdge reports true if at least one edge joins a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[a][b]) > 0
}

// Edge returns the edge registered at position id.
// Complexity: O(1).
func (g *Graph) Edge(id int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.edges) {
		return nil, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns all edges in registration order.
// The slice is a copy; the *Edge values are shared and must not be mutated.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of registered edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
