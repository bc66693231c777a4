// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The read-only Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters need no lock.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	NumEdgeType int // 0 = unbounded

	VertexCount   int
	EdgeCount     int
	IsolatedCount int         // vertices with no incident edge
	EdgesByType   map[int]int // Edge.Type → count
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Complexity:
//   - Time O(V+E), Space O(T) for T distinct edge types.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		NumEdgeType: g.numEdgeType,
		VertexCount: g.numVertex,
		EdgesByType: make(map[int]int),
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.EdgesByType[e.Type]++
	}
	for v := 0; v < g.numVertex; v++ {
		if len(g.adjacency[v]) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
