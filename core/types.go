// Package core defines the Graph and Edge types used as the topology store
// of a factor graph, together with construction options and sentinel errors.
//
// Errors:
//
//	ErrVertexNotFound      - vertex ID outside the allocated range.
//	ErrEdgeNotFound        - requested edge position does not exist.
//	ErrBadVertexCount      - negative vertex count.
//	ErrBadEdgeType         - edge type outside the configured range.
//	ErrLoopNotAllowed      - self-loop; a pairwise edge needs two vertices.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge position.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrBadEdgeType indicates an edge type outside the configured range.
	ErrBadEdgeType = errors.New("core: edge type out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected, typed connection between two vertices.
//
// ID is the registration position of the edge (0 for the first AddEdge).
// From/To keep the endpoint order given by the caller; adjacency is mirrored.
type Edge struct {
	// ID is the registration position of this edge in the Graph.
	ID int

	// From is the first endpoint as registered.
	From int

	// To is the second endpoint as registered.
	To int

	// Type selects the potential parameters shared by all edges of this type.
	Type int
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithEdgeTypes bounds Edge.Type to 0..k-1. A non-positive k leaves types unbounded.
func WithEdgeTypes(k int) GraphOption {
	return func(g *Graph) {
		if k > 0 {
			g.numEdgeType = k
		}
	}
}

// Graph is the fixed-vertex, positional-edge topology store.
//
// mu protects edges and adjacency. Vertex count and flags are immutable
// after NewGraph returns.
type Graph struct {
	mu sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti  bool // allow parallel edges
	numEdgeType int  // 0 = unbounded

	// Storage
	numVertex int
	edges     []*Edge // position → Edge

	// adjacency[v][u] = positions of edges joining v and u (mirrored)
	adjacency []map[int][]int
}

// NewGraph allocates a Graph with vertices 0..n-1 and no edges.
// Self-loops are always rejected; multi-edges only with WithMultiEdges.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{
		numVertex: n,
		adjacency: make([]map[int][]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
