// Package core provides the topology store behind a CRF factor graph: a
// fixed-size, undirected, typed multigraph whose vertices are the dense
// integers 0..n-1 and whose edges are addressed by registration position.
//
// The Graph G = (V,E) differs from a general-purpose graph in three ways:
//
//   - Vertices are allocated up front (NewGraph(n, ...)); there is no
//     AddVertex. A vertex ID outside 0..n-1 is ErrVertexNotFound.
//   - Edges are positional: the k-th successful AddEdge returns ID k, and
//     Edges() always reports them in registration order. Consumers address
//     pairwise factors by that position.
//   - Every edge carries an integer Type selecting which shared potential
//     parameters apply to it.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(a,b) → ErrMultiEdgeNotAllowed.
//
//	– WithEdgeTypes(k)
//	    Restricts Edge.Type to 0..k-1; otherwise any non-negative type is accepted.
//
// Core Methods:
//
//	AddEdge(a, b, edgeType int) (edgeID int, err error) // O(1) amortized
//	HasEdge(a, b int) bool                              // O(1)
//	Edge(id int) (*Edge, error)                         // O(1)
//	Edges() []*Edge                                     // O(E), registration order
//	Neighbors(v int) ([]*Edge, error)                   // O(d·log d), sorted by Edge.ID
//	NeighborIDs(v int) ([]int, error)                   // O(d·log d), unique, ascending
//	Degree(v int) (int, error)                          // O(1)
//	VertexCount() int / EdgeCount() int                 // O(1)
//	Stats() *GraphStats                                 // O(E)
//
// Errors:
//
//	ErrVertexNotFound      – vertex ID outside 0..n-1
//	ErrEdgeNotFound        – edge position never registered
//	ErrBadVertexCount      – negative vertex count passed to NewGraph
//	ErrBadEdgeType         – edge type negative or beyond WithEdgeTypes bound
//	ErrLoopNotAllowed      – self-loop, always rejected
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// edge catalog and adjacency.
package core
