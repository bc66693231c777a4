// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// NoParent marks a root in BFSResult.Parent.
const NoParent = -1

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns a BFSOptions with context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// BFSResult holds the outcome of a traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the vertex's root; -1 if unreached.
//   - Parent: predecessor in the BFS tree; NoParent for roots and unreached vertices.
//   - Roots: the start vertex of each tree, in visit order.
//
// Depth and Parent are indexed by vertex ID and sized to the graph.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
	Roots  []int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}
