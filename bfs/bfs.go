// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// Forest explores vertices in increasing distance from the lowest unvisited
// vertex and repeats until every vertex is covered, producing a spanning
// forest; factor graphs use it as their message-propagation schedule.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crfpack/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state shared across trees of a forest.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// Forest walks every component of g. Components are started from the
// lowest vertex ID not yet visited, so the result is fully determined by g.
// A graph with no edges yields Order 0..n-1 with every vertex a root.
func Forest(g *core.Graph, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	for v := 0; v < g.VertexCount(); v++ {
		if w.res.Reached(v) {
			continue
		}
		if err = w.tree(v); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = NoParent
	}

	return &walker{graph: g, opts: o, queue: make([]queueItem, 0, n), res: res}, nil
}

// tree runs one BFS from root over vertices not yet reached.
func (w *walker) tree(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	w.enqueue(root, 0, NoParent)

	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueue marks id reached at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// enqueueNeighbors enqueues each unseen neighbor. Neighbors come back
// ascending, so ties are stable.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) {
			continue
		}
		w.enqueue(nbr, item.depth+1, item.id)
	}

	return nil
}
