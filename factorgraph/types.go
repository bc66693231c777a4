// Package factorgraph is the pairwise factor graph consumed by belief
// propagation: n variable nodes carrying a label and an observability flag,
// and one factor per registered edge bound to the shared potential function
// of its edge type.
//
// Construction follows a fixed protocol:
//
//	fg, _ := factorgraph.New(n, m, numLabel, funcs)
//	fg.SetVariableLabel(i, label); fg.SetLabelType(i, t)   // for every node
//	fg.AddEdge(a, b, edgeType)                              // m times, in order
//	fg.AddEdgeDone()                                        // commit
//	fg.GenPropagateOrder()                                  // schedule
//
// Only after GenPropagateOrder does Ready report true. Inference must not run
// before that point.
package factorgraph

import (
	"context"
	"errors"

	"github.com/katalvlaran/crfpack/potential"
	"github.com/katalvlaran/crfpack/sample"
)

// DefaultMaxBPIter bounds belief-propagation sweeps when no option overrides it.
const DefaultMaxBPIter = 50

// Sentinel errors for factor graph construction.
var (
	ErrInvalidSize        = errors.New("factorgraph: invalid size")
	ErrNodeOutOfRange     = errors.New("factorgraph: node id out of range")
	ErrLabelOutOfRange    = errors.New("factorgraph: label id out of range")
	ErrBadLabelType       = errors.New("factorgraph: label type is neither KNOWN nor UNKNOWN")
	ErrEdgeTypeOutOfRange = errors.New("factorgraph: edge type has no potential function")
	ErrDuplicateEdge      = errors.New("factorgraph: duplicate edge")
	ErrSelfLoop           = errors.New("factorgraph: self-loop edge")
	ErrTooManyEdges       = errors.New("factorgraph: more edges than allocated")
	ErrEdgeCountMismatch  = errors.New("factorgraph: fewer edges than allocated")
	ErrEdgesCommitted     = errors.New("factorgraph: edges already committed")
	ErrNotCommitted       = errors.New("factorgraph: edges not committed")
	ErrBadMaxBPIter       = errors.New("factorgraph: max bp iterations must be >= 1")
)

// Variable is one CRF node.
type Variable struct {
	ID        int
	Label     int
	LabelType sample.LabelType
}

// Factor is one pairwise factor. Position is the edge's registration index.
type Factor struct {
	Position int
	A, B     int
	EdgeType int
	Func     *potential.EdgeFactorFunction
}

// PropagationOrder is the message schedule: a BFS spanning forest.
// Messages flow leaves→roots along reversed Order, then roots→leaves along Order.
type PropagationOrder struct {
	Order  []int // every variable exactly once
	Parent []int // -1 for roots
	Roots  []int // one per connected component, ascending
}

// Stats summarises a built factor graph.
type Stats struct {
	NumNode     int
	NumEdge     int
	NumLabel    int
	NumKnown    int
	NumUnknown  int
	Components  int
	EdgesByType map[int]int
}

// Option configures a FactorGraph.
type Option func(*options)

type options struct {
	ctx        context.Context
	maxBPIter  int
	allowMulti bool
	err        error
}

// WithMaxBPIter sets the belief-propagation iteration bound.
func WithMaxBPIter(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = ErrBadMaxBPIter
			return
		}
		o.maxBPIter = n
	}
}

// WithContext cancels GenPropagateOrder when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMultiEdges accepts repeated registrations of the same endpoint pair.
func WithMultiEdges(allow bool) Option {
	return func(o *options) { o.allowMulti = allow }
}
