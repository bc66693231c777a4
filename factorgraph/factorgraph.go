package factorgraph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crfpack/bfs"
	"github.com/katalvlaran/crfpack/core"
	"github.com/katalvlaran/crfpack/potential"
	"github.com/katalvlaran/crfpack/sample"
)

// FactorGraph is exclusively owned by one package structure; it is not
// safe to mutate concurrently.
type FactorGraph struct {
	n, m      int
	numLabel  int
	funcs     potential.Set
	maxBPIter int
	ctx       context.Context

	vars    []Variable
	factors []Factor
	topo    *core.Graph

	committed bool
	order     *PropagationOrder
}

// New allocates n variable slots and room for m factors over numLabel labels.
func New(n, m, numLabel int, funcs potential.Set, opts ...Option) (*FactorGraph, error) {
	o := options{ctx: context.Background(), maxBPIter: DefaultMaxBPIter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 0 || m < 0 || numLabel < 1 {
		return nil, fmt.Errorf("%w: n=%d m=%d num_label=%d", ErrInvalidSize, n, m, numLabel)
	}

	gopts := []core.GraphOption{core.WithEdgeTypes(len(funcs))}
	if o.allowMulti {
		gopts = append(gopts, core.WithMultiEdges())
	}
	topo, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, err
	}

	fg := &FactorGraph{
		n:         n,
		m:         m,
		numLabel:  numLabel,
		funcs:     funcs,
		maxBPIter: o.maxBPIter,
		ctx:       o.ctx,
		vars:      make([]Variable, n),
		factors:   make([]Factor, 0, m),
		topo:      topo,
	}
	for i := range fg.vars {
		fg.vars[i] = Variable{ID: i, Label: sample.UnknownLabel, LabelType: sample.Unknown}
	}

	return fg, nil
}

// SetVariableLabel assigns label to variable i. UnknownLabel is accepted;
// any other value must lie in 0..numLabel-1.
func (fg *FactorGraph) SetVariableLabel(i, label int) error {
	if i < 0 || i >= fg.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, i, fg.n)
	}
	if label != sample.UnknownLabel && (label < 0 || label >= fg.numLabel) {
		return fmt.Errorf("%w: node %d label %d (num_label=%d)", ErrLabelOutOfRange, i, label, fg.numLabel)
	}
	fg.vars[i].Label = label

	return nil
}

// SetLabelType marks variable i as evidence (Known) or target (Unknown).
// A Known variable must carry a real label.
func (fg *FactorGraph) SetLabelType(i int, t sample.LabelType) error {
	if i < 0 || i >= fg.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, i, fg.n)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: node %d has %s", ErrBadLabelType, i, t)
	}
	if t == sample.Known && fg.vars[i].Label == sample.UnknownLabel {
		return fmt.Errorf("%w: node %d is KNOWN without a label", ErrLabelOutOfRange, i)
	}
	fg.vars[i].LabelType = t

	return nil
}

// AddEdge registers the factor a–b of edgeType at the next position.
func (fg *FactorGraph) AddEdge(a, b, edgeType int) error {
	if fg.committed {
		return ErrEdgesCommitted
	}
	if len(fg.factors) == fg.m {
		return fmt.Errorf("%w: m=%d", ErrTooManyEdges, fg.m)
	}
	f, ok := fg.funcs.ForType(edgeType)
	if !ok {
		return fmt.Errorf("%w: %d (have %d)", ErrEdgeTypeOutOfRange, edgeType, len(fg.funcs))
	}

	pos, err := fg.topo.AddEdge(a, b, edgeType)
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		return fmt.Errorf("%w: edge %d-%d (n=%d)", ErrNodeOutOfRange, a, b, fg.n)
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, a, b)
	case errors.Is(err, core.ErrLoopNotAllowed):
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	case err != nil:
		return err
	}
	fg.factors = append(fg.factors, Factor{Position: pos, A: a, B: b, EdgeType: edgeType, Func: f})

	return nil
}

// AddEdgeDone commits edge registration. All m edges must be present.
func (fg *FactorGraph) AddEdgeDone() error {
	if fg.committed {
		return ErrEdgesCommitted
	}
	if len(fg.factors) != fg.m {
		return fmt.Errorf("%w: %d of %d", ErrEdgeCountMismatch, len(fg.factors), fg.m)
	}
	fg.committed = true

	return nil
}

// GenPropagateOrder computes the message schedule on the committed graph.
// It aborts with the context error once the WithContext ctx is done.
func (fg *FactorGraph) GenPropagateOrder() error {
	if !fg.committed {
		return ErrNotCommitted
	}
	res, err := bfs.Forest(fg.topo, bfs.WithContext(fg.ctx))
	if err != nil {
		return err
	}
	fg.order = &PropagationOrder{Order: res.Order, Parent: res.Parent, Roots: res.Roots}

	return nil
}

// SetMaxBPIter overrides the belief-propagation iteration bound.
func (fg *FactorGraph) SetMaxBPIter(n int) error {
	if n < 1 {
		return ErrBadMaxBPIter
	}
	fg.maxBPIter = n

	return nil
}

// Ready reports whether edges are committed and the schedule is computed.
func (fg *FactorGraph) Ready() bool { return fg.committed && fg.order != nil }

// MaxBPIter returns the belief-propagation iteration bound.
func (fg *FactorGraph) MaxBPIter() int { return fg.maxBPIter }

// NumNode returns the number of variables.
func (fg *FactorGraph) NumNode() int { return fg.n }

// NumEdge returns the number of registered factors.
func (fg *FactorGraph) NumEdge() int { return len(fg.factors) }

// NumLabel returns the label cardinality.
func (fg *FactorGraph) NumLabel() int { return fg.numLabel }

// Variable returns variable i.
func (fg *FactorGraph) Variable(i int) (Variable, error) {
	if i < 0 || i >= fg.n {
		return Variable{}, fmt.Errorf("%w: %d", ErrNodeOutOfRange, i)
	}

	return fg.vars[i], nil
}

// Factor returns the factor registered at position j.
func (fg *FactorGraph) Factor(j int) (Factor, error) {
	if j < 0 || j >= len(fg.factors) {
		return Factor{}, fmt.Errorf("factorgraph: no factor at position %d", j)
	}

	return fg.factors[j], nil
}

// Factors returns a copy of all factors in registration order.
func (fg *FactorGraph) Factors() []Factor {
	out := make([]Factor, len(fg.factors))
	copy(out, fg.factors)

	return out
}

// Neighbors returns the positions of factors touching variable i, ascending.
func (fg *FactorGraph) Neighbors(i int) ([]int, error) {
	edges, err := fg.topo.Neighbors(i)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, i)
	}
	out := make([]int, len(edges))
	for k, e := range edges {
		out[k] = e.ID
	}

	return out, nil
}

// PropagationOrder returns the schedule, or nil before GenPropagateOrder.
func (fg *FactorGraph) PropagationOrder() *PropagationOrder { return fg.order }

// Evidence returns the ids of Known variables, ascending.
func (fg *FactorGraph) Evidence() []int { return fg.idsOf(sample.Known) }

// Targets returns the ids of Unknown variables, ascending.
func (fg *FactorGraph) Targets() []int { return fg.idsOf(sample.Unknown) }

func (fg *FactorGraph) idsOf(t sample.LabelType) []int {
	var out []int
	for _, v := range fg.vars {
		if v.LabelType == t {
			out = append(out, v.ID)
		}
	}

	return out
}

// Stats summarises the graph. Components is 0 before GenPropagateOrder.
func (fg *FactorGraph) Stats() Stats {
	ts := fg.topo.Stats()
	s := Stats{
		NumNode:     fg.n,
		NumEdge:     len(fg.factors),
		NumLabel:    fg.numLabel,
		EdgesByType: ts.EdgesByType,
	}
	for _, v := range fg.vars {
		if v.LabelType == sample.Known {
			s.NumKnown++
		} else {
			s.NumUnknown++
		}
	}
	if fg.order != nil {
		s.Components = len(fg.order.Roots)
	}

	return s
}
