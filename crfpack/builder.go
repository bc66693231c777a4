package crfpack

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crfpack/factorgraph"
	"github.com/katalvlaran/crfpack/feature"
	"github.com/katalvlaran/crfpack/potential"
	"github.com/katalvlaran/crfpack/sample"
	"github.com/katalvlaran/crfpack/vocab"
)

// Engine is the part of a factor graph the builder drives.
type Engine interface {
	SetVariableLabel(i, label int) error
	SetLabelType(i int, t sample.LabelType) error
	AddEdge(a, b, edgeType int) error
	AddEdgeDone() error
	GenPropagateOrder() error
}

// BuildFactorGraph creates the factor graph of s under layout: one shared
// potential per edge type, every node's label and label type, every edge in
// list order, then commit and propagation order. On error nothing is returned.
func BuildFactorGraph(s *sample.Sample, layout *feature.Layout, v *vocab.Vocabulary, cfg Config) (*factorgraph.FactorGraph, error) {
	return buildFactorGraph(context.Background(), s, layout, v, cfg)
}

func buildFactorGraph(ctx context.Context, s *sample.Sample, layout *feature.Layout, v *vocab.Vocabulary, cfg Config) (*factorgraph.FactorGraph, error) {
	funcs, err := potential.NewSet(layout.NumEdgeType, layout.NumLabel,
		layout.NumEdgeFeatureEachType, layout.NumAttribParameter, layout.EdgeFeatureOffset)
	if err != nil {
		return nil, classify(err, "potential functions")
	}

	fg, err := factorgraph.New(s.NumNode(), s.NumEdge(), layout.NumLabel, funcs,
		factorgraph.WithContext(ctx),
		factorgraph.WithMaxBPIter(cfg.maxBPIter()),
		factorgraph.WithMultiEdges(!cfg.RejectMultiEdges))
	if err != nil {
		return nil, classify(err, "allocating factor graph")
	}
	if err = populate(fg, s, v); err != nil {
		return nil, err
	}

	return fg, nil
}

// populate replays s into e. The edge-registration commit always precedes
// the propagation-order request.
func populate(e Engine, s *sample.Sample, v *vocab.Vocabulary) error {
	for i, n := range s.Nodes {
		if n.LabelType == sample.Known && !v.Has(n.Label) {
			return classify(fmt.Errorf("%w: label %d not in vocabulary", factorgraph.ErrLabelOutOfRange, n.Label), "node %d", i)
		}
		if err := e.SetVariableLabel(i, n.Label); err != nil {
			return classify(err, "node %d", i)
		}
		if err := e.SetLabelType(i, n.LabelType); err != nil {
			return classify(err, "node %d", i)
		}
	}
	for j, edge := range s.Edges {
		if err := e.AddEdge(edge.A, edge.B, edge.EdgeType); err != nil {
			return classify(err, "edge %d (%d-%d type %d)", j, edge.A, edge.B, edge.EdgeType)
		}
	}
	if err := e.AddEdgeDone(); err != nil {
		return classify(err, "committing %d edges", len(s.Edges))
	}
	if err := e.GenPropagateOrder(); err != nil {
		return classify(err, "propagation order")
	}

	return nil
}
