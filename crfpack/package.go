package crfpack

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/crfpack/factorgraph"
	"github.com/katalvlaran/crfpack/feature"
	"github.com/katalvlaran/crfpack/grouping"
	"github.com/katalvlaran/crfpack/sample"
	"github.com/katalvlaran/crfpack/vocab"
)

// Package is the CRF package structure of one sample. It is read-only
// after New returns.
type Package struct {
	sample    *sample.Sample
	vocab     *vocab.Vocabulary
	layout    *feature.Layout
	graph     *factorgraph.FactorGraph
	groups    *grouping.Groups // nil when built with SkipGrouping
	maxBPIter int
}

// New builds the package structure of s under v.
//
// The feature layout uses v's label and edge-type counts and either
// cfg.OverrideAttribCount or v's attribute count. The factor graph is built
// next; grouping runs last unless cfg.SkipGrouping is set.
func New(s *sample.Sample, v *vocab.Vocabulary, cfg Config) (*Package, error) {
	return newPackage(context.Background(), s, v, cfg)
}

func newPackage(ctx context.Context, s *sample.Sample, v *vocab.Vocabulary, cfg Config) (*Package, error) {
	numAttrib := v.NumAttribType()
	if cfg.OverrideAttribCount != nil {
		numAttrib = *cfg.OverrideAttribCount
	}
	layout, err := feature.ComputeLayout(v.NumLabel(), numAttrib, v.NumEdgeType())
	if err != nil {
		return nil, classify(err, "feature layout")
	}

	fg, err := buildFactorGraph(ctx, s, layout, v, cfg)
	if err != nil {
		return nil, err
	}

	p := &Package{
		sample:    s,
		vocab:     v,
		layout:    layout,
		graph:     fg,
		maxBPIter: fg.MaxBPIter(),
	}
	if !cfg.SkipGrouping {
		if p.groups, err = grouping.Resolve(s); err != nil {
			return nil, classify(err, "node grouping")
		}
	}

	groups := 0
	if p.groups != nil {
		groups = p.groups.Len()
	}
	klog.V(2).Infof("crfpack: %d nodes, %d edges, %d features, %d groups",
		s.NumNode(), s.NumEdge(), layout.NumFeature, groups)
	klog.V(3).Infof("crfpack: propagation order over %d components",
		len(fg.PropagationOrder().Roots))

	return p, nil
}

// NumFeature returns the total feature-vector length.
func (p *Package) NumFeature() int { return p.layout.NumFeature }

// Layout returns the feature layout. It is shared with the factor graph's
// potential functions; do not modify it.
func (p *Package) Layout() *feature.Layout { return p.layout }

// EdgeFeatureOffset returns the pairwise offset table shared by every
// potential function. Do not modify.
func (p *Package) EdgeFeatureOffset() map[int]int { return p.layout.EdgeFeatureOffset }

// FactorGraph returns the built, schedule-ready factor graph.
func (p *Package) FactorGraph() *factorgraph.FactorGraph { return p.graph }

// MaxBPIter returns the belief-propagation iteration bound.
func (p *Package) MaxBPIter() int { return p.maxBPIter }

// Sample returns the source sample.
func (p *Package) Sample() *sample.Sample { return p.sample }

// Vocabulary returns the label vocabulary.
func (p *Package) Vocabulary() *vocab.Vocabulary { return p.vocab }

// HasGrouping reports whether node grouping was built.
func (p *Package) HasGrouping() bool { return p.groups != nil }

// Groups returns the node grouping, or nil when it was not requested.
func (p *Package) Groups() *grouping.Groups { return p.groups }

// NodeIDConvert maps CRF node id → representative node id, or nil without grouping.
func (p *Package) NodeIDConvert() map[int]int {
	if p.groups == nil {
		return nil
	}

	return p.groups.NodeIDConvert()
}

// GroupMembers maps representative id → ascending member ids, or nil without grouping.
func (p *Package) GroupMembers() map[int][]int {
	if p.groups == nil {
		return nil
	}

	return p.groups.GroupMembers()
}
