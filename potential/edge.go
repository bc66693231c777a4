// Package potential implements the pairwise potential functions of the CRF.
//
// One EdgeFactorFunction exists per edge type and is referenced, not copied,
// by every factor of that type, so the parameter count does not grow with
// the number of edges.
package potential

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for potential construction and evaluation.
var (
	// ErrInvalidParameter indicates construction arguments that cannot address weights.
	ErrInvalidParameter = errors.New("potential: invalid parameter")

	// ErrLabelOutOfRange indicates a label outside 0..numLabel-1.
	ErrLabelOutOfRange = errors.New("potential: label out of range")

	// ErrWeightsTooShort indicates a weight vector shorter than the addressed index.
	ErrWeightsTooShort = errors.New("potential: weight vector too short")
)

// EdgeFactorFunction scores a label pair on an edge of one type:
//
//	value(y1, y2) = exp(w[numAttribParameter + edgeType*numEdgeFeatureEachType + offset[min*L+max]])
type EdgeFactorFunction struct {
	edgeType               int
	numLabel               int
	numEdgeFeatureEachType int
	numAttribParameter     int
	offset                 map[int]int // shared with the feature layout; never written
}

// New builds the potential for edgeType. edgeFeatureOffset is retained by reference.
func New(edgeType, numLabel, numEdgeFeatureEachType, numAttribParameter int, edgeFeatureOffset map[int]int) (*EdgeFactorFunction, error) {
	switch {
	case edgeType < 0:
		return nil, fmt.Errorf("%w: edge type %d", ErrInvalidParameter, edgeType)
	case numLabel < 1:
		return nil, fmt.Errorf("%w: num_label %d", ErrInvalidParameter, numLabel)
	case numAttribParameter < 0:
		return nil, fmt.Errorf("%w: num_attrib_parameter %d", ErrInvalidParameter, numAttribParameter)
	case numEdgeFeatureEachType != len(edgeFeatureOffset):
		return nil, fmt.Errorf("%w: %d edge features per type but %d offsets",
			ErrInvalidParameter, numEdgeFeatureEachType, len(edgeFeatureOffset))
	}

	return &EdgeFactorFunction{
		edgeType:               edgeType,
		numLabel:               numLabel,
		numEdgeFeatureEachType: numEdgeFeatureEachType,
		numAttribParameter:     numAttribParameter,
		offset:                 edgeFeatureOffset,
	}, nil
}

// EdgeType returns the edge type this function serves.
func (f *EdgeFactorFunction) EdgeType() int { return f.edgeType }

// NumLabel returns the label cardinality.
func (f *EdgeFactorFunction) NumLabel() int { return f.numLabel }

// FeatureIndex returns the weight index read for the unordered pair {y1,y2}.
func (f *EdgeFactorFunction) FeatureIndex(y1, y2 int) (int, error) {
	if y1 < 0 || y1 >= f.numLabel || y2 < 0 || y2 >= f.numLabel {
		return -1, fmt.Errorf("%w: (%d,%d) with %d labels", ErrLabelOutOfRange, y1, y2, f.numLabel)
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	off, ok := f.offset[y1*f.numLabel+y2]
	if !ok {
		return -1, fmt.Errorf("%w: no offset for (%d,%d)", ErrInvalidParameter, y1, y2)
	}

	return f.numAttribParameter + f.edgeType*f.numEdgeFeatureEachType + off, nil
}

// Value returns the potential of {y1,y2} under weights.
func (f *EdgeFactorFunction) Value(y1, y2 int, weights []float64) (float64, error) {
	idx, err := f.FeatureIndex(y1, y2)
	if err != nil {
		return 0, err
	}
	if idx >= len(weights) {
		return 0, fmt.Errorf("%w: need index %d, have %d weights", ErrWeightsTooShort, idx, len(weights))
	}

	return math.Exp(weights[idx]), nil
}

// Set holds one function per edge type, indexed by type.
type Set []*EdgeFactorFunction

// NewSet builds functions for edge types 0..numEdgeType-1 sharing one offset table.
func NewSet(numEdgeType, numLabel, numEdgeFeatureEachType, numAttribParameter int, edgeFeatureOffset map[int]int) (Set, error) {
	if numEdgeType < 0 {
		return nil, fmt.Errorf("%w: num_edge_type %d", ErrInvalidParameter, numEdgeType)
	}
	set := make(Set, numEdgeType)
	for t := range set {
		f, err := New(t, numLabel, numEdgeFeatureEachType, numAttribParameter, edgeFeatureOffset)
		if err != nil {
			return nil, err
		}
		set[t] = f
	}

	return set, nil
}

// ForType returns the function for edgeType, or false if none is registered.
func (s Set) ForType(edgeType int) (*EdgeFactorFunction, bool) {
	if edgeType < 0 || edgeType >= len(s) {
		return nil, false
	}

	return s[edgeType], true
}
