// Package feature computes the CRF feature-vector layout: a per-node
// attribute block of NumLabel×NumAttribType weights followed by one pairwise
// block per edge type.
//
// Within a pairwise block, the unordered label pair (y1,y2), y1 ≤ y2, sits at
// EdgeFeatureOffset[y1*NumLabel+y2]. Offsets are assigned in row-major order
// (increasing y1, then increasing y2) starting at 0, so for three labels:
//
//	(0,0)→0 (0,1)→1 (0,2)→2 (1,1)→3 (1,2)→4 (2,2)→5
//
// Potential functions address weights through the same table; the ordering
// is part of the weight-file format and must not change.
package feature

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout computation and lookups.
var (
	// ErrInvalidConfiguration indicates counts that cannot form a layout.
	ErrInvalidConfiguration = errors.New("feature: invalid configuration")

	// ErrIndexOutOfRange indicates a label, attribute or edge type outside the layout.
	ErrIndexOutOfRange = errors.New("feature: index out of range")
)

// Layout is the immutable feature-index layout for one vocabulary.
// EdgeFeatureOffset is shared by every potential function built from the
// layout and must not be modified.
type Layout struct {
	NumLabel      int
	NumAttribType int
	NumEdgeType   int

	// NumAttribParameter = NumLabel × NumAttribType.
	NumAttribParameter int
	// NumEdgeFeatureEachType = NumLabel(NumLabel+1)/2.
	NumEdgeFeatureEachType int
	// NumFeature = NumAttribParameter + NumEdgeType × NumEdgeFeatureEachType.
	NumFeature int

	// EdgeFeatureOffset maps y1*NumLabel+y2 (y1 ≤ y2) to an offset inside a
	// pairwise block. Shared read-only by every potential function.
	EdgeFeatureOffset map[int]int
}

// ComputeLayout builds the layout for the given counts.
// numLabel must be ≥ 1; the other counts must be ≥ 0.
func ComputeLayout(numLabel, numAttribType, numEdgeType int) (*Layout, error) {
	if numLabel < 1 {
		return nil, fmt.Errorf("%w: num_label must be >= 1, got %d", ErrInvalidConfiguration, numLabel)
	}
	if numAttribType < 0 || numEdgeType < 0 {
		return nil, fmt.Errorf("%w: negative count (attrib=%d, edge types=%d)",
			ErrInvalidConfiguration, numAttribType, numEdgeType)
	}

	l := &Layout{
		NumLabel:           numLabel,
		NumAttribType:      numAttribType,
		NumEdgeType:        numEdgeType,
		NumAttribParameter: numLabel * numAttribType,
		EdgeFeatureOffset:  make(map[int]int, numLabel*(numLabel+1)/2),
	}
	offset := 0
	for y1 := 0; y1 < numLabel; y1++ {
		for y2 := y1; y2 < numLabel; y2++ {
			l.EdgeFeatureOffset[y1*numLabel+y2] = offset
			offset++
		}
	}
	l.NumEdgeFeatureEachType = offset
	l.NumFeature = l.NumAttribParameter + numEdgeType*l.NumEdgeFeatureEachType

	return l, nil
}

// PairKey returns the offset-table key of the unordered pair {y1,y2}.
func (l *Layout) PairKey(y1, y2 int) int {
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	return y1*l.NumLabel + y2
}

// EdgeFeatureIndex returns the global feature index of the pairwise weight
// for labels {y1,y2} on an edge of edgeType. Symmetric in y1, y2.
func (l *Layout) EdgeFeatureIndex(edgeType, y1, y2 int) (int, error) {
	if edgeType < 0 || edgeType >= l.NumEdgeType {
		return -1, fmt.Errorf("%w: edge type %d (have %d)", ErrIndexOutOfRange, edgeType, l.NumEdgeType)
	}
	if !l.validLabel(y1) || !l.validLabel(y2) {
		return -1, fmt.Errorf("%w: label pair (%d,%d) (have %d labels)", ErrIndexOutOfRange, y1, y2, l.NumLabel)
	}

	return l.NumAttribParameter + edgeType*l.NumEdgeFeatureEachType + l.EdgeFeatureOffset[l.PairKey(y1, y2)], nil
}

// AttribFeatureIndex returns the global feature index of attribute attrib for label.
func (l *Layout) AttribFeatureIndex(label, attrib int) (int, error) {
	if !l.validLabel(label) || attrib < 0 || attrib >= l.NumAttribType {
		return -1, fmt.Errorf("%w: label %d attrib %d", ErrIndexOutOfRange, label, attrib)
	}

	return label*l.NumAttribType + attrib, nil
}

func (l *Layout) validLabel(y int) bool { return y >= 0 && y < l.NumLabel }
