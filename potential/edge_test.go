package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crfpack/feature"
	"github.com/katalvlaran/crfpack/potential"
)

func TestEdgeFactorFunction_AgreesWithLayout(t *testing.T) {
	l, err := feature.ComputeLayout(3, 4, 2)
	require.NoError(t, err)

	set, err := potential.NewSet(l.NumEdgeType, l.NumLabel, l.NumEdgeFeatureEachType, l.NumAttribParameter, l.EdgeFeatureOffset)
	require.NoError(t, err)
	require.Len(t, set, 2)

	for et, f := range set {
		assert.Equal(t, et, f.EdgeType())
		assert.Equal(t, 3, f.NumLabel())
		for y1 := 0; y1 < 3; y1++ {
			for y2 := 0; y2 < 3; y2++ {
				got, err := f.FeatureIndex(y1, y2)
				require.NoError(t, err)
				want, err := l.EdgeFeatureIndex(et, y1, y2)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	}

	// type 1, pair (1,2): 12 + 1*6 + 4
	idx, err := set[1].FeatureIndex(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 22, idx)
}

func TestEdgeFactorFunction_Value(t *testing.T) {
	l, err := feature.ComputeLayout(2, 1, 1)
	require.NoError(t, err)
	f, err := potential.New(0, 2, l.NumEdgeFeatureEachType, l.NumAttribParameter, l.EdgeFeatureOffset)
	require.NoError(t, err)

	// attrib block [0,1], pairwise (0,0)=2 (0,1)=3 (1,1)=4
	weights := []float64{9, 9, 0, math.Log(2), 1}
	v, err := f.Value(0, 0, weights)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
	v, err = f.Value(1, 0, weights)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
	v, err = f.Value(1, 1, weights)
	require.NoError(t, err)
	assert.InDelta(t, math.E, v, 1e-12)

	_, err = f.Value(1, 1, weights[:4])
	assert.ErrorIs(t, err, potential.ErrWeightsTooShort)
	_, err = f.Value(2, 0, weights)
	assert.ErrorIs(t, err, potential.ErrLabelOutOfRange)
}

func TestNew_Invalid(t *testing.T) {
	l, err := feature.ComputeLayout(2, 1, 1)
	require.NoError(t, err)

	_, err = potential.New(-1, 2, 3, 2, l.EdgeFeatureOffset)
	assert.ErrorIs(t, err, potential.ErrInvalidParameter)
	_, err = potential.New(0, 0, 3, 2, l.EdgeFeatureOffset)
	assert.ErrorIs(t, err, potential.ErrInvalidParameter)
	_, err = potential.New(0, 2, 4, 2, l.EdgeFeatureOffset)
	assert.ErrorIs(t, err, potential.ErrInvalidParameter)
	_, err = potential.New(0, 2, 3, -2, l.EdgeFeatureOffset)
	assert.ErrorIs(t, err, potential.ErrInvalidParameter)
	_, err = potential.NewSet(-1, 2, 3, 2, l.EdgeFeatureOffset)
	assert.ErrorIs(t, err, potential.ErrInvalidParameter)
}

func TestSet_ForType(t *testing.T) {
	l, err := feature.ComputeLayout(2, 0, 2)
	require.NoError(t, err)
	set, err := potential.NewSet(2, 2, l.NumEdgeFeatureEachType, 0, l.EdgeFeatureOffset)
	require.NoError(t, err)

	f, ok := set.ForType(1)
	require.True(t, ok)
	assert.Same(t, set[1], f)
	_, ok = set.ForType(2)
	assert.False(t, ok)
	_, ok = set.ForType(-1)
	assert.False(t, ok)
}
