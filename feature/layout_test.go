package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crfpack/feature"
)

func TestComputeLayout_ThreeLabels(t *testing.T) {
	l, err := feature.ComputeLayout(3, 0, 1)
	require.NoError(t, err)

	want := map[[2]int]int{
		{0, 0}: 0, {0, 1}: 1, {0, 2}: 2,
		{1, 1}: 3, {1, 2}: 4,
		{2, 2}: 5,
	}
	assert.Equal(t, 6, l.NumEdgeFeatureEachType)
	assert.Len(t, l.EdgeFeatureOffset, len(want))
	for pair, off := range want {
		assert.Equal(t, off, l.EdgeFeatureOffset[pair[0]*3+pair[1]], "pair %v", pair)
	}
}

func TestComputeLayout_OffsetTableProperties(t *testing.T) {
	for L := 1; L <= 8; L++ {
		l, err := feature.ComputeLayout(L, 0, 0)
		require.NoError(t, err)

		n := L * (L + 1) / 2
		require.Len(t, l.EdgeFeatureOffset, n, "L=%d", L)
		assert.Equal(t, n, l.NumEdgeFeatureEachType)

		seen := make(map[int]bool, n)
		next := 0
		for y1 := 0; y1 < L; y1++ {
			for y2 := y1; y2 < L; y2++ {
				off, ok := l.EdgeFeatureOffset[y1*L+y2]
				require.True(t, ok, "L=%d missing (%d,%d)", L, y1, y2)
				// row-major, gap-free
				assert.Equal(t, next, off)
				assert.False(t, seen[off])
				seen[off] = true
				next++
			}
		}
	}
}

func TestComputeLayout_FeatureCount(t *testing.T) {
	for L := 1; L <= 6; L++ {
		for A := 0; A <= 5; A += 5 {
			for E := 0; E <= 3; E++ {
				l, err := feature.ComputeLayout(L, A, E)
				require.NoError(t, err)
				assert.Equal(t, L*A, l.NumAttribParameter)
				assert.Equal(t, L*A+E*(L*(L+1)/2), l.NumFeature, "L=%d A=%d E=%d", L, A, E)
			}
		}
	}
}

func TestComputeLayout_Invalid(t *testing.T) {
	_, err := feature.ComputeLayout(0, 1, 1)
	assert.ErrorIs(t, err, feature.ErrInvalidConfiguration)
	_, err = feature.ComputeLayout(2, -1, 1)
	assert.ErrorIs(t, err, feature.ErrInvalidConfiguration)
	_, err = feature.ComputeLayout(2, 1, -1)
	assert.ErrorIs(t, err, feature.ErrInvalidConfiguration)
}

func TestLayout_IndicesDoNotOverlap(t *testing.T) {
	const L, A, E = 4, 3, 2
	l, err := feature.ComputeLayout(L, A, E)
	require.NoError(t, err)

	used := make(map[int]string, l.NumFeature)
	for y := 0; y < L; y++ {
		for a := 0; a < A; a++ {
			idx, err := l.AttribFeatureIndex(y, a)
			require.NoError(t, err)
			require.NotContains(t, used, idx)
			used[idx] = "attrib"
		}
	}
	for et := 0; et < E; et++ {
		for y1 := 0; y1 < L; y1++ {
			for y2 := y1; y2 < L; y2++ {
				idx, err := l.EdgeFeatureIndex(et, y1, y2)
				require.NoError(t, err)
				require.NotContains(t, used, idx)
				used[idx] = "edge"

				sym, err := l.EdgeFeatureIndex(et, y2, y1)
				require.NoError(t, err)
				assert.Equal(t, idx, sym)
			}
		}
	}
	// every index in 0..NumFeature-1 is used exactly once
	assert.Len(t, used, l.NumFeature)
	for i := 0; i < l.NumFeature; i++ {
		assert.Contains(t, used, i)
	}
}

func TestLayout_IndexOutOfRange(t *testing.T) {
	l, err := feature.ComputeLayout(2, 2, 1)
	require.NoError(t, err)

	_, err = l.EdgeFeatureIndex(1, 0, 0)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)
	_, err = l.EdgeFeatureIndex(0, 2, 0)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)
	_, err = l.AttribFeatureIndex(0, 2)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)
	_, err = l.AttribFeatureIndex(-1, 0)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)
}
