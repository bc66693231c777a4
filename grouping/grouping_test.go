package grouping_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crfpack/grouping"
	"github.com/katalvlaran/crfpack/sample"
)

func sampleWithKeys(t *testing.T, keys ...string) *sample.Sample {
	t.Helper()
	nodes := make([]sample.Node, len(keys))
	for i := range nodes {
		nodes[i] = sample.Node{ID: i, Label: sample.UnknownLabel}
	}
	s, err := sample.New(nodes, nil, keys)
	require.NoError(t, err)

	return s
}

func TestResolve_TwoBoxes(t *testing.T) {
	s := sampleWithKeys(t, "0_5", "1_5", "0_7")

	g, err := grouping.Resolve(s)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{0: 0, 1: 0, 2: 2}, g.NodeIDConvert())
	assert.Equal(t, map[int][]int{0: {0, 1}, 2: {2}}, g.GroupMembers())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []int{0, 2}, g.Representatives())

	box, ok := g.BoxOf(2)
	require.True(t, ok)
	assert.Equal(t, 7, box)
}

func TestResolve_RepresentativeIsMinimalFrame(t *testing.T) {
	// later frames listed first: the representative is not the lowest id
	s := sampleWithKeys(t, "3_1", "2_1", "9_2", "0_1", "4_2")

	g, err := grouping.Resolve(s)
	require.NoError(t, err)

	rep, ok := g.Representative(0)
	require.True(t, ok)
	assert.Equal(t, 3, rep)
	members, ok := g.Members(3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3}, members)
	members, ok = g.Members(4)
	require.True(t, ok)
	assert.Equal(t, []int{2, 4}, members)

	_, ok = g.Members(0)
	assert.False(t, ok)
	_, ok = g.Representative(5)
	assert.False(t, ok)
}

func TestResolve_RejectsAliasedKeys(t *testing.T) {
	// "01_4" would alias "1_4"; it never reaches the representative pass
	s := sampleWithKeys(t, "2_4", "1_4", "01_4")

	g, err := grouping.Resolve(s)
	assert.ErrorIs(t, err, sample.ErrKeyDecode)
	assert.Nil(t, g)
}

func TestResolve_RepresentativeIndependentOfOrder(t *testing.T) {
	s := sampleWithKeys(t, "2_4", "5_4", "1_4")

	g, err := grouping.Resolve(s)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 2}, g.NodeIDConvert())
	assert.Equal(t, map[int][]int{2: {0, 1, 2}}, g.GroupMembers())
}

func TestResolve_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		frames, boxes := 1+rng.Intn(6), 1+rng.Intn(5)
		var keys []string
		for f := 0; f < frames; f++ {
			for b := 0; b < boxes; b++ {
				keys = append(keys, sample.NodeKey{Frame: f, Box: b}.String())
			}
		}
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		s := sampleWithKeys(t, keys...)

		g, err := grouping.Resolve(s)
		require.NoError(t, err)
		assert.Equal(t, boxes, g.Len())
		assert.Equal(t, len(keys), g.NumNode())

		// partition: every node in exactly one group, union = all nodes
		seen := make(map[int]int, len(keys))
		g.Each(func(rep int, members []int) {
			assert.Contains(t, members, rep)
			assert.IsIncreasing(t, members)
			repKey, err := s.NodeKey(rep)
			require.NoError(t, err)
			for _, m := range members {
				seen[m]++
				k, err := s.NodeKey(m)
				require.NoError(t, err)
				assert.Equal(t, repKey.Box, k.Box)
				assert.LessOrEqual(t, repKey.Frame, k.Frame)
			}
		})
		require.Len(t, seen, len(keys))
		for id := range keys {
			assert.Equal(t, 1, seen[id], "node %d", id)
		}

		// idempotence
		again, err := grouping.Resolve(s)
		require.NoError(t, err)
		assert.Equal(t, g.NodeIDConvert(), again.NodeIDConvert())
		assert.Equal(t, g.GroupMembers(), again.GroupMembers())
	}
}

func TestResolve_DecodeErrors(t *testing.T) {
	for _, bad := range []string{"05", "x_5", "0_y"} {
		s := sampleWithKeys(t, "0_1", bad)
		g, err := grouping.Resolve(s)
		assert.ErrorIs(t, err, sample.ErrKeyDecode, "key %q", bad)
		assert.Nil(t, g)
	}
}

func TestResolve_Empty(t *testing.T) {
	g, err := grouping.Resolve(sampleWithKeys(t))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.NodeIDConvert())
	assert.Empty(t, g.GroupMembers())
	assert.Empty(t, g.Representatives())
}

func TestGroups_AccessorsReturnCopies(t *testing.T) {
	g, err := grouping.Resolve(sampleWithKeys(t, "0_1", "1_1"))
	require.NoError(t, err)

	m, _ := g.Members(0)
	m[0] = 99
	gm := g.GroupMembers()
	gm[0][1] = 99
	again, _ := g.Members(0)
	assert.Equal(t, []int{0, 1}, again)
}
