package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crfpack/vocab"
)

func TestVocabulary_Bijection(t *testing.T) {
	labels := []string{"0", "1,2", "4", "1,2,4"}
	v, err := vocab.New(labels, 2048, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, v.NumLabel())
	assert.Equal(t, 2048, v.NumAttribType())
	assert.Equal(t, 3, v.NumEdgeType())
	assert.Equal(t, labels, v.Labels())

	for id, label := range labels {
		got, ok := v.Label(id)
		require.True(t, ok)
		assert.Equal(t, label, got)
		back, ok := v.ID(label)
		require.True(t, ok)
		assert.Equal(t, id, back)
		assert.True(t, v.Has(id))
	}
	assert.False(t, v.Has(4))
	assert.False(t, v.Has(-1))
	_, ok := v.Label(4)
	assert.False(t, ok)
	_, ok = v.ID("missing")
	assert.False(t, ok)
}

func TestVocabulary_Invalid(t *testing.T) {
	_, err := vocab.New([]string{"a", "a"}, 1, 1)
	assert.ErrorIs(t, err, vocab.ErrInvalidVocabulary)

	_, err = vocab.New([]string{"a", ""}, 1, 1)
	assert.ErrorIs(t, err, vocab.ErrInvalidVocabulary)

	_, err = vocab.New([]string{"a"}, -1, 1)
	assert.ErrorIs(t, err, vocab.ErrInvalidVocabulary)

	_, err = vocab.New([]string{"a"}, 1, -1)
	assert.ErrorIs(t, err, vocab.ErrInvalidVocabulary)
}

func TestVocabulary_EmptyIsAllowed(t *testing.T) {
	// an empty vocabulary is representable; the feature layout rejects it
	v, err := vocab.New(nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v.NumLabel())
	assert.Empty(t, v.Labels())
}
