// Package vocab is the trained label vocabulary shared by every package
// structure built from one dataset: the label↔id bijection and the label,
// attribute and edge-type counts. A Vocabulary is immutable and safe to share
// across goroutines.
package vocab

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// ErrInvalidVocabulary indicates inconsistent vocabulary input.
var ErrInvalidVocabulary = errors.New("vocab: invalid vocabulary")

// Vocabulary maps label strings to dense ids 0..NumLabel-1 and back.
type Vocabulary struct {
	labels        *hashbidimap.Map // string → int, inverse int → string
	numAttribType int
	numEdgeType   int
}

// New builds a Vocabulary; labels[i] receives id i.
func New(labels []string, numAttribType, numEdgeType int) (*Vocabulary, error) {
	if numAttribType < 0 || numEdgeType < 0 {
		return nil, fmt.Errorf("%w: negative count (attrib=%d, edge types=%d)",
			ErrInvalidVocabulary, numAttribType, numEdgeType)
	}
	m := hashbidimap.New()
	for id, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label at id %d", ErrInvalidVocabulary, id)
		}
		if prev, dup := m.Get(label); dup {
			return nil, fmt.Errorf("%w: label %q at ids %d and %d", ErrInvalidVocabulary, label, prev, id)
		}
		m.Put(label, id)
	}

	return &Vocabulary{labels: m, numAttribType: numAttribType, numEdgeType: numEdgeType}, nil
}

// NumLabel returns the number of labels.
func (v *Vocabulary) NumLabel() int { return v.labels.Size() }

// NumAttribType returns the attribute feature cardinality.
func (v *Vocabulary) NumAttribType() int { return v.numAttribType }

// NumEdgeType returns the number of distinct edge categories.
func (v *Vocabulary) NumEdgeType() int { return v.numEdgeType }

// Label returns the label string for id.
func (v *Vocabulary) Label(id int) (string, bool) {
	label, ok := v.labels.GetKey(id)
	if !ok {
		return "", false
	}

	return label.(string), true
}

// ID returns the id of label.
func (v *Vocabulary) ID(label string) (int, bool) {
	id, ok := v.labels.Get(label)
	if !ok {
		return 0, false
	}

	return id.(int), true
}

// Has reports whether id is a known label id.
func (v *Vocabulary) Has(id int) bool {
	_, ok := v.labels.GetKey(id)

	return ok
}

// Labels returns all labels ordered by id.
func (v *Vocabulary) Labels() []string {
	out := make([]string, v.NumLabel())
	for i := range out {
		out[i], _ = v.Label(i)
	}

	return out
}
