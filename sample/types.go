// Package sample holds one graph-structured data sample as seen by the CRF:
// the ordered node list (index = CRF node id), the ordered edge list, and the
// bijection between node ids and structured "<frame>_<box>" keys.
//
// A Sample is read-only once built. Edge endpoints and label ids are not
// validated here; the factor-graph builder owns those checks.
package sample

import (
	"errors"
	"fmt"
)

// Sentinel errors for sample construction and key decoding.
var (
	// ErrNodeIDOrder indicates Nodes[i].ID != i.
	ErrNodeIDOrder = errors.New("sample: node id does not match its position")

	// ErrKeyMismatch indicates the key list does not cover the node list one-to-one.
	ErrKeyMismatch = errors.New("sample: node/key count mismatch")

	// ErrDuplicateKey indicates two node ids share one structured key.
	ErrDuplicateKey = errors.New("sample: duplicate node key")

	// ErrKeyDecode indicates a structured node key is malformed.
	ErrKeyDecode = errors.New("sample: malformed node key")
)

// UnknownLabel is the label sentinel for nodes whose label is not given.
const UnknownLabel = -1

// LabelType tells whether a node's label is evidence or an inference target.
type LabelType uint8

const (
	// Unknown nodes are estimated by inference.
	Unknown LabelType = iota
	// Known nodes are conditioned on as evidence.
	Known
)

// Valid reports whether t is Known or Unknown.
func (t LabelType) Valid() bool { return t == Known || t == Unknown }

// String implements fmt.Stringer.
func (t LabelType) String() string {
	switch t {
	case Known:
		return "KNOWN"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("LabelType(%d)", uint8(t))
	}
}

// Node is one CRF variable.
type Node struct {
	ID        int
	Label     int // label id or UnknownLabel
	LabelType LabelType
}

// Edge is one pairwise connection between node ids A and B.
type Edge struct {
	A, B     int
	EdgeType int
}

// Sample is a single graph-structured data sample.
type Sample struct {
	Nodes []Node
	Edges []Edge
	Keys  *KeyIndex
}

// New builds a Sample from copies of nodes, edges and keys. keys[i] is the
// structured key of nodes[i]. Nodes must be dense: nodes[i].ID == i.
func New(nodes []Node, edges []Edge, keys []string) (*Sample, error) {
	if len(keys) != len(nodes) {
		return nil, fmt.Errorf("%w: %d nodes, %d keys", ErrKeyMismatch, len(nodes), len(keys))
	}
	for i, n := range nodes {
		if n.ID != i {
			return nil, fmt.Errorf("%w: position %d holds id %d", ErrNodeIDOrder, i, n.ID)
		}
	}
	idx, err := NewKeyIndex(keys)
	if err != nil {
		return nil, err
	}

	s := &Sample{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
		Keys:  idx,
	}
	copy(s.Nodes, nodes)
	copy(s.Edges, edges)

	return s, nil
}

// NumNode returns the number of nodes.
func (s *Sample) NumNode() int { return len(s.Nodes) }

// NumEdge returns the number of edges.
func (s *Sample) NumEdge() int { return len(s.Edges) }

// NodeKey decodes the structured key of node id.
func (s *Sample) NodeKey(id int) (NodeKey, error) {
	key, ok := s.Keys.Key(id)
	if !ok {
		return NodeKey{}, fmt.Errorf("%w: node %d has no key", ErrKeyMismatch, id)
	}

	return DecodeKey(key)
}
