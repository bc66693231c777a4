package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator splits a structured node key into frame and box.
const KeySeparator = "_"

// NodeKey is a decoded "<frame>_<box>" key.
type NodeKey struct {
	Frame int
	Box   int
}

// String re-encodes k as "<frame>_<box>".
func (k NodeKey) String() string {
	return strconv.Itoa(k.Frame) + KeySeparator + strconv.Itoa(k.Box)
}

// DecodeKey splits key on the first separator: the part before is the frame
// index, the part after is the box id. Both must be canonical non-negative
// base-10 integers, so DecodeKey(key).String() == key for every accepted key.
func DecodeKey(key string) (NodeKey, error) {
	frameTok, boxTok, found := strings.Cut(key, KeySeparator)
	if !found {
		return NodeKey{}, fmt.Errorf("%w: %q has no %q separator", ErrKeyDecode, key, KeySeparator)
	}
	frame, err := decodeIndex(frameTok)
	if err != nil {
		return NodeKey{}, fmt.Errorf("%w: %q: frame %v", ErrKeyDecode, key, err)
	}
	box, err := decodeIndex(boxTok)
	if err != nil {
		return NodeKey{}, fmt.Errorf("%w: %q: box %v", ErrKeyDecode, key, err)
	}

	return NodeKey{Frame: frame, Box: box}, nil
}

// decodeIndex parses tok as a canonical non-negative integer: no sign, no
// leading zeros.
func decodeIndex(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", tok)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative", tok)
	}
	if strconv.Itoa(v) != tok {
		return 0, fmt.Errorf("%q is not in canonical form", tok)
	}

	return v, nil
}

// KeyIndex is the two-way index between CRF node ids and structured keys:
// a forward slice plus a reverse hash map, both built once.
type KeyIndex struct {
	keys []string
	ids  map[string]int
}

// NewKeyIndex indexes keys by position; keys[i] belongs to node i.
func NewKeyIndex(keys []string) (*KeyIndex, error) {
	idx := &KeyIndex{
		keys: make([]string, len(keys)),
		ids:  make(map[string]int, len(keys)),
	}
	copy(idx.keys, keys)
	for i, k := range keys {
		if prev, dup := idx.ids[k]; dup {
			return nil, fmt.Errorf("%w: %q used by nodes %d and %d", ErrDuplicateKey, k, prev, i)
		}
		idx.ids[k] = i
	}

	return idx, nil
}

// Key returns the structured key of node id.
func (x *KeyIndex) Key(id int) (string, bool) {
	if id < 0 || id >= len(x.keys) {
		return "", false
	}

	return x.keys[id], true
}

// ID returns the node id owning key.
func (x *KeyIndex) ID(key string) (int, bool) {
	id, ok := x.ids[key]

	return id, ok
}

// Len returns the number of indexed keys.
func (x *KeyIndex) Len() int { return len(x.keys) }
