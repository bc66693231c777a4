// Package grouping partitions CRF nodes into recurrent units.
//
// The CRF keeps one variable per (frame, box); the recurrent model shares
// one hidden state per box across frames. Resolve picks, for every box, the
// node with the smallest frame index as the representative and maps every
// node of that box to it. Downstream code routes per-frame CRF values to the
// shared unit through NodeIDConvert and back through GroupMembers.
package grouping

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/crfpack/sample"
)

// Groups is the immutable result of Resolve.
type Groups struct {
	convert []int        // node id → representative id
	members *treemap.Map // representative id → []int members, ascending
	boxes   map[int]int  // representative id → box id
}

type best struct {
	node  int
	frame int
}

// Resolve groups the nodes of s by box id.
//
// Nodes are scanned in ascending id order. Keys are canonical and unique, so
// no two nodes share a (frame, box) and the minimal frame picks exactly one
// node per box. A key that fails to decode aborts with sample.ErrKeyDecode.
func Resolve(s *sample.Sample) (*Groups, error) {
	n := s.NumNode()
	keys := make([]sample.NodeKey, n)
	byBox := make(map[int]best)

	// pass 1: best-so-far representative per box
	for id := 0; id < n; id++ {
		k, err := s.NodeKey(id)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", id, err)
		}
		keys[id] = k
		if cur, seen := byBox[k.Box]; !seen || k.Frame < cur.frame {
			byBox[k.Box] = best{node: id, frame: k.Frame}
		}
	}

	// pass 2: map every node to its box representative, collect members
	g := &Groups{
		convert: make([]int, n),
		members: treemap.NewWithIntComparator(),
		boxes:   make(map[int]int, len(byBox)),
	}
	for id := 0; id < n; id++ {
		rep := byBox[keys[id].Box].node
		g.convert[id] = rep
		g.boxes[rep] = keys[id].Box
		var list []int
		if v, ok := g.members.Get(rep); ok {
			list = v.([]int)
		}
		// ids arrive ascending, so each list stays sorted
		g.members.Put(rep, append(list, id))
	}
	klog.V(3).Infof("grouping: %d nodes in %d boxes", n, g.members.Size())

	return g, nil
}

// Len returns the number of groups.
func (g *Groups) Len() int { return g.members.Size() }

// NumNode returns the number of grouped nodes.
func (g *Groups) NumNode() int { return len(g.convert) }

// Representative returns the representative of node id.
func (g *Groups) Representative(id int) (int, bool) {
	if id < 0 || id >= len(g.convert) {
		return -1, false
	}

	return g.convert[id], true
}

// Members returns a copy of the ascending member list of rep.
func (g *Groups) Members(rep int) ([]int, bool) {
	v, ok := g.members.Get(rep)
	if !ok {
		return nil, false
	}
	list := v.([]int)
	out := make([]int, len(list))
	copy(out, list)

	return out, true
}

// BoxOf returns the box id of the group represented by rep.
func (g *Groups) BoxOf(rep int) (int, bool) {
	box, ok := g.boxes[rep]

	return box, ok
}

// Representatives returns the representative ids, ascending.
func (g *Groups) Representatives() []int {
	keys := g.members.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}

	return out
}

// Each calls fn for every group in ascending representative order.
// members is shared with g and must not be modified.
func (g *Groups) Each(fn func(rep int, members []int)) {
	g.members.Each(func(k, v interface{}) {
		fn(k.(int), v.([]int))
	})
}

// NodeIDConvert returns a fresh node id → representative id map.
func (g *Groups) NodeIDConvert() map[int]int {
	out := make(map[int]int, len(g.convert))
	for id, rep := range g.convert {
		out[id] = rep
	}

	return out
}

// GroupMembers returns a fresh representative id → ascending members map.
func (g *Groups) GroupMembers() map[int][]int {
	out := make(map[int][]int, g.Len())
	g.Each(func(rep int, members []int) {
		cp := make([]int, len(members))
		copy(cp, members)
		out[rep] = cp
	})

	return out
}
