package search

import (
	"container/heap"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// openItem wraps a node with its insertion sequence for stable ordering.
type openItem struct {
	node  *Node
	seq   uint64
	index int
}

// openHeap implements heap.Interface ordered by (F, seq).
type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].node.F != h[j].node.F {
		return h[i].node.F < h[j].node.F
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *openHeap) Push(x any) {
	it := x.(*openItem)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// OpenList is the A* frontier: Pop returns the node with the lowest F, and
// among equal F the one inserted first. Several entries may share a
// coordinate; membership queries see all of them.
type OpenList struct {
	heap    openHeap
	seq     uint64
	byCoord map[gridgraph.Coord][]*openItem
}

// NewOpenList returns an empty OpenList.
func NewOpenList() *OpenList {
	return &OpenList{byCoord: make(map[gridgraph.Coord][]*openItem)}
}

// Len returns the number of entries, duplicates included.
func (o *OpenList) Len() int { return o.heap.Len() }

// Push inserts n unconditionally.
func (o *OpenList) Push(n *Node) {
	it := &openItem{node: n, seq: o.seq}
	o.seq++
	heap.Push(&o.heap, it)
	o.byCoord[n.Coord] = append(o.byCoord[n.Coord], it)
}

// Pop removes and returns the lowest-F node, or nil when empty.
func (o *OpenList) Pop() *Node {
	if o.heap.Len() == 0 {
		return nil
	}
	it := heap.Pop(&o.heap).(*openItem)
	same := o.byCoord[it.node.Coord]
	for i, s := range same {
		if s == it {
			same = append(same[:i], same[i+1:]...)
			break
		}
	}
	if len(same) == 0 {
		delete(o.byCoord, it.node.Coord)
	} else {
		o.byCoord[it.node.Coord] = same
	}

	return it.node
}

// Contains reports whether any entry addresses c.
func (o *OpenList) Contains(c gridgraph.Coord) bool {
	return len(o.byCoord[c]) > 0
}

// Admits reports whether candidate should be added: false if an entry with
// the same coordinate already has F ≤ candidate.F, true otherwise. Worse
// entries already present are left in place.
func (o *OpenList) Admits(candidate *Node) bool {
	for _, it := range o.byCoord[candidate.Coord] {
		if candidate.F >= it.node.F {
			return false
		}
	}

	return true
}
