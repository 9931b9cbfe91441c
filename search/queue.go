package search

import "github.com/katalvlaran/gridsearch/gridgraph"

// Queue is a FIFO frontier with O(1) membership by coordinate.
// Insertion order is expansion order.
type Queue struct {
	items   []*Node
	head    int
	members map[gridgraph.Coord]struct{}
}

// NewQueue returns an empty Queue with room for capacity nodes.
func NewQueue(capacity int) *Queue {
	return &Queue{
		items:   make([]*Node, 0, capacity),
		members: make(map[gridgraph.Coord]struct{}, capacity),
	}
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Push appends n to the back.
func (q *Queue) Push(n *Node) {
	q.items = append(q.items, n)
	q.members[n.Coord] = struct{}{}
}

// Pop removes and returns the front node, or nil when empty.
func (q *Queue) Pop() *Node {
	if q.Len() == 0 {
		return nil
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	delete(q.members, n.Coord)
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return n
}

// Contains reports whether a node for c is queued.
func (q *Queue) Contains(c gridgraph.Coord) bool {
	_, ok := q.members[c]
	return ok
}
