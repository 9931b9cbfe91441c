package search

import "github.com/katalvlaran/gridsearch/gridgraph"

// Node is one discovered cell in a search tree.
//
// Parent points back toward the start node (whose Parent is nil); nodes never
// reference their children. G, H and F are only meaningful to A*.
// A Node must not be modified once it has been expanded.
type Node struct {
	Coord  gridgraph.Coord
	Parent *Node
	G      int // cost estimate from start
	H      int // heuristic estimate to goal
	F      int // G + H
}

// NewNode creates a node for c reached from parent (nil for the root).
func NewNode(c gridgraph.Coord, parent *Node) *Node {
	return &Node{Coord: c, Parent: parent}
}

// Equal reports whether n and other address the same cell.
// Parent and cost fields take no part in equality.
func (n *Node) Equal(other *Node) bool {
	return n.Coord == other.Coord
}

// Path follows Parent links back to the root and returns the cells from the
// root (exclusive) to n (inclusive). The root alone yields an empty path.
func (n *Node) Path() []gridgraph.Coord {
	path := []gridgraph.Coord{}
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		path = append(path, cur.Coord)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
