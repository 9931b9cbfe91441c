package gridgraph

import (
	"container/list"
)

// MinBreach finds the fewest Wall cells whose removal joins Start to End.
// Returns those walls in path order (Start→End) and their count; an empty
// slice with cost 0 means the endpoints are already connected.
//
// Behavior:
//  1. 0–1 BFS from Start:
//     • Moving into an Empty cell → cost 0
//     • Moving into a Wall cell   → cost 1
//  2. Stop when End is popped.
//  3. Reconstruct the path via predecessors and keep its Wall cells.
//
// Complexity: O(R·C) time, Memory: O(R·C) for distance and prev slices.
func (g *Grid) MinBreach() (walls []Coord, cost int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := g.index(g.start), g.index(g.end)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)
	reached := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			reached = true
			break
		}
		uc := g.coordinate(u)
		for _, d := range neighborOffsets {
			vc := Coord{Row: uc.Row + d.Row, Col: uc.Col + d.Col}
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if g.cells[v] == Wall {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !reached {
		return nil, 0, ErrNoPath
	}
	walls = []Coord{}
	for at := dst; at >= 0; at = prev[at] {
		if g.cells[at] == Wall {
			walls = append(walls, g.coordinate(at))
		}
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}

	return walls, dist[dst], nil
}
