package gridgraph

// ReachableFrom returns every traversable cell connected to c, including c,
// in breadth-first discovery order (neighbors enumerated up, down, left, right).
// Returns nil when c is out of bounds or a Wall.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ReachableFrom(c Coord) []Coord {
	if !g.IsTraversable(c) {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, g.rows*g.cols)
	seen[g.index(c)] = true
	queue := []Coord{c}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := Coord{Row: u.Row + d.Row, Col: u.Col + d.Col}
			if !g.InBounds(v) || g.cells[g.index(v)] == Wall {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Connected reports whether End is reachable from Start without crossing walls.
func (g *Grid) Connected() bool {
	for _, c := range g.ReachableFrom(g.start) {
		if c == g.end {
			return true
		}
	}

	return false
}
