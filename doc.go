// Package gridsearch is a grid pathfinding engine: paint walls on a
// rectangular board, fix a start and an end cell, and watch breadth-first
// search or A* discover a path between them.
//
// What is gridsearch?
//
//	A small, deterministic search engine plus the hosts that drive it:
//		• Grid primitives: cells, walls, fixed endpoints, 4-neighborhood
//		• Searches: breadth-first (BFS) and A* with a Manhattan heuristic
//		• Visit hooks: every expanded cell is reported as it is expanded
//		• Boards: YAML and plain-text board files
//		• Hosts: an ASCII renderer, a websocket stream and a CLI
//
// Why gridsearch?
//
//   - Deterministic: fixed neighbor order and FIFO tie-breaks, so a board
//     always produces the same visits and the same path
//   - Observable: searches call back per visit and poll for cancellation
//   - Safe to share: painting is refused while a search holds the grid
//
// Packages:
//
//	gridgraph/  Grid, Coord, CellState, neighbors, reachability, breach
//	search/     nodes, FIFO queue, open list, Result, Visitor, options
//	bfs/        breadth-first search
//	astar/      A* search
//	engine/     algorithm selection and the grid search gate
//	board/      YAML and text board files
//	render/     ASCII view of visits and path
//	stream/     websocket host streaming visit events
//
// Quick ASCII example:
//
//	S . # .
//	. . # .
//	. . . E
//
// A path exists around the wall; BFS and A* both find one of length 5.
//
//	go install github.com/katalvlaran/gridsearch/cmd/gridsearch@latest
package gridsearch
