// Package engine is the single entry point hosts call to run a search.
//
// Run validates its input, takes the grid's search gate so painting is
// rejected for the duration of the run (gridgraph.ErrSearchInProgress),
// dispatches to bfs or astar, logs the outcome and releases the gate.
//
//	res, err := engine.Run(g, g.Start(), g.End(), engine.AStar,
//	    search.WithContext(ctx),
//	    search.WithVisitor(view),
//	    search.WithLogger(slog.Default()),
//	)
package engine
