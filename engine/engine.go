package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// ErrUnknownAlgorithm is returned for an Algorithm outside {BFS, AStar}.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm selects the search strategy.
type Algorithm int

const (
	// BFS is breadth-first search.
	BFS Algorithm = iota
	// AStar is A* with the Manhattan heuristic.
	AStar
)

// Algorithms lists every supported Algorithm.
var Algorithms = []Algorithm{BFS, AStar}

// String returns "bfs" or "astar".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive
// and accepts "bfs", "breadth-first", "astar", "a*" and "a-star".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Set implements pflag.Value.
func (a *Algorithm) Set(name string) error {
	v, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string { return "algorithm" }

// Run searches g from start to end with the chosen algorithm.
//
// Returns search.ErrNilGrid, a wrapped search.ErrInvalidEndpoint,
// ErrUnknownAlgorithm, or gridgraph.ErrSearchInProgress if another search
// already holds g. Unreachable and Cancelled are reported via Result.Outcome.
func Run(g *gridgraph.Grid, start, end gridgraph.Coord, alg Algorithm, opts ...search.Option) (search.Result, error) {
	if g == nil {
		return search.Result{}, search.ErrNilGrid
	}
	var fn func(*gridgraph.Grid, gridgraph.Coord, gridgraph.Coord, ...search.Option) (search.Result, error)
	switch alg {
	case BFS:
		fn = bfs.Search
	case AStar:
		fn = astar.Search
	default:
		return search.Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	if err := g.BeginSearch(); err != nil {
		return search.Result{}, err
	}
	defer g.EndSearch()

	logger := search.NewOptions(opts...).Logger
	began := time.Now()
	res, err := fn(g, start, end, opts...)
	if err != nil {
		logger.Warn("search rejected", "algorithm", alg, "error", err)
		return search.Result{}, err
	}
	logger.Info("search complete",
		"algorithm", alg,
		"outcome", res.Outcome,
		"expanded", res.Expanded,
		"path", len(res.Path),
		"elapsed", time.Since(began))

	return res, nil
}
