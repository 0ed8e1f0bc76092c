// Package search runs any of the grid traversals or pathfinders behind one
// call, selected by Algorithm.
//
// Traversals (DFS, BFS, RecursiveDFS) always report Found and return their
// visit order as Path. Pathfinders (PathBFS, Dijkstra, AStar) report
// Found == false with an empty Path when the goal cannot be reached.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name that names
// no search.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects the search Run performs.
type Algorithm int

const (
	// DFS is the stack-based depth-first traversal.
	DFS Algorithm = iota
	// BFS is the breadth-first traversal.
	BFS
	// RecursiveDFS is the pre-order recursive traversal.
	RecursiveDFS
	// PathBFS is breadth-first pathfinding (fewest edges).
	PathBFS
	// Dijkstra is cheapest-path search.
	Dijkstra
	// AStar is Dijkstra guided by Manhattan distance.
	AStar
)

var names = [...]string{
	DFS:          "dfs",
	BFS:          "bfs",
	RecursiveDFS: "recursive-dfs",
	PathBFS:      "path-bfs",
	Dijkstra:     "dijkstra",
	AStar:        "astar",
}

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, RecursiveDFS, PathBFS, Dijkstra, AStar}
}

// String returns the lower-case name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return names[a]
}

// Pathfinding reports whether a search looks for a specific goal.
func (a Algorithm) Pathfinding() bool {
	return a == PathBFS || a == Dijkstra || a == AStar
}

// ParseAlgorithm maps a name such as "astar" or "path-bfs" to its
// Algorithm. Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures Run.
type Option func(*Options)

// Options holds settings forwarded to the selected search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug events from Run and the search it calls.
	Logger logrus.FieldLogger
}

// DefaultOptions returns a background context and the standard logrus logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the common outcome of Run.
//
// Order is the visitation order. Cost is the sum of node weights along
// Path, start included; it is 0 for traversals.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      []int
	Order     []int
	Cost      int
}

// Run executes alg on g from start. end is used by pathfinders only.
// Errors come from the selected package (nil graph, ids out of range,
// cancellation) or are ErrUnknownAlgorithm.
func Run(g *gridgraph.Graph, alg Algorithm, start, end int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.WithField("algorithm", alg.String())

	res, err := dispatch(g, alg, start, end, o, log)
	if err != nil {
		return nil, err
	}
	res.Algorithm = alg
	if alg.Pathfinding() && res.Found {
		res.Cost = g.PathCost(res.Path)
	}
	log.WithFields(logrus.Fields{
		"start": start,
		"end":   end,
		"found": res.Found,
		"steps": len(res.Path),
	}).Debug("search: done")

	return res, nil
}

func dispatch(g *gridgraph.Graph, alg Algorithm, start, end int, o Options, log logrus.FieldLogger) (*Result, error) {
	switch alg {
	case DFS, RecursiveDFS:
		run := dfs.DFS
		if alg == RecursiveDFS {
			run = dfs.Recursive
		}
		r, err := run(g, start, dfs.WithContext(o.Ctx), dfs.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return traversal(r.Order), nil

	case BFS:
		r, err := bfs.BFS(g, start, bfs.WithContext(o.Ctx), bfs.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return traversal(r.Order), nil

	case PathBFS:
		r, err := bfs.PathTo(g, start, end, bfs.WithContext(o.Ctx), bfs.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return &Result{Found: r.Found, Path: r.Path, Order: r.Order}, nil

	case Dijkstra, AStar:
		run := dijkstra.ShortestPath
		if alg == AStar {
			run = dijkstra.AStar
		}
		r, err := run(g, start, end, dijkstra.WithContext(o.Ctx), dijkstra.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return &Result{Found: r.Found, Path: r.Path, Order: r.Order}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

func traversal(order []int) *Result {
	return &Result{Found: true, Path: order, Order: order}
}
