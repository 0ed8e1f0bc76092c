// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks and depth limiting.
package dfs

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrGraphNil is returned when a nil *gridgraph.Graph is passed to DFS
	// or Recursive.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start id is out of range.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...) or Recursive(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// Logger receives a debug event when the traversal finishes.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - The standard logrus logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
		Logger:   logrus.StandardLogger(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger routes traversal events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records node ids in the sequence they were visited.
	Order []int

	// Depth is the number of edges from the start per node id along the
	// DFS tree, -1 for nodes never reached.
	Depth []int

	// Parent is the id of the node each node was discovered from,
	// -1 for the start and unreached nodes.
	Parent []int

	// Visited flags every node id that appears in Order.
	Visited []bool
}

func newResult(n int) *Result {
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return res
}
