// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start id is out of range.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGoalNotFound is returned when the goal id is out of range.
	ErrGoalNotFound = errors.New("bfs: goal node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a node is dequeued, with its depth from the
	// start. If it returns an error, the search aborts and propagates it.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Logger receives a debug event when the search finishes.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op OnVisit
//   - no depth limit
//   - the standard logrus logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		Logger:   logrus.StandardLogger(),
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

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger routes search events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Order: node ids in dequeue sequence.
//   - Depth: edges from the start per node id, -1 if never enqueued.
//   - Parent: predecessor per node id, -1 for the start and unreached nodes.
//   - Found, Path: set by PathTo only. Path runs start→goal and is empty
//     when Found is false.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
	Found  bool
	Path   []int
}

// PathTo reconstructs the path from the start node to dest by following
// Parent links. Returns nil if dest was not reached.
func (r *Result) PathTo(dest int) []int {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil
	}
	var path []int
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
