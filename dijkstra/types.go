// Package dijkstra defines core types and configuration options for
// Dijkstra and A* searches over a gridgraph.Graph.
//
// Both searches charge the weight of every node they enter, the start
// node included, and stop the moment the goal is popped from the
// priority queue.
//
// Options:
//
//	– WithContext:     cancellation, checked once per pop.
//	– WithMaxDistance: cap on cumulative cost; costlier nodes are not entered.
//	– WithHeuristic:   replaces the Manhattan estimate used by AStar.
//	– WithLogger:      logrus logger for debug events.
//
// Errors (sentinel):
//
//	– ErrGraphNil       if the provided graph pointer is nil.
//	– ErrStartNotFound  if the start id is out of range.
//	– ErrGoalNotFound   if the goal id is out of range.
//	– ErrBadMaxDistance if MaxDistance < 0 (panics in the option).
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// Sentinel errors returned by ShortestPath and AStar.
var (
	// ErrGraphNil indicates that a nil *gridgraph.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start id is out of range.
	ErrStartNotFound = errors.New("dijkstra: start node not found")

	// ErrGoalNotFound indicates that the goal id is out of range.
	ErrGoalNotFound = errors.New("dijkstra: goal node not found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreached is the distance recorded for nodes the search never reached.
const Unreached = math.MaxInt

// Heuristic estimates the remaining cost from node id to goal.
type Heuristic func(g *gridgraph.Graph, id, goal int) int

// Manhattan is the A* default: |Δrow| + |Δcol| between id and goal.
// Node weights are not uniformly 1, so it may overestimate.
func Manhattan(g *gridgraph.Graph, id, goal int) int {
	return g.Manhattan(id, goal)
}

// Options configures the behavior of ShortestPath and AStar.
//
// Ctx         – cancellation; defaults to context.Background().
// MaxDistance – nodes whose cumulative cost would exceed it are skipped.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// Heuristic   – AStar estimate; nil selects Manhattan. Ignored by ShortestPath.
// Logger      – receives a debug event when the search finishes.
type Options struct {
	Ctx         context.Context
	MaxDistance int
	Heuristic   Heuristic
	Logger      logrus.FieldLogger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum cumulative cost.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithHeuristic replaces the AStar estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
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

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:         context.Background()
//   - MaxDistance: math.MaxInt (no limit)
//   - Heuristic:   nil (Manhattan under AStar)
//   - Logger:      logrus.StandardLogger()
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt,
		Logger:      logrus.StandardLogger(),
	}
}

// Result is the outcome of one search.
//
// Found reports whether the goal was popped. Path runs start→goal and is
// empty when Found is false. Order lists nodes in the sequence they were
// settled. Cost is the goal's distance: the sum of entered weights along
// Path, start included. Dist holds every node's best known distance,
// Unreached where none was found.
type Result struct {
	Found bool
	Path  []int
	Order []int
	Cost  int
	Dist  []int
}
