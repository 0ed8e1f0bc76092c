// Package bfs provides breadth-first search over a gridgraph.Graph,
// returning visit order, depths, parent links, and unweighted paths.
package bfs

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/gridgraph"
)

const noGoal = -1

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph *gridgraph.Graph
	nodes []gridgraph.Node
	opts  Options
	goal  int
	queue []queueItem
	seen  []bool
	res   *Result
}

// BFS visits every node reachable from start in level order. Neighbors are
// enqueued in adjacency order and never enqueued twice.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, the context
// error on cancellation, or any OnVisit error.
func BFS(g *gridgraph.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, noGoal, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run(start)
}

// PathTo runs BFS from start and stops as soon as goal is dequeued. On
// success Result.Found is true and Result.Path holds the fewest-edge route
// start→goal. An unreachable goal is not an error.
// Returns ErrGoalNotFound in addition to the errors of BFS.
func PathTo(g *gridgraph.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g != nil && !g.Valid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}
	w, err := newWalker(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if err := w.run(start); err != nil {
		return w.res, err
	}
	if w.res.Found {
		w.res.Path = w.res.PathTo(goal)
	}

	return w.res, nil
}

func newWalker(g *gridgraph.Graph, start, goal int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.Len()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return &walker{
		graph: g,
		nodes: g.Nodes(),
		opts:  o,
		goal:  goal,
		seen:  make([]bool, n),
		res:   res,
	}, nil
}

// run seeds the queue with start and processes it until empty, goal,
// error, or cancellation.
func (w *walker) run(start int) error {
	w.enqueue(start, 0, -1)
	err := w.loop()
	w.opts.Logger.WithFields(logrus.Fields{
		"start":   start,
		"goal":    w.goal,
		"visited": len(w.res.Order),
		"found":   w.res.Found,
	}).Debug("bfs: finished")

	return err
}

// enqueue marks id seen at depth d, records its parent, and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.seen[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	ctx := w.opts.Ctx
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return err
		}
		if item.id == w.goal {
			w.res.Found = true
			return nil
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.nodes[item.id].Adjacents {
			if !w.seen[nbr] {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}
