// Package dfs implements iterative and recursive depth-first search on a
// gridgraph.Graph.
//
// Key features:
//   - DFS(g, start, opts...): explicit stack; a node is visited when popped
//   - Recursive(g, start, opts...): pre-order recursion in adjacency order
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks.
//   - Memory: O(V) for the stack (or recursion) and per-node slices.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if start is out of range.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// walker encapsulates state during DFS.
type walker struct {
	nodes []gridgraph.Node
	opts  Options
	res   *Result
}

func newWalker(g *gridgraph.Graph, start int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	return &walker{nodes: g.Nodes(), opts: o, res: newResult(g.Len())}, nil
}

// DFS performs stack-based depth-first search from start.
//
// The start is pushed; each iteration pops a node, visits it, then pushes
// every neighbor that is neither visited nor already on the stack, in
// adjacency order. Since the last pushed neighbor is popped first, branches
// are explored in reverse adjacency order (Left, Down, Right, Up).
func DFS(g *gridgraph.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	err = w.iterate(start)
	w.done("dfs: iterative traversal finished", start)

	return w.res, err
}

func (w *walker) iterate(start int) error {
	queued := make([]bool, len(w.nodes))
	stack := []int{start}
	queued[start] = true
	w.res.Depth[start] = 0

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := w.visit(id); err != nil {
			return err
		}

		next := w.res.Depth[id] + 1
		if w.opts.MaxDepth >= 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nid := range w.nodes[id].Adjacents {
			if w.res.Visited[nid] || queued[nid] {
				continue
			}
			queued[nid] = true
			w.res.Parent[nid] = id
			w.res.Depth[nid] = next
			stack = append(stack, nid)
		}
	}

	return nil
}

// Recursive performs pre-order recursive depth-first search from start:
// visit a node, then recurse into each unvisited neighbor in adjacency
// order.
func Recursive(g *gridgraph.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	err = w.traverse(start, -1, 0)
	w.done("dfs: recursive traversal finished", start)

	return w.res, err
}

// traverse visits id at the given depth, recursing to neighbors.
func (w *walker) traverse(id, parent, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Parent[id] = parent
	w.res.Depth[id] = depth
	if err := w.visit(id); err != nil {
		return err
	}
	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		return nil
	}
	for _, nid := range w.nodes[id].Adjacents {
		if w.res.Visited[nid] {
			continue
		}
		if err := w.traverse(nid, id, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// visit records id in Order and runs the pre-order hook.
func (w *walker) visit(id int) error {
	w.res.Visited[id] = true
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}

func (w *walker) done(msg string, start int) {
	w.opts.Logger.WithFields(logrus.Fields{
		"start":   start,
		"visited": len(w.res.Order),
	}).Debug(msg)
}
