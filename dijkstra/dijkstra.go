// Package dijkstra implements Dijkstra's algorithm and A* on weighted grids.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V pops that do work.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Distance of the start node is its own weight, not zero.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and skipping entries for nodes already settled.
//   - Relaxation is strict: equal-cost alternatives never replace a predecessor.
package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/pqueue"
)

// ShortestPath finds the cheapest path from start to goal, where the cost
// of a path is the sum of the weights of every node on it.
//
// Returns a Result with Found == false when goal is unreachable (walls,
// other component, or MaxDistance). Errors are reserved for invalid input
// and cancellation:
//
//  1. g must be non-nil (ErrGraphNil).
//  2. start must be a valid id (ErrStartNotFound).
//  3. goal must be a valid id (ErrGoalNotFound).
func ShortestPath(g *gridgraph.Graph, start, goal int, opts ...Option) (*Result, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return r.run("dijkstra: shortest path finished")
}

// AStar is ShortestPath with the queue keyed by distance + heuristic
// (Manhattan unless WithHeuristic is given). The expansion order differs,
// the returned cost equals ShortestPath's whenever the heuristic never
// overestimates.
func AStar(g *gridgraph.Graph, start, goal int, opts ...Option) (*Result, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	h := r.opts.Heuristic
	if h == nil {
		h = Manhattan
	}
	r.estimate = func(id int) int { return h(g, id, goal) }

	return r.run("dijkstra: a* finished")
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g     *gridgraph.Graph
	nodes []gridgraph.Node
	opts  Options
	start int
	goal  int

	// estimate is the remaining-cost guess; zero for Dijkstra.
	estimate func(id int) int

	dist    []int  // best known cost per node id
	prev    []int  // predecessor per node id, -1 if none
	visited []bool // settled nodes

	// pq holds node ids keyed by dist + estimate.
	pq  *pqueue.Queue[int, int]
	res *Result
}

func newRunner(g *gridgraph.Graph, start, goal int, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.Valid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	n := g.Len()
	r := &runner{
		g:        g,
		nodes:    g.Nodes(),
		opts:     cfg,
		start:    start,
		goal:     goal,
		estimate: func(int) int { return 0 },
		dist:     make([]int, n),
		prev:     make([]int, n),
		visited:  make([]bool, n),
		pq:       pqueue.New[int, int](),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = Unreached
		r.prev[i] = -1
	}
	r.res = &Result{Dist: r.dist}

	return r, nil
}

func (r *runner) run(msg string) (*Result, error) {
	r.init()
	err := r.process()
	if err == nil && r.res.Found {
		r.res.Cost = r.dist[r.goal]
		r.res.Path = r.path()
	}
	r.opts.Logger.WithFields(logrus.Fields{
		"start":   r.start,
		"goal":    r.goal,
		"settled": len(r.res.Order),
		"found":   r.res.Found,
		"cost":    r.res.Cost,
	}).Debug(msg)

	return r.res, err
}

// init charges the start node its own weight and queues it.
func (r *runner) init() {
	d := r.nodes[r.start].Weight
	if d > r.opts.MaxDistance {
		return
	}
	r.dist[r.start] = d
	r.pq.Enqueue(r.start, r.priority(d, r.start))
}

// process pops the lowest-priority node until the goal is settled or the
// queue runs dry.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, _ := r.pq.Dequeue()
		// Stale duplicate of an already settled node.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)

		if u == r.goal {
			r.res.Found = true
			return nil
		}
		r.relax(u)
	}

	return nil
}

// relax offers every unsettled neighbor v the cost dist[u] + weight(v) and
// re-queues v when that is strictly cheaper than what it has.
func (r *runner) relax(u int) {
	for _, v := range r.nodes[u].Adjacents {
		if r.visited[v] {
			continue
		}
		// dist[u] <= MaxDistance and a walled start may be negative, so the
		// clamped subtraction cannot wrap.
		w := r.nodes[v].Weight
		if w > r.opts.MaxDistance-max(r.dist[u], 0) {
			continue
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.Enqueue(v, r.priority(nd, v))
	}
}

// priority is d plus the estimate for id, saturating at math.MaxInt.
func (r *runner) priority(d, id int) int {
	e := r.estimate(id)
	if d > 0 && e > math.MaxInt-d {
		return math.MaxInt
	}

	return d + e
}

// path follows predecessors from goal back to start, then reverses.
func (r *runner) path() []int {
	var p []int
	for at := r.goal; at >= 0; at = r.prev[at] {
		p = append(p, at)
	}
	slices.Reverse(p)

	return p
}
