// Package bfs provides breadth-first search over a gridgraph.Graph.
//
// What
//
//   - BFS explores nodes in non-decreasing edge count from a start node and
//     returns a Result with:
//   - Order: dequeue sequence
//   - Depth: per-id distance in edges (-1 when unreached)
//   - Parent: per-id predecessor in the BFS tree (-1 for the start)
//   - PathTo additionally stops the instant the goal is dequeued and fills
//     Result.Found and Result.Path (start→goal).
//   - OnVisit hook per dequeued node; may abort with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in gridgraph adjacency order (clockwise from Up),
//	so the visit sequence is fully reproducible.
//
// Reentrancy
//
//	All scratch state (queue, seen flags, parents) belongs to the call.
//	Any number of searches may run concurrently over one Graph.
//
// Complexity (V = Rows×Cols, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.PathTo(g, 0, 24, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrGoalNotFound, ErrOptionViolation,
//	    // ctx.Err(), or an OnVisit error
//	}
//	if res.Found {
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0).
//   - WithOnVisit(fn):   hook during visit; returning error aborts.
//   - WithLogger(l):     logrus logger for debug events.
package bfs
