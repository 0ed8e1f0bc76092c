// Package dfs provides depth-first traversal of a gridgraph.Graph in two
// flavors that realize different visit orders on branching maps.
//
// DFS keeps an explicit stack. A node is visited when popped, and its
// unvisited neighbors that are not already stacked are pushed in adjacency
// order (Up, Right, Down, Left). The stack pops them in reverse, so at every
// branch the Left neighbor is explored first. On a 2×2 open grid started at
// 0 this gives 0, 2, 3, 1.
//
// Recursive descends into neighbors in adjacency order as soon as it meets
// them, so the same grid yields 0, 1, 3, 2.
//
// On a path with no branching the two agree.
//
// Both return a Result with visit Order, per-id Depth and Parent along the
// DFS tree, and Visited flags. Scratch state belongs to the call, so
// concurrent traversals over one Graph are safe.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnVisit(fn)       pre-order hook; error aborts traversal.
//   - WithMaxDepth(limit)   stops beyond the given depth (>=0).
//   - WithLogger(l)         logrus logger for debug events.
package dfs
