// Package dijkstra provides weighted pathfinding on a gridgraph.Graph:
// ShortestPath (Dijkstra) and AStar.
//
// Overview:
//
//   - The cost of a path is the sum of the weights of the nodes it enters,
//     the start node's own weight included. Walls (negative weight) are
//     never entered because gridgraph gives them no edges.
//   - A min-heap from package pqueue always expands the next-cheapest node;
//     AStar adds a remaining-cost estimate to the key.
//   - Both stop as soon as the goal is popped and return its predecessor
//     chain as a start→goal Path.
//
// Heuristic:
//
//   - AStar defaults to Manhattan distance over decoded (row, col). With
//     weights other than 1 this can overestimate, so AStar may settle for a
//     costlier path than ShortestPath on some maps. The estimate is kept
//     as-is; pass WithHeuristic to supply another.
//
// Reentrancy:
//
//   - Distances, predecessors and the queue belong to the call, so
//     concurrent searches over one Graph are safe.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy decrease-key.
//
// Example usage:
//
//	res, err := dijkstra.AStar(g, 0, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Path, res.Cost)
//	}
package dijkstra
