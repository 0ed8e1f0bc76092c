// Package gridgraph treats a 2D grid of weighted cells as a graph for the
// search packages bfs, dfs and dijkstra.
//
// What:
//
//   - New builds a Rows×Cols arena of Nodes in row-major order.
//   - Negative weights are walls: they keep their node, get no edges, and
//     never appear in another node's Adjacents.
//   - Open cells link to open neighbors in fixed clockwise order from Up
//     (Up, Right, Down, Left under Conn4).
//   - ConnectedComponents groups open cells; Bridge finds the fewest walls
//     to open between two groups.
//
// Why:
//
//   - Game maps: reachable-region detection, tile pathfinding.
//   - Node ids are dense, so searches keep predecessor and distance state in
//     plain slices sized Len().
//
// Complexity:
//
//   - New:                 O(R×C×d), Memory: O(R×C×d)  (d = 4 or 8).
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C).
//   - Bridge:              O(R×C×d), Memory: O(R×C).
//
// Options:
//
//   - WithConnectivity(Conn4 | Conn8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNodeNotFound: id outside [0, Rows*Cols).
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
