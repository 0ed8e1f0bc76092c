// Package gridkit is an in-memory toolkit of generic containers and grid
// pathfinding.
//
// What is in the box?
//
//	• Associative containers behind one Map contract:
//		hash tables with chaining, open addressing or no collision handling,
//		and a binary search tree with optional AVL balancing
//	• A binary-heap priority queue
//	• A weighted grid graph where negative cells are walls
//	• Traversals: iterative DFS, recursive DFS, BFS
//	• Pathfinding: BFS, Dijkstra, A*
//
// Why gridkit?
//
//   - Generic – containers take any comparable or ordered key.
//   - Reentrant searches – every search owns its scratch state, so one Graph
//     can serve many concurrent searches.
//   - Idiomatic options – each package configures through functional options
//     and reports failures through sentinel errors.
//
// Packages:
//
//	core/       Map contract, shared errors, nil-key detection
//	hashtable/  Table with Chaining, OpenAddressing and Naive policies
//	searchtree/ Tree (BST) and AVL variant with lazy traversals
//	pqueue/     Queue, a min-priority binary heap
//	gridgraph/  Graph of weighted cells, components, bridges
//	bfs/        breadth-first traversal and pathfinding
//	dfs/        stack-based and recursive depth-first traversal
//	dijkstra/   ShortestPath and AStar
//	search/     Run, one entry point for every search
//	cmd/gridpath command line front end
//
// Quick ASCII example:
//
//	S # . . .
//	* # . . .
//	* # . . .
//	* # . . .
//	* * * * E
//
//	a 5×5 map walled down its second column; every search reaches E along
//	the bottom row.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
