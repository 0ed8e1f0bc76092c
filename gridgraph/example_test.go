package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// ExampleNew builds a 2×3 map with one wall and prints each node's neighbors.
func ExampleNew() {
	g, err := gridgraph.New([][]int{
		{1, 1, 1},
		{1, -1, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range g.Nodes() {
		fmt.Println(n.ID, n.CanVisit(), n.Adjacents)
	}
	// Output:
	// 0 true [1 3]
	// 1 true [2 0]
	// 2 true [5 1]
	// 3 true [0]
	// 4 false []
	// 5 true [2]
}

// ExampleGraph_ConnectedComponents splits a map along a wall column.
func ExampleGraph_ConnectedComponents() {
	g, _ := gridgraph.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
	})
	fmt.Println(g.ConnectedComponents())
	path, walls, _ := g.Bridge(0, 1)
	fmt.Println(path, walls)
	// Output:
	// [[0 3] [2 5]]
	// [3 4 5] 1
}
