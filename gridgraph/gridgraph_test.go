package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// scenario is the 5×5 map whose column 1 is walled except on the last row.
var scenario = [][]int{
	{1, -1, 1, 3, 1},
	{1, -1, 1, 1, 1},
	{1, -1, 8, 5, 1},
	{1, -1, 3, 1, 1},
	{1, 1, 1, 1, 1},
}

func open(rows, cols int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = 1
		}
	}

	return grid
}

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.New(tc.grid)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_AdjacencyOrder checks the clockwise-from-Up neighbor order.
func TestNew_AdjacencyOrder(t *testing.T) {
	g, err := gridgraph.New(open(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 9, g.Len())

	nodes := g.Nodes()
	assert.Equal(t, []int{1, 5, 7, 3}, nodes[4].Adjacents)
	assert.Equal(t, []int{1, 3}, nodes[0].Adjacents)
	assert.Equal(t, []int{5, 7}, nodes[8].Adjacents)

	g8, err := gridgraph.New(open(3, 3), gridgraph.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, g8.Conn)
	assert.Equal(t, []int{1, 2, 5, 8, 7, 6, 3, 0}, g8.Nodes()[4].Adjacents)
}

// TestNew_Walls checks that walls keep their node but have no edges either way.
func TestNew_Walls(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{1, -1},
		{0, 1},
	})
	require.NoError(t, err)

	wall, err := g.Node(1)
	require.NoError(t, err)
	assert.False(t, wall.CanVisit())
	assert.Empty(t, wall.Adjacents)

	n0, _ := g.Node(0)
	assert.Equal(t, []int{2}, n0.Adjacents)
	n3, _ := g.Node(3)
	assert.Equal(t, []int{2}, n3.Adjacents)

	zero, _ := g.Node(2)
	assert.True(t, zero.CanVisit(), "zero weight is open")
	assert.Equal(t, []int{0, 3}, zero.Adjacents)
}

func TestGraph_Scenario(t *testing.T) {
	g, err := gridgraph.New(scenario)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows)
	assert.Equal(t, 5, g.Cols)

	for id := 0; id < g.Len(); id++ {
		n, err := g.Node(id)
		require.NoError(t, err)
		for _, v := range n.Adjacents {
			m, _ := g.Node(v)
			assert.True(t, m.CanVisit())
			assert.Contains(t, m.Adjacents, id, "open adjacency is symmetric")
		}
	}
	// node 21 is the only opening in column 1
	n21, _ := g.Node(21)
	assert.Equal(t, []int{22, 20}, n21.Adjacents)
}

func TestGraph_Coordinates(t *testing.T) {
	g, err := gridgraph.New(open(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 7, g.Index(1, 3))
	r, c := g.Coordinate(7)
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5, g.Manhattan(0, 11))

	assert.True(t, g.InBounds(2, 3))
	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {0, 4}, {0, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]))
	}
	assert.True(t, g.Valid(11))
	assert.False(t, g.Valid(12))
	assert.False(t, g.Valid(-1))

	_, err = g.Node(12)
	assert.ErrorIs(t, err, gridgraph.ErrNodeNotFound)
}

func TestGraph_PathCost(t *testing.T) {
	g, err := gridgraph.New(scenario)
	require.NoError(t, err)
	assert.Equal(t, 9, g.PathCost([]int{0, 5, 10, 15, 20, 21, 22, 23, 24}))
	assert.Equal(t, 0, g.PathCost(nil))
}

func TestConnectedComponents(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{-1, -1, -1},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}, {2, 5}}, g.ConnectedComponents())

	all, err := gridgraph.New(scenario)
	require.NoError(t, err)
	assert.Len(t, all.ConnectedComponents(), 1)
}

func TestBridge(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{-1, -1, -1},
	})
	require.NoError(t, err)

	path, walls, err := g.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, walls)
	assert.Equal(t, []int{3, 4, 5}, path)

	_, _, err = g.Bridge(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = g.Bridge(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

func TestBridge_SameComponent(t *testing.T) {
	g, err := gridgraph.New(open(2, 2))
	require.NoError(t, err)

	path, walls, err := g.Bridge(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, walls)
	assert.Len(t, path, 1)
}
