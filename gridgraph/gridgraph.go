// Package gridgraph turns a rectangular grid of integer weights into a
// graph of cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Row-major node ids with O(1) coordinate conversion
//   - Identification of connected components of open cells
//   - Minimal wall-opening bridges between components
//
// Cells with weight < 0 are walls; cells with weight ≥ 0 are open.
package gridgraph

import (
	"fmt"
)

// New builds a Graph from a non-empty, rectangular 2D slice where
// weights[r][c] is the cost of entering cell (r,c).
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C×d) time and memory.
func New(weights [][]int, opts ...Option) (*Graph, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(weights), len(weights[0])
	for r, row := range weights {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		Rows:    rows,
		Cols:    cols,
		Conn:    o.Conn,
		nodes:   make([]Node, rows*cols),
		offsets: offsets4,
	}
	if o.Conn == Conn8 {
		g.offsets = offsets8
	}

	// Every cell gets a node so ids stay row-major even across walls.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.Index(r, c)
			g.nodes[id] = Node{ID: id, Weight: weights[r][c]}
		}
	}
	for id := range g.nodes {
		n := &g.nodes[id]
		if !n.CanVisit() {
			continue
		}
		r, c := g.Coordinate(id)
		for _, d := range g.offsets {
			nr, nc := r+d[0], c+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if v := g.Index(nr, nc); g.nodes[v].CanVisit() {
				n.Adjacents = append(n.Adjacents, v)
			}
		}
	}

	return g, nil
}

// Len returns Rows*Cols.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given id. The node must not be modified.
func (g *Graph) Node(id int) (*Node, error) {
	if !g.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return &g.nodes[id], nil
}

// Nodes returns the node arena indexed by id. It must not be modified.
func (g *Graph) Nodes() []Node { return g.nodes }

// Valid reports whether id names a node.
func (g *Graph) Valid(id int) bool { return id >= 0 && id < len(g.nodes) }

// InBounds reports whether (r,c) lies within the grid boundaries.
func (g *Graph) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Index maps (r,c) to its row-major id: r*Cols + c.
func (g *Graph) Index(r, c int) int { return r*g.Cols + c }

// Coordinate converts a row-major id back to (r,c).
func (g *Graph) Coordinate(id int) (r, c int) { return id / g.Cols, id % g.Cols }

// Manhattan returns |Δrow| + |Δcol| between two node ids.
func (g *Graph) Manhattan(a, b int) int {
	ar, ac := g.Coordinate(a)
	br, bc := g.Coordinate(b)

	return abs(ar-br) + abs(ac-bc)
}

// PathCost sums the weights of every node on path, start included.
func (g *Graph) PathCost(path []int) int {
	total := 0
	for _, id := range path {
		total += g.nodes[id].Weight
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
