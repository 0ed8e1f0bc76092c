// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridkit.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNodeNotFound indicates a node id outside [0, Rows*Cols).
	ErrNodeNotFound = errors.New("gridgraph: node id out of range")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 links Up, Right, Down, Left.
	Conn4 Connectivity = iota
	// Conn8 links Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft.
	Conn8
)

// neighbor offsets as (dRow, dCol), clockwise from Up.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Options contains tunable parameters for graph construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures New.
type Option func(*Options)

// DefaultOptions returns Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// Node is one grid cell.
//
// ID is the row-major index r*Cols+c. Weight is the cost of entering the
// cell; a negative weight marks a wall. Adjacents lists the ids of open
// neighbors in clockwise order starting Up. Walls have no Adjacents and never
// appear in anyone else's.
type Node struct {
	ID        int
	Weight    int
	Adjacents []int
}

// CanVisit reports whether the node is not a wall.
func (n *Node) CanVisit() bool { return n.Weight >= 0 }

// Graph is an immutable arena of Rows*Cols nodes built from a weight grid.
// Searches keep their own scratch state, so a Graph may be shared by
// concurrent readers.
type Graph struct {
	Rows, Cols int
	Conn       Connectivity
	nodes      []Node
	offsets    [][2]int
}
