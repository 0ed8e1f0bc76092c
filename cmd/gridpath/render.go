package main

import (
	"strings"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// render draws the map one character per cell:
//
//	#  wall
//	S  start, E end (pathfinders only)
//	*  on the path
//	.  open
func render(g *gridgraph.Graph, path []int, start, end int, marksEnd bool) string {
	onPath := make([]bool, g.Len())
	for _, id := range path {
		onPath[id] = true
	}

	var b strings.Builder
	for _, n := range g.Nodes() {
		switch {
		case !n.CanVisit():
			b.WriteByte('#')
		case n.ID == start:
			b.WriteByte('S')
		case marksEnd && n.ID == end:
			b.WriteByte('E')
		case onPath[n.ID]:
			b.WriteByte('*')
		default:
			b.WriteByte('.')
		}
		if (n.ID+1)%g.Cols == 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
