package gridgraph

// ConnectedComponents finds all contiguous regions of open cells following
// node adjacency. Components are ordered by their smallest id; ids within a
// component are in BFS discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if seen[i0] || !g.nodes[i0].CanVisit() {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.nodes[queue[qi]].Adjacents {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
