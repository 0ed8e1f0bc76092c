package gridgraph

import (
	"container/list"
)

// Bridge finds the fewest walls to open so that component srcComp connects
// to component dstComp, as indexed by ConnectedComponents(). Walls are
// crossed along grid offsets, ignoring Adjacents.
// Returns the sequence of node ids from a src cell to a dst cell and the
// number of walls on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1 BFS from all srcComp cells:
//     • entering an open cell costs 0
//     • entering a wall costs 1
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct the path through predecessors.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (g *Graph) Bridge(srcComp, dstComp int) (path []int, walls int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	inDst := make([]bool, len(g.nodes))
	for _, i := range comps[dstComp] {
		inDst[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(g.nodes))
	prev := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	// Walls are crossable, so some dst cell is always reached.
	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if inDst[u] {
			target = u
			break
		}
		ur, uc := g.Coordinate(u)
		for _, d := range g.offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			step := 0
			if !g.nodes[v].CanVisit() {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
