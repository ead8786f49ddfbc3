package dag

import "math"

// ShortestPath runs single-source shortest path over g from every node
// whose label equals HeadLabel, relaxing edges in ascending node-index
// order. That order is a valid topological order whenever g came from
// BuildGraph over a validated Population, so one forward sweep suffices —
// no priority queue, no revisits.
//
// dist[v] is the minimum accumulated cost from any source to v ((+Inf) if
// v is unreached); prev[v] is the predecessor of v on that path, or -1 if
// v is itself a source or unreached. Ties are broken by first-writer-wins:
// a strictly-less comparison means the earliest-relaxed predecessor is
// kept on equal cost.
func ShortestPath(g Graph, labels []PartLabel) ([]float64, []int, error) {
	if len(g) != len(labels) {
		return nil, nil, ErrLabelMismatch
	}

	n := len(g)
	dist := make([]float64, n)
	prev := make([]int, n)

	haveSource := false
	for v := 0; v < n; v++ {
		if labels[v] == HeadLabel {
			dist[v] = 0
			haveSource = true
		} else {
			dist[v] = math.Inf(1)
		}
		prev[v] = -1
	}
	if !haveSource {
		return nil, nil, ErrNoSourceNode
	}

	for u := 0; u < n; u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		for v, w := range g[u] {
			if cand := dist[u] + w; cand < dist[v] {
				dist[v] = cand
				prev[v] = u
			}
		}
	}

	return dist, prev, nil
}

// TracePath walks the predecessor chain produced by ShortestPath back from
// target to its source, returning the path in source-to-target order
// (inclusive of both endpoints). It returns ErrPathBroken if the chain
// terminates at a node whose distance is not zero — that node is not a
// source, so target is not connected to one (as for a node ShortestPath
// left unreached).
func TracePath(prev []int, dist []float64, target int) ([]int, error) {
	var reversed []int
	node := target
	for {
		reversed = append(reversed, node)
		if prev[node] == -1 {
			break
		}
		node = prev[node]
	}
	if dist[node] != 0 {
		return nil, ErrPathBroken
	}

	path := make([]int, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}

	return path, nil
}
