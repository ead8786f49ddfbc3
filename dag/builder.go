package dag

import "github.com/ajhynes7/depth-gait-analysis/geometry"

// Graph is an index-keyed arena adjacency representation: Graph[u][v] is
// the edge weight from node u to node v. Unlike a pointer- or string-ID
// graph, node identity is the candidate's position in the population that
// produced the graph, and edges only ever run from a lower index to a
// higher one given a correctly sorted population.
type Graph []map[int]float64

// BuildGraph builds the labeled DAG over pop: an edge runs from node i to
// node j (i < j) whenever j's label is reachable from i's label through
// consecutive, and its weight is cost(measured, expected) where measured
// is the Euclidean distance between the two candidate points and expected
// is the adjacency entry for the pair.
//
// pop must satisfy its label sort invariant; BuildGraph returns
// ErrLabelsNotSorted otherwise.
func BuildGraph(pop Population, consecutive LabelAdjacency, cost CostFunc) (Graph, error) {
	if err := pop.Validate(); err != nil {
		return nil, err
	}

	n := pop.Len()
	g := make(Graph, n)
	for i := range g {
		g[i] = map[int]float64{}
	}

	for i := 0; i < n; i++ {
		dests, ok := consecutive[pop.Candidates[i].Label]
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			expected, ok := dests[pop.Candidates[j].Label]
			if !ok {
				continue
			}
			measured := geometry.Distance(pop.Candidates[i].Point, pop.Candidates[j].Point)
			g[i][j] = cost(measured, expected)
		}
	}

	return g, nil
}
