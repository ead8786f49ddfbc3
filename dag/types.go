package dag

import "github.com/ajhynes7/depth-gait-analysis/geometry"

// PartLabel is a body-part type, a small non-negative integer in head-to-
// foot order: Head=0, Hip=1, Thigh=2, Knee=3, Calf=4, Foot=5 for the
// default six-part skeleton. Ordering is significant; it defines both DAG
// edge direction and topological order.
type PartLabel uint8

// HeadLabel is the source label every shortest-path search originates from.
const HeadLabel PartLabel = 0

// Candidate is a single 3D hypothesis for one body-part type.
type Candidate struct {
	Point geometry.Vec3
	Label PartLabel
}

// Population is one frame's set of candidate points, sorted ascending by
// Label (the sort order is the canonical node numbering used throughout
// this package: node i is Candidates[i]).
type Population struct {
	Candidates []Candidate
}

// NewPopulation builds a Population from parallel points/labels slices,
// sorting both by label. It does not mutate its inputs.
func NewPopulation(points []geometry.Vec3, labels []PartLabel) (Population, error) {
	if len(points) != len(labels) {
		return Population{}, ErrLabelMismatch
	}

	candidates := make([]Candidate, len(points))
	for i := range points {
		candidates[i] = Candidate{Point: points[i], Label: labels[i]}
	}
	sortCandidatesByLabel(candidates)

	return Population{Candidates: candidates}, nil
}

// Len returns the number of candidates (nodes) in the population.
func (p Population) Len() int { return len(p.Candidates) }

// Labels returns the label of every candidate, in node-index order.
func (p Population) Labels() []PartLabel {
	labels := make([]PartLabel, len(p.Candidates))
	for i, c := range p.Candidates {
		labels[i] = c.Label
	}

	return labels
}

// Points returns the point of every candidate, in node-index order.
func (p Population) Points() []geometry.Vec3 {
	points := make([]geometry.Vec3, len(p.Candidates))
	for i, c := range p.Candidates {
		points[i] = c.Point
	}

	return points
}

// MaxLabel returns the largest label present in the population.
func (p Population) MaxLabel() PartLabel {
	var max PartLabel
	for _, c := range p.Candidates {
		if c.Label > max {
			max = c.Label
		}
	}

	return max
}

// Select returns the points of the candidates at idx, in the given order
// (not re-sorted) — used to materialize a foot path
// (dag/selector's PATHS row) into its actual 3D points.
func (p Population) Select(idx []int) []geometry.Vec3 {
	out := make([]geometry.Vec3, len(idx))
	for i, n := range idx {
		out[i] = p.Candidates[n].Point
	}

	return out
}

// Validate checks the label sort invariant: labels must be monotonically
// non-decreasing by node index.
func (p Population) Validate() error {
	for i := 1; i < len(p.Candidates); i++ {
		if p.Candidates[i].Label < p.Candidates[i-1].Label {
			return ErrLabelsNotSorted
		}
	}

	return nil
}

func sortCandidatesByLabel(c []Candidate) {
	// Insertion sort: populations are small (single-digit K, typically a
	// few dozen candidates per frame) and this keeps the sort stable
	// without pulling in sort.Slice's reflection-based comparator for a
	// hot per-frame path.
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].Label < c[j-1].Label; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

// LabelAdjacency maps a source label to a map of destination label to
// expected Euclidean distance between a point of the source label and a
// point of the destination label. Every key b in an inner map satisfies
// b > a. For non-adjacent pairs (e.g. Knee to Foot) the expected distance
// is the sum of the intervening consecutive lengths — callers build this
// with LengthsToAdjacency rather than populating it by hand.
type LabelAdjacency map[PartLabel]map[PartLabel]float64

// ConsecutiveOnly returns the projection of full keeping only pairs with
// b == a+1 — the DAG used for shortest path. Every key of full appears in
// the result, possibly with an empty inner map.
func (full LabelAdjacency) ConsecutiveOnly() LabelAdjacency {
	consecutive := make(LabelAdjacency, len(full))
	for a := range full {
		consecutive[a] = map[PartLabel]float64{}
	}
	for a, dests := range full {
		for b, length := range dests {
			if b-a == 1 {
				consecutive[a][b] = length
			}
		}
	}

	return consecutive
}

// PartConnection is one allowed (a, b) label pair with b > a, as supplied
// by the external part-connection table.
type PartConnection struct {
	A, B PartLabel
}

// DefaultPartConnections returns the default six-part (Head..Foot)
// connection table: {(0,1),(1,2),(1,3),(2,3),(3,4),(3,5),(4,5)}.
func DefaultPartConnections() []PartConnection {
	return []PartConnection{
		{0, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}, {4, 5},
	}
}

// LengthsToAdjacency expands a vector of consecutive-part lengths
// (lengths[i] = expected distance from label i to label i+1) into a full
// LabelAdjacency over connections, summing intervening consecutive lengths
// for non-adjacent pairs.
func LengthsToAdjacency(connections []PartConnection, lengths []float64) LabelAdjacency {
	adj := make(LabelAdjacency)
	for _, conn := range connections {
		if _, ok := adj[conn.A]; !ok {
			adj[conn.A] = map[PartLabel]float64{}
		}
		var sum float64
		for i := conn.A; i < conn.B; i++ {
			sum += lengths[i]
		}
		adj[conn.A][conn.B] = sum
	}

	return adj
}

// MaxLabel returns the largest destination label appearing anywhere in
// full — the skeleton's terminal body-part label (e.g. Foot), which is a
// property of the connection table, not of any single frame's present
// candidates. A frame missing every candidate of that label still reports
// the correct terminal label, which is what lets callers distinguish "no
// candidate of the terminal type" from "this frame's skeleton is shorter".
func (full LabelAdjacency) MaxLabel() PartLabel {
	var max PartLabel
	for a, dests := range full {
		if a > max {
			max = a
		}
		for b := range dests {
			if b > max {
				max = b
			}
		}
	}

	return max
}

// CostFunc weights a DAG edge from a measured distance and the expected
// distance for the edge's label pair. Must be non-negative.
type CostFunc func(measured, expected float64) float64

// SquaredError is the canonical cost function: (measured - expected)^2.
func SquaredError(measured, expected float64) float64 {
	d := measured - expected

	return d * d
}
