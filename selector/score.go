package selector

import (
	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/densemat"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
)

// ScoreFunc scores how well a measured distance matches an expected
// distance. Higher is better. Implementations must handle expected == 0
// without producing NaN or Inf.
type ScoreFunc func(measured, expected float64) float64

// InverseRatioScore is the canonical score function: 1 - (measured/expected
// - 1)^2, which peaks at 1 when measured == expected and falls off
// symmetrically as the ratio departs from 1. When expected is zero the
// ratio is undefined, so the function reports a score of 0 instead of
// dividing by zero.
func InverseRatioScore(measured, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	ratio := measured/expected - 1

	return 1 - ratio*ratio
}

// ScoreMatrix computes the n x n measured-distance matrix and the
// corresponding n x n score matrix for a population, scoring a pair (i, j)
// against the expected distance for their label pair in full. Pairs whose
// label combination has no entry in full — including i == j — score 0.
func ScoreMatrix(pop dag.Population, full dag.LabelAdjacency, score ScoreFunc) (*densemat.Dense, *densemat.Dense, error) {
	n := pop.Len()
	dist, err := densemat.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	scores, err := densemat.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	points := pop.Points()
	labels := pop.Labels()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			measured := geometry.Distance(points[i], points[j])
			if err := dist.Set(i, j, measured); err != nil {
				return nil, nil, err
			}

			expected, ok := lookupExpected(full, labels[i], labels[j])
			if !ok {
				continue
			}
			if err := scores.Set(i, j, score(measured, expected)); err != nil {
				return nil, nil, err
			}
		}
	}

	return scores, dist, nil
}

// lookupExpected returns the expected distance between a candidate of
// label a and one of label b, checking both directions of full since a
// caller may query the pair in either order.
func lookupExpected(full dag.LabelAdjacency, a, b dag.PartLabel) (float64, bool) {
	if a == b {
		return 0, false
	}
	if dests, ok := full[a]; ok {
		if v, ok := dests[b]; ok {
			return v, true
		}
	}
	if dests, ok := full[b]; ok {
		if v, ok := dests[a]; ok {
			return v, true
		}
	}

	return 0, false
}
