package selector

import (
	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/densemat"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
)

type pathPair struct{ p, q int }

// SelectBestFeet picks the pair of foot paths most likely to be the
// subject's two legs by sphere voting: for each radius in radii, every
// unordered pair of paths is scored by summing filtered over the points
// within that radius of either path, and the highest-scoring pair(s) at
// that radius each receive one vote. The pair with the most votes across
// all radii wins; ties are broken by the lexicographically lowest (p, q).
func SelectBestFeet(dist, filtered *densemat.Dense, paths [][]int, radii []float64) (int, int, error) {
	if len(paths) < 2 {
		return 0, 0, ErrFewerThanTwoFeet
	}

	var combos []pathPair
	for p := 0; p < len(paths); p++ {
		for q := p + 1; q < len(paths); q++ {
			combos = append(combos, pathPair{p, q})
		}
	}

	votes := make([]int, len(combos))

	for _, r := range radii {
		scores := make([]float64, len(combos))
		for ci, combo := range combos {
			maskP, err := InsideSpheres(dist, paths[combo.p], r)
			if err != nil {
				return 0, 0, err
			}
			maskQ, err := InsideSpheres(dist, paths[combo.q], r)
			if err != nil {
				return 0, 0, err
			}
			mask := orMasks(maskP, maskQ)
			idx := densemat.MaskIndices(mask)

			sum, err := filtered.SubmatrixSum(idx, idx)
			if err != nil {
				return 0, 0, err
			}
			scores[ci] = sum
		}

		max := scores[0]
		for _, s := range scores[1:] {
			if s > max {
				max = s
			}
		}
		for ci, s := range scores {
			if s == max {
				votes[ci]++
			}
		}
	}

	best := 0
	for ci := 1; ci < len(votes); ci++ {
		if votes[ci] > votes[best] {
			best = ci
		}
	}

	return combos[best].p, combos[best].q, nil
}

// FootToPop materializes the two chosen foot paths into point sequences.
// For consistency, both sequences receive the same head point: the head
// from the foot path with the smallest total path distance across all
// paths, not just the two selected.
func FootToPop(pop dag.Population, paths [][]int, pathDist []float64, p, q int) ([]geometry.Vec3, []geometry.Vec3) {
	pop1 := pop.Select(paths[p])
	pop2 := pop.Select(paths[q])

	minIdx := 0
	for i := 1; i < len(pathDist); i++ {
		if pathDist[i] < pathDist[minIdx] {
			minIdx = i
		}
	}
	headPoint := pop.Select(paths[minIdx][:1])[0]
	pop1[0] = headPoint
	pop2[0] = headPoint

	return pop1, pop2
}
