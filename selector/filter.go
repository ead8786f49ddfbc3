package selector

import (
	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/densemat"
)

// FilterByPath produces a matrix the same shape as scores, zero
// everywhere except at (PATHS[r,a], PATHS[r,b]) for every path row r and
// every allowed label pair (a, b) in full — keeping only scores between
// points that both lie on some foot path and are connected in the body
// part graph. Only the (a, b) direction named in full is copied, not its
// reverse; the score matrix is already symmetric in measured distance, so
// this is not a loss of information, just a fixed half of it.
func FilterByPath(scores *densemat.Dense, paths [][]int, full dag.LabelAdjacency) (*densemat.Dense, error) {
	n := scores.Rows()
	filtered, err := densemat.NewDense(n, scores.Cols())
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		for a, dests := range full {
			for b := range dests {
				if int(a) >= len(path) || int(b) >= len(path) {
					continue
				}
				pa, pb := path[a], path[b]
				v, err := scores.At(pa, pb)
				if err != nil {
					return nil, err
				}
				if err := filtered.Set(pa, pb, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return filtered, nil
}
