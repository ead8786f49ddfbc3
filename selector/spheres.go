package selector

import "github.com/ajhynes7/depth-gait-analysis/densemat"

// InsideSpheres reports, for each of the n points backing dist, whether it
// lies within radius r of some point in path. A path's own points are
// always included, since their distance to themselves is 0.
func InsideSpheres(dist *densemat.Dense, path []int, r float64) ([]bool, error) {
	n := dist.Rows()
	in := make([]bool, n)

	for _, j := range path {
		for i := 0; i < n; i++ {
			d, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if d <= r {
				in[i] = true
			}
		}
	}

	return in, nil
}

func orMasks(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] || b[i]
	}

	return out
}
