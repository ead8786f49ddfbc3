package densemat

// Covariance centers the columns of X (an r×c sample matrix, one row per
// observation) and returns the c×c sample covariance matrix together with
// the column means used to center it. Used by geometry.BestFitLine to turn
// a point cloud into the 3×3 matrix that Eigen decomposes for PCA.
//
// Degenerate inputs (r<2) return a zero covariance matrix rather than an
// error: a single observation has no variance to report, and geometry's
// caller treats a zero covariance the same as any other rank-deficient
// input (Eigen still returns some orthonormal basis).
func Covariance(x *Dense) (*Dense, []float64, error) {
	r, c := x.Rows(), x.Cols()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			v, err := x.At(i, j)
			if err != nil {
				return nil, nil, err
			}
			sum += v
		}
		means[j] = sum / float64(r)
	}

	cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, err
	}
	if r < 2 {
		return cov, means, nil
	}

	centered := make([][]float64, r)
	for i := 0; i < r; i++ {
		centered[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v, err := x.At(i, j)
			if err != nil {
				return nil, nil, err
			}
			centered[i][j] = v - means[j]
		}
	}

	denom := float64(r - 1)
	for a := 0; a < c; a++ {
		for b := a; b < c; b++ {
			var sum float64
			for i := 0; i < r; i++ {
				sum += centered[i][a] * centered[i][b]
			}
			v := sum / denom
			if err := cov.Set(a, b, v); err != nil {
				return nil, nil, err
			}
			if err := cov.Set(b, a, v); err != nil {
				return nil, nil, err
			}
		}
	}

	return cov, means, nil
}
