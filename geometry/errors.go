package geometry

import "errors"

// ErrEmptyPointSet is returned by BestFitLine when given no points.
var ErrEmptyPointSet = errors.New("geometry: empty point set")

// Jacobi eigensolver tuning for BestFitLine's 3x3 covariance decomposition.
// The matrix is always 3x3 regardless of how many points are fit, so a
// fixed small iteration cap is enough to converge well past float64
// precision; see densemat.Eigen.
const (
	eigenTolerance = 1e-12
	eigenMaxIter   = 100
)
