package geometry

import "github.com/ajhynes7/depth-gait-analysis/densemat"

// BestFitLine returns the line of best fit through points: a centroid the
// line passes through, and its unit direction (the dominant principal
// component of the centered points).
//
// Direction's sign is arbitrary but stable within one call — two calls on
// the same points return the same sign, but a caller must not assume the
// sign agrees with any particular notion of "forward" (see package
// walking's disambiguation step). Degenerate input (fewer than two
// distinct points, or points that leave the covariance matrix rank
// deficient) still returns a direction; Jacobi rotation on a
// rank-deficient symmetric matrix converges to some orthonormal
// eigenbasis rather than failing.
func BestFitLine(points []Vec3) (centroid, direction Vec3, err error) {
	if len(points) == 0 {
		return Vec3{}, Vec3{}, ErrEmptyPointSet
	}

	x, buildErr := toDense(points)
	if buildErr != nil {
		return Vec3{}, Vec3{}, buildErr
	}

	cov, means, covErr := densemat.Covariance(x)
	if covErr != nil {
		return Vec3{}, Vec3{}, covErr
	}
	centroid = Vec3{means[0], means[1], means[2]}

	eigs, vectors, eigErr := densemat.Eigen(cov, eigenTolerance, eigenMaxIter)
	if eigErr != nil {
		return Vec3{}, Vec3{}, eigErr
	}

	dominant := argmaxAbs(eigs)
	dx, _ := vectors.At(0, dominant)
	dy, _ := vectors.At(1, dominant)
	dz, _ := vectors.At(2, dominant)
	direction = Vec3{dx, dy, dz}.Normalize()
	if direction == (Vec3{}) {
		// Guard against a zero eigenvector column. A rank-zero covariance
		// (e.g. a single point) does not reach here: Eigen then returns the
		// identity basis, whose first column is already (1,0,0).
		direction = Vec3{1, 0, 0}
	}

	return centroid, direction, nil
}

func toDense(points []Vec3) (*densemat.Dense, error) {
	x, err := densemat.NewDense(len(points), 3)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		if err := x.Set(i, 0, p.X); err != nil {
			return nil, err
		}
		if err := x.Set(i, 1, p.Y); err != nil {
			return nil, err
		}
		if err := x.Set(i, 2, p.Z); err != nil {
			return nil, err
		}
	}

	return x, nil
}

func argmaxAbs(values []float64) int {
	best := 0
	for i, v := range values {
		if abs(v) > abs(values[best]) {
			best = i
		}
	}

	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
