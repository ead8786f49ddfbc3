package densemat

import (
	"errors"
	"math"
)

// ErrNotSymmetric is returned when Eigen's input matrix is not symmetric.
var ErrNotSymmetric = errors.New("densemat: matrix is not symmetric")

// ErrNotSquare is returned when Eigen's input matrix is not square.
var ErrNotSquare = errors.New("densemat: matrix is not square")

// ErrEigenDidNotConverge is returned if the Jacobi sweep exceeds maxIter
// without driving every off-diagonal entry below tol.
var ErrEigenDidNotConverge = errors.New("densemat: eigen decomposition did not converge")

// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// using cyclic Jacobi rotations. Eigenvalues are returned in eigs (diagonal
// order after the final sweep, not sorted); the corresponding eigenvector
// for eigs[k] is column k of the returned matrix.
//
// tol bounds both the symmetry check and the off-diagonal convergence
// criterion; maxIter caps the number of rotation sweeps.
//
// Complexity: O(n^3) per sweep, O(maxIter*n^3) worst case.
func Eigen(m *Dense, tol float64, maxIter int) (eigs []float64, vectors *Dense, err error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, ErrNotSquare
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		p, qi, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ := a.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff, p, qi = math.Abs(off), i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app, _ := a.At(p, p)
		aqq, _ := a.At(qi, qi)
		apq, _ := a.At(p, qi)

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == qi {
				continue
			}
			aip, _ := a.At(i, p)
			aiq, _ := a.At(i, qi)
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			_ = a.Set(i, p, newIP)
			_ = a.Set(p, i, newIP)
			_ = a.Set(i, qi, newIQ)
			_ = a.Set(qi, i, newIQ)
		}
		_ = a.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = a.Set(qi, qi, s*s*app+2*c*s*apq+c*c*aqq)
		_ = a.Set(p, qi, 0.0)
		_ = a.Set(qi, p, 0.0)

		for i := 0; i < n; i++ {
			qip, _ := q.At(i, p)
			qiq, _ := q.At(i, qi)
			_ = q.Set(i, p, c*qip-s*qiq)
			_ = q.Set(i, qi, s*qip+c*qiq)
		}
	}
	if !converged {
		return nil, nil, ErrEigenDidNotConverge
	}

	eigs = make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = a.At(i, i)
	}

	return eigs, q, nil
}
