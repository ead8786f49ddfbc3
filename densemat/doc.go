// Package densemat implements a small dense-matrix toolkit (row-major
// storage, column covariance, symmetric Jacobi eigendecomposition) used by
// package geometry for principal-component line fitting and by package
// selector for per-frame score/distance matrices.
package densemat
