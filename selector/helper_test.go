package selector_test

import "github.com/ajhynes7/depth-gait-analysis/densemat"

func densemat3() (*densemat.Dense, error) {
	return densemat.NewDense(3, 3)
}

func setSym(m *densemat.Dense, i, j int, v float64) {
	_ = m.Set(i, j, v)
	_ = m.Set(j, i, v)
}
