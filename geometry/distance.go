package geometry

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec3) float64 {
	return p.Sub(q).Norm()
}

// ConsecutiveDistances returns the Euclidean distance between each pair of
// adjacent points in path: len(path)-1 values. Used by package lengths to
// turn a shortest foot path into per-segment length observations.
func ConsecutiveDistances(path []Vec3) []float64 {
	if len(path) < 2 {
		return nil
	}
	out := make([]float64, len(path)-1)
	for i := 1; i < len(path); i++ {
		out[i-1] = Distance(path[i-1], path[i])
	}

	return out
}
