package selector

import "github.com/ajhynes7/depth-gait-analysis/dag"

// PathsToFoot traces the shortest path to every candidate carrying
// footLabel and returns them as a matrix: one row per foot, each row
// holding the node indices from head to foot. Rows whose predecessor
// chain is broken are dropped; if dropping them leaves no path at all and
// at least one candidate was dropped for exactly that reason, PathsToFoot
// reports dag.ErrPathBroken instead of silently returning an empty
// matrix, so the caller can distinguish "every foot present has a broken
// chain" from "there were no feet to begin with". Surviving paths are
// returned without error even if there is only one of them.
func PathsToFoot(dist []float64, prev []int, labels []dag.PartLabel, footLabel dag.PartLabel) ([][]int, []float64, error) {
	if len(dist) != len(prev) || len(dist) != len(labels) {
		return nil, nil, dag.ErrLabelMismatch
	}

	var paths [][]int
	var pathDist []float64
	broken := false

	for node, label := range labels {
		if label != footLabel {
			continue
		}

		path, err := dag.TracePath(prev, dist, node)
		if err != nil {
			broken = true
			continue
		}
		paths = append(paths, path)
		pathDist = append(pathDist, dist[node])
	}

	if len(paths) == 0 && broken {
		return paths, pathDist, dag.ErrPathBroken
	}

	return paths, pathDist, nil
}
