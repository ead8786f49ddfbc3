package selector

import (
	"errors"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
)

// ProcessFrame runs the full per-frame pipeline: build the labeled DAG
// over pop, find the shortest path to every candidate of the skeleton's
// terminal label, score and filter the population, and vote on the best
// pair of foot paths. It returns two labeled skeletons, head-to-foot, with
// a shared head point.
func ProcessFrame(pop dag.Population, labels []dag.PartLabel, full dag.LabelAdjacency, radii []float64, cost dag.CostFunc, score ScoreFunc) ([]geometry.Vec3, []geometry.Vec3, error) {
	if pop.Len() == 0 {
		return nil, nil, ErrEmptyPopulation
	}

	footLabel := full.MaxLabel()
	if missingPartType(labels, full, footLabel) {
		return nil, nil, ErrMissingPartType
	}

	consecutive := full.ConsecutiveOnly()
	graph, err := dag.BuildGraph(pop, consecutive, cost)
	if err != nil {
		return nil, nil, err
	}

	dist, prev, err := dag.ShortestPath(graph, labels)
	if err != nil {
		if errors.Is(err, dag.ErrNoSourceNode) {
			return nil, nil, ErrNoHeadCandidate
		}
		return nil, nil, err
	}

	paths, pathDist, err := PathsToFoot(dist, prev, labels, footLabel)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) < 2 {
		return nil, nil, ErrFewerThanTwoFeet
	}

	scores, distMatrix, err := ScoreMatrix(pop, full, score)
	if err != nil {
		return nil, nil, err
	}

	filtered, err := FilterByPath(scores, paths, full)
	if err != nil {
		return nil, nil, err
	}

	p, q, err := SelectBestFeet(distMatrix, filtered, paths, radii)
	if err != nil {
		return nil, nil, err
	}

	pop1, pop2 := FootToPop(pop, paths, pathDist, p, q)

	return pop1, pop2, nil
}

// missingPartType reports whether the frame has zero candidates for some
// label the connection table names, other than footLabel itself. A
// missing interior label (e.g. no Thigh candidate at all) breaks every
// chain running through it; catching it here gives a precise diagnosis
// instead of letting it surface later as a generic broken path.
func missingPartType(labels []dag.PartLabel, full dag.LabelAdjacency, footLabel dag.PartLabel) bool {
	present := make(map[dag.PartLabel]bool, len(labels))
	for _, l := range labels {
		present[l] = true
	}

	named := make(map[dag.PartLabel]bool)
	for a, dests := range full {
		named[a] = true
		for b := range dests {
			named[b] = true
		}
	}

	for label := range named {
		if label == footLabel {
			continue
		}
		if !present[label] {
			return true
		}
	}

	return false
}
