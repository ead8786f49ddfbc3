package lengths

import (
	"math"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
	"github.com/ajhynes7/depth-gait-analysis/selector"
)

// Frame is one image frame's body-part hypotheses, as consumed by
// Estimate.
type Frame struct {
	Population dag.Population
	Labels     []dag.PartLabel
}

// Estimate finds the expected distance between every pair of consecutive
// body-part labels by repeatedly running the shortest-path search with
// the previous iteration's estimate as edge weights, taking the median
// segment length observed across the first nFrames frames, and stopping
// when no segment changes by more than eps from the previous iteration.
//
// The first iteration starts from all-zero lengths, so each edge costs
// cost(measured, 0) and the initial "shortest" path to each foot is the
// one with the least cost over the raw measured distances; later
// iterations refine it using the accumulating estimate.
//
// Estimate returns the last computed lengths alongside
// ErrLengthNotConverged if maxIter iterations elapse without converging.
func Estimate(frames []Frame, nFrames int, cost dag.CostFunc, eps float64, maxIter int) ([]float64, error) {
	footLabel := terminalLabel(frames)
	lengths := make([]float64, footLabel)

	if nFrames > len(frames) {
		nFrames = len(frames)
	}

	for iter := 0; iter < maxIter; iter++ {
		prevLengths := append([]float64(nil), lengths...)
		adj := consecutiveAdjacency(lengths)

		samples := make([][]float64, footLabel)

		for _, frame := range frames[:nFrames] {
			segments, err := consecutiveSegments(frame, adj, cost, footLabel)
			if err != nil {
				continue
			}
			for i, d := range segments {
				samples[i] = append(samples[i], d)
			}
		}

		for i := range lengths {
			lengths[i] = Median(samples[i])
		}

		if maxAbsDiff(lengths, prevLengths) < eps {
			return lengths, nil
		}
	}

	return lengths, ErrLengthNotConverged
}

func terminalLabel(frames []Frame) dag.PartLabel {
	var max dag.PartLabel
	for _, frame := range frames {
		for _, label := range frame.Labels {
			if label > max {
				max = label
			}
		}
	}

	return max
}

func consecutiveAdjacency(lengths []float64) dag.LabelAdjacency {
	adj := make(dag.LabelAdjacency, len(lengths)+1)
	for i, length := range lengths {
		adj[dag.PartLabel(i)] = map[dag.PartLabel]float64{dag.PartLabel(i + 1): length}
	}
	adj[dag.PartLabel(len(lengths))] = map[dag.PartLabel]float64{}

	return adj
}

// consecutiveSegments runs the shortest-path search for one frame, picks
// the minimum-distance path to footLabel, and returns the distances
// between its consecutive points.
func consecutiveSegments(frame Frame, adj dag.LabelAdjacency, cost dag.CostFunc, footLabel dag.PartLabel) ([]float64, error) {
	graph, err := dag.BuildGraph(frame.Population, adj, cost)
	if err != nil {
		return nil, err
	}

	dist, prev, err := dag.ShortestPath(graph, frame.Labels)
	if err != nil {
		return nil, err
	}

	paths, pathDist, err := selector.PathsToFoot(dist, prev, frame.Labels, footLabel)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, dag.ErrPathBroken
	}

	minIdx := 0
	for i := 1; i < len(pathDist); i++ {
		if pathDist[i] < pathDist[minIdx] {
			minIdx = i
		}
	}

	points := frame.Population.Select(paths[minIdx])

	return geometry.ConsecutiveDistances(points), nil
}

func maxAbsDiff(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}

	return max
}
