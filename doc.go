// Package depthgaitanalysis reconstructs a walking person's skeletal pose,
// frame by frame, from noisy 3D body-part hypotheses produced by an
// upstream depth-sensor processor, and resolves which foot is left versus
// right consistently across a walking pass.
//
// Each frame carries several candidate 3D points per body-part type (Head,
// Hip, Thigh, Knee, Calf, Foot — often more than one per type due to
// left/right ambiguity and detection noise). The module selects, per
// frame, a single coherent set of parts that plausibly forms a human
// skeleton, estimates the expected inter-part segment lengths across many
// frames, and assigns a consistent left/right labeling to the two chosen
// feet across an entire walking pass.
//
// The work is organized under seven subpackages:
//
//	geometry/ — vectors, best-fit line (PCA), signed side-of-plane test
//	densemat/ — row-major dense matrix backing score/distance matrices
//	dag/      — labeled population, per-frame DAG builder, shortest path
//	selector/ — per-frame skeleton selection: path extraction, scoring,
//	            sphere-voting foot selection
//	lengths/  — iterative segment-length estimation over a frame window
//	walking/  — line-of-motion fit and left/right side correction
//	pipeline/ — RunTrial, the single entry point wiring the rest together
//
// A caller implements pipeline.HypothesesSource over its own storage of
// per-frame candidates and calls pipeline.RunTrial once per trial:
//
//	result, err := pipeline.RunTrial(ctx, source, trialID,
//	    pipeline.WithRadii([]float64{50, 100, 150}))
//
// Image decoding, coordinate projection, trial-table file parsing,
// plotting, and downstream gait-parameter computation are explicitly out
// of scope; they sit on either side of this module as the caller's own
// concern.
package depthgaitanalysis
