package pipeline

import "errors"

// Sentinel errors returned by RunTrial itself, as opposed to the
// per-frame/per-pass errors from dag, selector, lengths and walking that
// KindOf translates.
var (
	// ErrNoFrames indicates the source has no frames at all for the
	// requested trial.
	ErrNoFrames = errors.New("pipeline: trial has no frames")

	// ErrNoFrameSucceeded indicates every frame in the trial failed
	// selection; there is nothing to estimate lengths from or build a
	// walking pass out of.
	ErrNoFrameSucceeded = errors.New("pipeline: no frame in the trial produced a usable skeleton")

	// ErrNoHypotheses indicates the source had no hypotheses for a frame
	// id it nonetheless listed in Frames. Reported per-frame as
	// FrameIncomplete; it never aborts the batch.
	ErrNoHypotheses = errors.New("pipeline: source has no hypotheses for frame")
)
