package pipeline

import (
	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
	"github.com/ajhynes7/depth-gait-analysis/walking"
)

// TrialID identifies one recording session: an ordered sequence of frames
// captured while a subject walked across the sensor's field of view.
type TrialID string

// FrameID identifies one frame within a trial. Frame order within a trial
// is defined by HypothesesSource.Frames, not by the numeric value of
// FrameID itself.
type FrameID int

// FrameKey addresses one frame's hypotheses across all trials.
type FrameKey struct {
	Trial TrialID
	Frame FrameID
}

// HypothesesSource is the read-only collaborator that maps a frame to its
// candidate population and per-candidate labels. Its persistence layout
// (files, a database, an in-memory fixture) is the caller's concern; pipeline
// only ever reads through this interface.
type HypothesesSource interface {
	// Hypotheses returns the population and labels for key, and ok=false if
	// key names a trial or frame the source has no data for.
	Hypotheses(key FrameKey) (pop dag.Population, labels []dag.PartLabel, ok bool)

	// Frames returns every frame id belonging to trial, in the order the
	// frames were captured. RunTrial relies on this order both to seed the
	// length-estimation window and to assemble the trial's walking pass.
	Frames(trial TrialID) []FrameID
}

// Kind is a string-stable label for why a frame or trial did not produce
// a clean result. Callers may persist Kind values; they do not change
// across releases.
type Kind string

const (
	// FrameIncomplete covers every per-frame selection failure: an empty
	// population, no head candidate, a missing interior part type, or
	// fewer than two surviving foot paths.
	FrameIncomplete Kind = "FRAME_INCOMPLETE"

	// PathBroken indicates every candidate at a frame's terminal label
	// had a broken predecessor chain rather than simply being absent.
	PathBroken Kind = "PATH_BROKEN"

	// LengthNotConverged indicates length estimation exhausted its
	// iteration budget before reaching the convergence threshold. The
	// last estimate is still usable; TrialResult carries it regardless.
	LengthNotConverged Kind = "LENGTH_NOT_CONVERGED"

	// PassTooShort indicates a walking pass had fewer than two frames
	// and could not be side-corrected.
	PassTooShort Kind = "PASS_TOO_SHORT"
)

// FrameOutcome is the per-frame result of the B-C-D selection pipeline.
// Kind is empty on success, in which case Pop1 and Pop2 hold the two
// chosen head-to-foot skeletons.
type FrameOutcome struct {
	Pop1, Pop2 []geometry.Vec3
	Kind       Kind
}

// TrialResult is the complete output of RunTrial: one outcome per frame
// the source reported, the trial's estimated segment lengths, and the
// side-corrected walking pass built from the frames that succeeded.
//
// LengthsKind is set to LengthNotConverged when length estimation ran out
// of iterations; Lengths still holds its last estimate in that case, left
// for the caller to accept or discard.
type TrialResult struct {
	Frames      map[FrameID]FrameOutcome
	Lengths     []float64
	LengthsKind Kind
	Passes      []walking.Pass
}
