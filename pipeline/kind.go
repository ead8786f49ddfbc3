package pipeline

import (
	"errors"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/lengths"
	"github.com/ajhynes7/depth-gait-analysis/selector"
	"github.com/ajhynes7/depth-gait-analysis/walking"
)

// kindOf translates a sentinel error from dag, selector, lengths or
// walking into its string-stable Kind. It returns the empty Kind for a
// nil error and for any error it does not recognize it still falls back
// to FrameIncomplete, since every unrecognized error reaching this point
// came from the per-frame selection pipeline.
func kindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dag.ErrPathBroken):
		return PathBroken
	case errors.Is(err, lengths.ErrLengthNotConverged):
		return LengthNotConverged
	case errors.Is(err, walking.ErrPassTooShort):
		return PassTooShort
	case errors.Is(err, selector.ErrEmptyPopulation),
		errors.Is(err, selector.ErrNoHeadCandidate),
		errors.Is(err, selector.ErrFewerThanTwoFeet),
		errors.Is(err, selector.ErrMissingPartType),
		errors.Is(err, dag.ErrLabelMismatch),
		errors.Is(err, dag.ErrLabelsNotSorted),
		errors.Is(err, dag.ErrNoSourceNode):
		return FrameIncomplete
	default:
		return FrameIncomplete
	}
}
