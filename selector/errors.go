package selector

import "errors"

// Sentinel errors for package selector. Every one of these corresponds to
// a per-frame failure that a caller reports and then omits the frame from
// its outputs, rather than aborting an entire trial.
var (
	// ErrEmptyPopulation indicates a frame with zero candidate points.
	ErrEmptyPopulation = errors.New("selector: empty population")

	// ErrNoHeadCandidate indicates no candidate in the population carries
	// the source label, so no path can begin.
	ErrNoHeadCandidate = errors.New("selector: no head candidate in population")

	// ErrFewerThanTwoFeet indicates fewer than two unbroken head-to-foot
	// paths survived tracing, so no pair of legs can be selected.
	ErrFewerThanTwoFeet = errors.New("selector: fewer than two foot paths available")

	// ErrMissingPartType indicates a frame with zero candidates for a
	// label the skeleton's connection table names, other than the
	// terminal foot label itself (whose absence is instead reported as
	// ErrFewerThanTwoFeet once path tracing has had a chance to run).
	ErrMissingPartType = errors.New("selector: frame is missing a part type")
)
