package pipeline

import (
	"runtime"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/selector"
)

// Options configures RunTrial.
//
// Cost      – cost function weighting the per-frame DAG (B). Default
//
//	dag.SquaredError.
//
// Score     – score function used when filtering candidate connections (D).
//
//	Default selector.InverseRatioScore.
//
// Radii     – sphere radii used by sphere voting in foot selection (D).
//
//	Must be set by the caller; there is no anatomically meaningful
//	default.
//
// Epsilon   – convergence threshold for length estimation (E). Default 0.01.
// MaxIter   – iteration budget for length estimation (E). Default 100.
// Window    – number of leading frames used to estimate lengths (E). Zero
//
//	(the default) uses every frame the trial reports.
//
// Workers   – size of the worker pool fanning out B-C-D across frames.
//
//	Default runtime.GOMAXPROCS(0); zero or less runs a single worker.
//
// Logger    – optional trace hook, called with one line per per-frame or
//
//	per-trial failure. Nil (the default) disables tracing entirely;
//	RunTrial never logs on the success path. The library itself never
//	writes to a logging framework — this hook exists so a caller
//	embedding RunTrial in a service can forward traces to its own.
type Options struct {
	Cost    dag.CostFunc
	Score   selector.ScoreFunc
	Radii   []float64
	Epsilon float64
	MaxIter int
	Window  int
	Workers int
	Logger  func(format string, args ...any)
}

// logf calls cfg.Logger if one was configured, otherwise it is a no-op.
func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Option is a functional option for configuring RunTrial.
type Option func(*Options)

// WithCostFunc overrides the cost function used to weight the per-frame DAG.
func WithCostFunc(cost dag.CostFunc) Option {
	return func(o *Options) {
		o.Cost = cost
	}
}

// WithScoreFunc overrides the score function used to filter candidate
// connections.
func WithScoreFunc(score selector.ScoreFunc) Option {
	return func(o *Options) {
		o.Score = score
	}
}

// WithRadii sets the sphere radii used by foot selection.
func WithRadii(radii []float64) Option {
	return func(o *Options) {
		o.Radii = radii
	}
}

// WithEpsilon overrides the length-estimation convergence threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxIter overrides the length-estimation iteration budget.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithWindow overrides the number of leading frames used to estimate
// lengths. A window larger than the trial's frame count is clamped down
// to the frame count.
func WithWindow(n int) Option {
	return func(o *Options) {
		o.Window = n
	}
}

// WithWorkers overrides the size of the worker pool fanning out per-frame
// selection.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger installs a trace hook invoked once per per-frame or per-trial
// failure. Pass nil to disable tracing (the default).
func WithLogger(logger func(format string, args ...any)) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns an Options struct with the defaults documented on
// Options. Radii is left empty; RunTrial does not check it, and with no
// radii foot selection casts no votes and returns the first pair of foot
// paths.
func DefaultOptions() Options {
	return Options{
		Cost:    dag.SquaredError,
		Score:   selector.InverseRatioScore,
		Epsilon: 0.01,
		MaxIter: 100,
		Workers: runtime.GOMAXPROCS(0),
	}
}
