package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
	"github.com/ajhynes7/depth-gait-analysis/lengths"
	"github.com/ajhynes7/depth-gait-analysis/selector"
	"github.com/ajhynes7/depth-gait-analysis/walking"
)

// RunTrial drives one trial's full pipeline: length estimation (E) once
// over a leading window of frames, per-frame skeleton selection (B-C-D)
// fanned out across a bounded worker pool using the estimated lengths,
// and a single walking-pass side correction (F) over the frames that
// succeeded, in the source's frame order.
//
// Per-frame failures are recorded against their FrameID in the returned
// TrialResult and never abort the rest of the batch. A non-nil error is
// returned only for trial-level failures: the source reports no frames,
// no frame in the trial succeeds, or the resulting walking pass is too
// short to correct. Except when the source reports no frames (nil
// result), the partial TrialResult gathered so far is still returned
// alongside the error.
func RunTrial(ctx context.Context, source HypothesesSource, trialID TrialID, opts ...Option) (*TrialResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	frameIDs := source.Frames(trialID)
	if len(frameIDs) == 0 {
		return nil, ErrNoFrames
	}

	hyps := make([]hypothesesRow, len(frameIDs))
	for i, id := range frameIDs {
		pop, labels, ok := source.Hypotheses(FrameKey{Trial: trialID, Frame: id})
		hyps[i] = hypothesesRow{pop: pop, labels: labels, ok: ok}
	}

	result := &TrialResult{Frames: make(map[FrameID]FrameOutcome, len(frameIDs))}

	// E runs first: D needs the length-derived adjacency table it produces.
	window := cfg.Window
	if window <= 0 || window > len(frameIDs) {
		window = len(frameIDs)
	}
	var lengthFrames []lengths.Frame
	for _, h := range hyps {
		if !h.ok {
			continue
		}
		lengthFrames = append(lengthFrames, lengths.Frame{Population: h.pop, Labels: h.labels})
	}
	if len(lengthFrames) == 0 {
		// No frame had hypotheses at all; runSelection would find the same
		// and report zero successes, but getting there would first hand
		// dag.LengthsToAdjacency an empty lengths slice against a
		// connection table that indexes into it.
		return result, ErrNoFrameSucceeded
	}

	estimate, err := lengths.Estimate(lengthFrames, window, cfg.Cost, cfg.Epsilon, cfg.MaxIter)
	if err != nil && !errors.Is(err, lengths.ErrLengthNotConverged) {
		return nil, err
	}
	if errors.Is(err, lengths.ErrLengthNotConverged) {
		result.LengthsKind = LengthNotConverged
		cfg.logf("pipeline: trial %v length estimation did not converge within %d iterations", trialID, cfg.MaxIter)
	}
	result.Lengths = estimate

	full := dag.LengthsToAdjacency(dag.DefaultPartConnections(), estimate)

	succeeded := runSelection(ctx, frameIDs, hyps, full, cfg, result)
	if succeeded == 0 {
		return result, ErrNoFrameSucceeded
	}

	pass := buildPass(frameIDs, result)
	corrected, err := walking.CorrectPass(pass)
	if err != nil {
		cfg.logf("pipeline: trial %v walking pass rejected: %v", trialID, err)
		return result, err
	}
	result.Passes = []walking.Pass{corrected}

	return result, nil
}

type hypothesesRow struct {
	pop    dag.Population
	labels []dag.PartLabel
	ok     bool
}

// runSelection fans B-C-D selection for every frame out across cfg.Workers
// goroutines, writes each outcome into result.Frames, and returns the
// number of frames that succeeded.
func runSelection(ctx context.Context, frameIDs []FrameID, hyps []hypothesesRow, full dag.LabelAdjacency, cfg Options, result *TrialResult) int {
	type job struct {
		id FrameID
		h  hypothesesRow
	}
	type outcome struct {
		id         FrameID
		pop1, pop2 []geometry.Vec3
		err        error
	}

	jobs := make(chan job)
	outcomes := make(chan outcome, len(frameIDs))

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					outcomes <- outcome{id: j.id, err: ctx.Err()}
					continue
				default:
				}
				if !j.h.ok {
					outcomes <- outcome{id: j.id, err: ErrNoHypotheses}
					continue
				}
				pop1, pop2, err := selector.ProcessFrame(j.h.pop, j.h.labels, full, cfg.Radii, cfg.Cost, cfg.Score)
				outcomes <- outcome{id: j.id, pop1: pop1, pop2: pop2, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, id := range frameIDs {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{id: id, h: hyps[i]}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	succeeded := 0
	for o := range outcomes {
		if o.err != nil {
			kind := kindOf(o.err)
			result.Frames[o.id] = FrameOutcome{Kind: kind}
			cfg.logf("pipeline: frame %v failed selection (%s): %v", o.id, kind, o.err)
			continue
		}
		result.Frames[o.id] = FrameOutcome{Pop1: o.pop1, Pop2: o.pop2}
		succeeded++
	}

	return succeeded
}

// buildPass assembles the trial's walking pass from the frames that
// succeeded, in the source's frame order. The initial left/right
// assignment is arbitrary (pop1's foot becomes FootL, pop2's FootR);
// walking.CorrectPass resolves it.
func buildPass(frameIDs []FrameID, result *TrialResult) walking.Pass {
	var pass walking.Pass
	for _, id := range frameIDs {
		outcome, ok := result.Frames[id]
		if !ok || outcome.Kind != "" {
			continue
		}

		n := len(outcome.Pop1)
		pass = append(pass, walking.Frame{
			Head:  outcome.Pop1[0],
			FootL: outcome.Pop1[n-1],
			FootR: outcome.Pop2[n-1],
		})
	}

	return pass
}
