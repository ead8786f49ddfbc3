package pipeline_test

import (
	"context"
	"testing"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
	"github.com/ajhynes7/depth-gait-analysis/pipeline"
)

type fakeSource struct {
	frames map[pipeline.TrialID][]pipeline.FrameID
	data   map[pipeline.FrameKey]frameData
}

type frameData struct {
	pop    dag.Population
	labels []dag.PartLabel
}

func (s fakeSource) Hypotheses(key pipeline.FrameKey) (dag.Population, []dag.PartLabel, bool) {
	d, ok := s.data[key]
	return d.pop, d.labels, ok
}

func (s fakeSource) Frames(trial pipeline.TrialID) []pipeline.FrameID {
	return s.frames[trial]
}

// sixPartFrame builds a population of a full Head-Hip-Thigh-Knee-Calf-Foot
// skeleton with two Foot candidates, offset by dx/dy so that distinct
// frames produce distinct head positions.
func sixPartFrame(t *testing.T, dx, dy float64) dag.Population {
	t.Helper()
	points := []geometry.Vec3{
		{X: 0 + dx, Y: dy},
		{X: 60 + dx, Y: dy},
		{X: 80 + dx, Y: dy},
		{X: 95 + dx, Y: dy},
		{X: 115 + dx, Y: dy},
		{X: 135 + dx, Y: 5 + dy},
		{X: 140 + dx, Y: -8 + dy},
	}
	labels := []dag.PartLabel{0, 1, 2, 3, 4, 5, 5}

	pop, err := dag.NewPopulation(points, labels)
	if err != nil {
		t.Fatal(err)
	}

	return pop
}

func TestRunTrial_HappyPath(t *testing.T) {
	const trial pipeline.TrialID = "trial-1"
	frameA := sixPartFrame(t, 0, 0)
	frameB := sixPartFrame(t, 10, 0)

	source := fakeSource{
		frames: map[pipeline.TrialID][]pipeline.FrameID{trial: {0, 1}},
		data: map[pipeline.FrameKey]frameData{
			{Trial: trial, Frame: 0}: {pop: frameA, labels: frameA.Labels()},
			{Trial: trial, Frame: 1}: {pop: frameB, labels: frameB.Labels()},
		},
	}

	result, err := pipeline.RunTrial(context.Background(), source, trial, pipeline.WithRadii([]float64{5, 20}))
	if err != nil {
		t.Fatalf("RunTrial returned error: %v", err)
	}
	if len(result.Frames) != 2 {
		t.Fatalf("expected 2 frame outcomes, got %d", len(result.Frames))
	}
	for id, outcome := range result.Frames {
		if outcome.Kind != "" {
			t.Errorf("frame %d: unexpected kind %q", id, outcome.Kind)
		}
		if len(outcome.Pop1) != 6 || len(outcome.Pop2) != 6 {
			t.Errorf("frame %d: expected 6-point skeletons, got %d/%d", id, len(outcome.Pop1), len(outcome.Pop2))
		}
	}
	if len(result.Lengths) != 5 {
		t.Fatalf("expected 5 estimated segment lengths, got %d", len(result.Lengths))
	}
	if result.LengthsKind != "" {
		t.Errorf("expected lengths to converge, got kind %q", result.LengthsKind)
	}
	if len(result.Passes) != 1 || len(result.Passes[0]) != 2 {
		t.Fatalf("expected a single 2-frame walking pass, got %v", result.Passes)
	}
}

func TestRunTrial_NoFramesNeverPanics(t *testing.T) {
	const trial pipeline.TrialID = "empty-trial"
	source := fakeSource{
		frames: map[pipeline.TrialID][]pipeline.FrameID{},
		data:   map[pipeline.FrameKey]frameData{},
	}

	result, err := pipeline.RunTrial(context.Background(), source, trial)
	if err != pipeline.ErrNoFrames {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
}

func TestRunTrial_AllHypothesesMissing(t *testing.T) {
	const trial pipeline.TrialID = "missing-trial"
	source := fakeSource{
		frames: map[pipeline.TrialID][]pipeline.FrameID{trial: {0, 1}},
		data:   map[pipeline.FrameKey]frameData{},
	}

	result, err := pipeline.RunTrial(context.Background(), source, trial)
	if err != pipeline.ErrNoFrameSucceeded {
		t.Fatalf("expected ErrNoFrameSucceeded, got %v", err)
	}
	if result == nil {
		t.Fatal("expected a non-nil partial result")
	}
}

func TestRunTrial_OneMissingFrameIsIncompleteOthersStillSucceed(t *testing.T) {
	const trial pipeline.TrialID = "trial-2"
	frameA := sixPartFrame(t, 0, 0)
	frameB := sixPartFrame(t, 10, 0)

	source := fakeSource{
		frames: map[pipeline.TrialID][]pipeline.FrameID{trial: {0, 1, 2}},
		data: map[pipeline.FrameKey]frameData{
			{Trial: trial, Frame: 0}: {pop: frameA, labels: frameA.Labels()},
			{Trial: trial, Frame: 1}: {pop: frameB, labels: frameB.Labels()},
			// frame 2 has no entry: Hypotheses returns ok=false.
		},
	}

	result, err := pipeline.RunTrial(context.Background(), source, trial, pipeline.WithRadii([]float64{5, 20}))
	if err != nil {
		t.Fatalf("RunTrial returned error: %v", err)
	}
	if len(result.Frames) != 3 {
		t.Fatalf("expected 3 frame outcomes, got %d", len(result.Frames))
	}
	if result.Frames[2].Kind != pipeline.FrameIncomplete {
		t.Errorf("frame 2: expected FrameIncomplete, got %q", result.Frames[2].Kind)
	}
	if result.Frames[0].Kind != "" || result.Frames[1].Kind != "" {
		t.Errorf("frames 0 and 1 should still succeed: %+v / %+v", result.Frames[0], result.Frames[1])
	}
	// Only the two successful frames contribute to the walking pass.
	if len(result.Passes) != 1 || len(result.Passes[0]) != 2 {
		t.Fatalf("expected a single 2-frame walking pass, got %v", result.Passes)
	}
}

func TestRunTrial_MissingPartFrameIsIncomplete(t *testing.T) {
	const trial pipeline.TrialID = "trial-3"
	good := sixPartFrame(t, 0, 0)
	goodToo := sixPartFrame(t, 10, 0)

	points := []geometry.Vec3{{X: 0}, {X: 60}, {X: 80}, {X: 95}, {X: 115}}
	labels := []dag.PartLabel{0, 1, 2, 3, 4}
	incomplete, err := dag.NewPopulation(points, labels)
	if err != nil {
		t.Fatal(err)
	}

	source := fakeSource{
		frames: map[pipeline.TrialID][]pipeline.FrameID{trial: {0, 1, 2}},
		data: map[pipeline.FrameKey]frameData{
			{Trial: trial, Frame: 0}: {pop: good, labels: good.Labels()},
			{Trial: trial, Frame: 1}: {pop: incomplete, labels: incomplete.Labels()},
			// A second complete frame keeps the walking pass at the two
			// frames CorrectPass needs, so frame 1 is the only failure.
			{Trial: trial, Frame: 2}: {pop: goodToo, labels: goodToo.Labels()},
		},
	}

	result, err := pipeline.RunTrial(context.Background(), source, trial, pipeline.WithRadii([]float64{5, 20}))
	if err != nil {
		t.Fatalf("RunTrial returned error: %v", err)
	}
	if result.Frames[1].Kind != pipeline.FrameIncomplete {
		t.Errorf("expected FrameIncomplete for the missing-foot frame, got %q", result.Frames[1].Kind)
	}
}
