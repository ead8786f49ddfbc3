// Package pipeline wires the per-frame skeleton selection (dag, selector),
// segment-length estimation (lengths), and walking-pass side correction
// (walking) packages into a single per-trial entry point, RunTrial.
//
// RunTrial runs length estimation once over the trial's frames, then fans
// the per-frame work (build graph, shortest path, select best feet) out
// across a bounded worker pool using the estimated lengths, then runs side
// correction once per walking pass, collecting per-frame failures without
// aborting the rest of the batch.
package pipeline
