// Package lengths estimates the expected distance between consecutive
// body-part labels by iteratively re-weighting a per-frame shortest-path
// search with the previous iteration's estimate, converging on the
// segment lengths of the subject's skeleton.
package lengths
