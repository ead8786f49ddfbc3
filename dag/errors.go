package dag

import "errors"

// Sentinel errors for package dag.
var (
	// ErrLabelMismatch indicates population and labels disagree in length.
	ErrLabelMismatch = errors.New("dag: population and labels differ in length")

	// ErrLabelsNotSorted indicates labels are not monotonically non-decreasing.
	ErrLabelsNotSorted = errors.New("dag: labels are not sorted ascending")

	// ErrNoSourceNode indicates no node in the population has the source label (0).
	ErrNoSourceNode = errors.New("dag: no source (label 0) node in population")

	// ErrPathBroken indicates a predecessor chain reached a non-source node
	// with no predecessor — the requested target is not connected to any
	// source node.
	ErrPathBroken = errors.New("dag: predecessor chain is broken")
)
