// Package dag builds the per-frame labeled DAG over body-part candidates
// and runs single-source shortest path over it.
//
// A frame's population of hypotheses is sorted by body-part label (Head=0
// through Foot=MaxLabel); that sort order doubles as the DAG's topological
// order, so nodes are plain integer indices into the population rather than
// pointer-linked vertices — an arena, not a general mutable graph. Edges
// only ever run from a lower label to the next label up, so shortest path
// is a single forward sweep in index order, not a priority-queue search.
package dag
