// Package selector picks, from one frame's labeled DAG, the pair of
// foot-to-head paths most likely to be the two real legs of the walking
// subject, using a sphere-voting scheme over a score matrix.
package selector
