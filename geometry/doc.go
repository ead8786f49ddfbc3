// Package geometry provides the 3D vector primitives shared by the rest of
// this module: Euclidean distance, a best-fit line through a point cloud
// (principal component via densemat's Jacobi eigensolver), and a signed
// left/right/straight side test used to resolve which foot is which during
// a walking pass.
//
// Nothing here is specific to body parts or frames; package walking and
// package selector both build on these primitives without depending on
// each other.
package geometry
