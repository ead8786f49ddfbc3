package walking

import "github.com/ajhynes7/depth-gait-analysis/geometry"

// Frame holds the head and two foot positions observed in one frame of a
// walking pass.
type Frame struct {
	Head  geometry.Vec3
	FootL geometry.Vec3
	FootR geometry.Vec3
}

// Pass is an ordered sequence of frames belonging to a single walking
// pass, in the caller's insertion order, which CorrectPass preserves in its
// output. DirectionOfPass and VerifyPass do not depend on that order.
type Pass []Frame

func (p Pass) heads() []geometry.Vec3 {
	heads := make([]geometry.Vec3, len(p))
	for i, f := range p {
		heads[i] = f.Head
	}

	return heads
}
