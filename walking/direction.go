package walking

import "github.com/ajhynes7/depth-gait-analysis/geometry"

// DirectionOfPass fits a line through every head position in pass and
// returns its unit direction as the candidate forward motion vector. The
// sign is arbitrary at this stage (see PCA sign ambiguity note on
// CorrectPass) and is resolved separately.
func DirectionOfPass(pass Pass) (point, direction geometry.Vec3, err error) {
	return geometry.BestFitLine(pass.heads())
}

// VerifySides reports whether footL and footR are labeled consistently
// with direction, given head and the midpoint between the two feet. A
// frame is verified when the left foot lies on the left side of the body,
// as judged by a signed-angle test against the up vector (head minus the
// foot midpoint) and the candidate forward direction.
func VerifySides(footL, footR, head, direction geometry.Vec3) bool {
	meanFoot := geometry.Mean(footL, footR)
	up := head.Sub(meanFoot)
	target := footL.Sub(meanFoot)

	side := geometry.TargetSide(direction, up, target)

	return side == geometry.Left || side == geometry.Straight
}

// VerifyPass applies VerifySides to every frame in pass against a single
// direction of motion.
func VerifyPass(pass Pass, direction geometry.Vec3) []bool {
	verified := make([]bool, len(pass))
	for i, f := range pass {
		verified[i] = VerifySides(f.FootL, f.FootR, f.Head, direction)
	}

	return verified
}
