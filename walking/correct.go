package walking

// CorrectPass resolves the sign ambiguity in a PCA-fit direction of
// motion and swaps the left/right foot labels on the frames that disagree
// with the resolved direction.
//
// The direction returned by DirectionOfPass can point either way along
// the line of motion; CorrectPass never assumes it already agrees with
// the direction the subject actually walked. It verifies every frame
// against the fitted direction, and if a majority disagree, negates the
// direction and re-verifies before swapping. If every point in the pass
// is colinear with its own up vector, TargetSide degenerates to Straight
// for every frame, every frame is already verified, and the original
// labeling is kept untouched.
func CorrectPass(pass Pass) (Pass, error) {
	if len(pass) < 2 {
		return nil, ErrPassTooShort
	}

	_, direction, err := DirectionOfPass(pass)
	if err != nil {
		return nil, err
	}

	verified := VerifyPass(pass, direction)
	if !majorityTrue(verified) {
		direction = direction.Scale(-1)
		verified = VerifyPass(pass, direction)
	}

	corrected := make(Pass, len(pass))
	for i, f := range pass {
		if verified[i] {
			corrected[i] = f
		} else {
			corrected[i] = Frame{Head: f.Head, FootL: f.FootR, FootR: f.FootL}
		}
	}

	return corrected, nil
}

func majorityTrue(verified []bool) bool {
	count := 0
	for _, v := range verified {
		if v {
			count++
		}
	}

	return 2*count > len(verified)
}
