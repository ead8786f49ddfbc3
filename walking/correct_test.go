package walking_test

import (
	"testing"

	"github.com/ajhynes7/depth-gait-analysis/geometry"
	"github.com/ajhynes7/depth-gait-analysis/walking"
)

func TestCorrectPass_SideFlip(t *testing.T) {
	// Both frames share the same head position, so the covariance is zero,
	// Eigen returns the identity basis and the fitted direction is its first
	// column, the (1,0,0) axis. Frame A
	// already agrees with that axis and a sibling frame disagrees; the
	// disagreeing frame alone must come back with its feet swapped.
	frameA := walking.Frame{
		Head:  geometry.Vec3{X: 0, Y: 0, Z: 1},
		FootL: geometry.Vec3{X: 0, Y: 1, Z: 0},
		FootR: geometry.Vec3{X: 0, Y: -1, Z: 0},
	}
	frameB := walking.Frame{
		Head:  geometry.Vec3{X: 0, Y: 0, Z: 1},
		FootL: geometry.Vec3{X: 0, Y: -1, Z: 0},
		FootR: geometry.Vec3{X: 0, Y: 1, Z: 0},
	}
	pass := walking.Pass{frameA, frameB}

	corrected, err := walking.CorrectPass(pass)
	if err != nil {
		t.Fatalf("CorrectPass returned error: %v", err)
	}
	if len(corrected) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(corrected))
	}

	if corrected[0] != frameA {
		t.Fatalf("frame A should be untouched, got %+v", corrected[0])
	}

	wantB := walking.Frame{Head: frameB.Head, FootL: frameB.FootR, FootR: frameB.FootL}
	if corrected[1] != wantB {
		t.Fatalf("frame B should have swapped feet, got %+v want %+v", corrected[1], wantB)
	}
}

func TestCorrectPass_Involution(t *testing.T) {
	frameA := walking.Frame{
		Head:  geometry.Vec3{X: 0, Y: 0, Z: 1},
		FootL: geometry.Vec3{X: 0, Y: 1, Z: 0},
		FootR: geometry.Vec3{X: 0, Y: -1, Z: 0},
	}
	frameB := walking.Frame{
		Head:  geometry.Vec3{X: 0, Y: 0, Z: 1},
		FootL: geometry.Vec3{X: 0, Y: -1, Z: 0},
		FootR: geometry.Vec3{X: 0, Y: 1, Z: 0},
	}
	pass := walking.Pass{frameA, frameB}

	once, err := walking.CorrectPass(pass)
	if err != nil {
		t.Fatalf("first CorrectPass returned error: %v", err)
	}

	twice, err := walking.CorrectPass(once)
	if err != nil {
		t.Fatalf("second CorrectPass returned error: %v", err)
	}

	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("frame %d changed on second correction: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestCorrectPass_ColinearWithUpKeepsOriginalLabeling(t *testing.T) {
	// Every frame's up vector is parallel to the fitted direction of
	// motion, so TargetSide degenerates to Straight for every frame and no
	// swap should occur regardless of how the feet are labeled.
	var pass walking.Pass
	for i := 0; i < 3; i++ {
		x := float64(i) * 5
		meanFoot := geometry.Vec3{X: x, Y: 10, Z: 10}
		head := meanFoot.Add(geometry.Vec3{X: 3})
		footL := geometry.Vec3{X: x, Y: 11, Z: 10}
		footR := geometry.Vec3{X: x, Y: 9, Z: 10}
		pass = append(pass, walking.Frame{Head: head, FootL: footL, FootR: footR})
	}

	corrected, err := walking.CorrectPass(pass)
	if err != nil {
		t.Fatalf("CorrectPass returned error: %v", err)
	}

	for i, f := range pass {
		if corrected[i] != f {
			t.Fatalf("frame %d should be untouched under a colinear up vector, got %+v want %+v", i, corrected[i], f)
		}
	}
}

func TestCorrectPass_TooShort(t *testing.T) {
	pass := walking.Pass{{
		Head:  geometry.Vec3{X: 0, Y: 0, Z: 1},
		FootL: geometry.Vec3{X: 0, Y: 1, Z: 0},
		FootR: geometry.Vec3{X: 0, Y: -1, Z: 0},
	}}

	if _, err := walking.CorrectPass(pass); err != walking.ErrPassTooShort {
		t.Fatalf("expected ErrPassTooShort, got %v", err)
	}

	if _, err := walking.CorrectPass(nil); err != walking.ErrPassTooShort {
		t.Fatalf("expected ErrPassTooShort for nil pass, got %v", err)
	}
}
