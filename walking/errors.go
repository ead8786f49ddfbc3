package walking

import "errors"

// ErrPassTooShort indicates a pass with fewer than two frames, which
// cannot establish a direction of motion.
var ErrPassTooShort = errors.New("walking: pass has fewer than two frames")
