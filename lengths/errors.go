package lengths

import "errors"

// ErrLengthNotConverged indicates the iterative estimate did not settle
// within maxIter rounds. The caller still receives the last computed
// estimate alongside this error and may choose to accept or discard it.
var ErrLengthNotConverged = errors.New("lengths: estimate did not converge within the iteration budget")
