package solver

import "errors"

// ErrUnsolvable is returned when the parity oracle (or an exhausted
// search, as a defensive fallback) proves no solution exists.
var ErrUnsolvable = errors.New("solver: input has no solution")
