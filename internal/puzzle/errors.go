package puzzle

import "errors"

// ErrInvalidInput marks a malformed or non-permutation puzzle input
// (spec.md §7's InputInvalid). Surfaced directly to the caller; never
// retried.
var ErrInvalidInput = errors.New("puzzle: input is not a valid board")

// ErrInternalOverflow marks a move sequence longer than the packed-length
// field can record (spec.md §7's InternalOverflow).
var ErrInternalOverflow = errors.New("puzzle: move sequence exceeds packed length limit")
