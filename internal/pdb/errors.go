package pdb

import "errors"

// ErrMissing is returned by Store.Load when no artefact exists for the
// requested board size and partition signature (PdbMissing, spec.md §7).
var ErrMissing = errors.New("pdb: no stored database for this size/partition")
