package solver

import "github.com/oduvan/puzzle15go/internal/puzzle"

// Frontier holds nodes the current IDA* iteration saw but could not
// expand because their f-cost exceeded the bound, keyed by the
// compressed state so a later iteration can resume exactly where this
// one stopped instead of re-walking the interior of the search tree.
// Entries normally live in packed (2-bits-per-move-packed, per
// spec.md §4.2); a move sequence longer than puzzle.CompressMoves can
// pack (28 moves, spec.md §7 InternalOverflow) is kept uncompressed in
// overflow instead of being dropped.
type Frontier struct {
	packed   map[uint64]uint64
	overflow map[uint64][]puzzle.Move
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		packed:   make(map[uint64]uint64),
		overflow: make(map[uint64][]puzzle.Move),
	}
}

// Store records moves as the frontier entry for key, replacing any
// existing entry.
func (f *Frontier) Store(key uint64, moves []puzzle.Move) {
	packed, err := puzzle.CompressMoves(moves)
	if err != nil {
		delete(f.packed, key)
		f.overflow[key] = append([]puzzle.Move(nil), moves...)
		return
	}
	delete(f.overflow, key)
	f.packed[key] = packed
}

// Delete removes key's entry, if any.
func (f *Frontier) Delete(key uint64) {
	delete(f.packed, key)
	delete(f.overflow, key)
}

// Contains reports whether key currently has a frontier entry.
func (f *Frontier) Contains(key uint64) bool {
	if _, ok := f.packed[key]; ok {
		return true
	}
	_, ok := f.overflow[key]
	return ok
}

// Len returns the number of entries across both maps.
func (f *Frontier) Len() int {
	return len(f.packed) + len(f.overflow)
}

// entry is one (key, decompressed moves) pair taken from a snapshot.
type entry struct {
	key   uint64
	moves []puzzle.Move
}

// Snapshot returns every current entry, moves already decompressed,
// frozen at the moment of the call. The driver loop's frontier scan
// (spec.md §4.5) iterates a snapshot while the frontier itself keeps
// mutating underneath it, re-checking membership via Contains before
// consuming each entry.
func (f *Frontier) Snapshot() []entry {
	out := make([]entry, 0, f.Len())
	for key, packed := range f.packed {
		out = append(out, entry{key: key, moves: puzzle.DecompressMoves(packed)})
	}
	for key, moves := range f.overflow {
		out = append(out, entry{key: key, moves: append([]puzzle.Move(nil), moves...)})
	}
	return out
}
