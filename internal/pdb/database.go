package pdb

import (
	"sync"

	"github.com/oduvan/puzzle15go/internal/puzzle"
)

// Database maps a pattern key (puzzle.Compress of a group-restricted
// state) to the minimum number of in-group tile moves needed to reach the
// goal pattern. Every entry is non-negative; the goal pattern always maps
// to 0 (invariant I2).
type Database map[uint64]uint8

// Set bundles a partition with its per-group databases and exposes the
// admissible disjoint-additive heuristic described in spec.md §4.3.
type Set struct {
	Size      int
	Partition Partition
	Databases []Database

	fallbackOnce []sync.Once
}

// NewSet wraps a partition and its built databases for use as a heuristic.
// len(databases) must equal len(partition); NewSet panics otherwise, since
// a mismatched Set is a programming error, not a runtime condition to
// recover from.
func NewSet(size int, partition Partition, databases []Database) *Set {
	if len(partition) != len(databases) {
		panic("pdb: partition and database count mismatch")
	}
	return &Set{
		Size:         size,
		Partition:    partition,
		Databases:    databases,
		fallbackOnce: make([]sync.Once, len(partition)),
	}
}

// Heuristic sums, over every tile group, the PDB-stored cost of the
// group's pattern in state. This is admissible and consistent because the
// groups are disjoint and each database counts only moves of its own
// group's tiles (invariant I3). If a pattern key is missing — PdbIncomplete
// per spec.md §7 — it falls back to Manhattan distance on the (already
// zeroed-outside-group) pattern, which is exactly the group-restricted
// Manhattan distance, and logs the fallback once per group.
func (s *Set) Heuristic(state puzzle.State) int {
	total := 0
	for i, g := range s.Partition {
		pattern := puzzle.Pattern(state, g.lookup)
		key := puzzle.Compress(pattern)
		if cost, ok := s.Databases[i][key]; ok {
			total += int(cost)
			continue
		}
		s.fallbackOnce[i].Do(func() {
			logFallback(i, g)
		})
		total += puzzle.ManhattanToGoal(pattern)
	}
	return total
}
