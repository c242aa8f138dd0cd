// Package pdb implements disjoint additive pattern databases: the BFS
// builder that enumerates a tile group's reachable patterns, the database
// and partition types, the admissible PDB heuristic, and a BadgerDB-backed
// artefact store.
package pdb

import (
	"fmt"
	"sort"
)

// TileGroup is a set of tile values whose moves are counted together by
// one pattern database.
type TileGroup struct {
	Tiles  []int
	lookup map[int]struct{}
}

// NewTileGroup builds a TileGroup from a slice of tile values.
func NewTileGroup(tiles []int) TileGroup {
	sorted := append([]int(nil), tiles...)
	sort.Ints(sorted)
	lookup := make(map[int]struct{}, len(sorted))
	for _, t := range sorted {
		lookup[t] = struct{}{}
	}
	return TileGroup{Tiles: sorted, lookup: lookup}
}

// Contains reports whether tile belongs to the group.
func (g TileGroup) Contains(tile int) bool {
	_, ok := g.lookup[tile]
	return ok
}

// Partition is a list of disjoint tile groups whose union covers every
// non-blank tile on a board of some size N.
type Partition []TileGroup

// Validate checks that a partition is a legal disjoint cover of
// {1, ..., N^2-1} for a board of the given size.
func (p Partition) Validate(size int) error {
	seen := make(map[int]int, size*size)
	for gi, g := range p {
		for _, t := range g.Tiles {
			if t <= 0 || t >= size*size {
				return fmt.Errorf("pdb: group %d contains tile %d out of range [1,%d)", gi, t, size*size)
			}
			if owner, ok := seen[t]; ok {
				return fmt.Errorf("pdb: tile %d appears in both group %d and group %d", t, owner, gi)
			}
			seen[t] = gi
		}
	}
	if len(seen) != size*size-1 {
		return fmt.Errorf("pdb: partition covers %d tiles, want %d", len(seen), size*size-1)
	}
	return nil
}
