package solver

import (
	"context"
	"testing"

	"github.com/oduvan/puzzle15go/internal/pdb"
	"github.com/oduvan/puzzle15go/internal/puzzle"
)

func moves(ms ...puzzle.Move) []puzzle.Move { return ms }

func mustState(t *testing.T, tiles ...int) puzzle.State {
	t.Helper()
	s, err := puzzle.NewState(tiles)
	if err != nil {
		t.Fatalf("NewState(%v): %v", tiles, err)
	}
	return s
}

func TestSearcherEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name  string
		state []int
		want  []puzzle.Move
	}{
		{"already solved", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, moves()},
		{"one move", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}, moves(puzzle.Left)},
		{"two moves", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 0, 14, 15}, moves(puzzle.Left, puzzle.Left)},
		{"three moves", []int{1, 2, 3, 4, 5, 6, 0, 8, 9, 10, 7, 11, 13, 14, 15, 12}, moves(puzzle.Up, puzzle.Left, puzzle.Up)},
		{"four moves", []int{1, 2, 3, 4, 5, 0, 6, 8, 9, 10, 7, 11, 13, 14, 15, 12}, moves(puzzle.Left, puzzle.Up, puzzle.Left, puzzle.Up)},
		{"eight moves", []int{5, 1, 2, 4, 9, 6, 3, 8, 0, 10, 7, 11, 13, 14, 15, 12}, moves(puzzle.Down, puzzle.Down, puzzle.Left, puzzle.Left, puzzle.Up, puzzle.Up, puzzle.Left, puzzle.Up)},
	}

	for _, useFrontier := range []bool{true, false} {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				state := mustState(t, tc.state...)
				searcher := NewSearcher(ManhattanHeuristic{}, Options{UseFrontier: useFrontier})

				got, err := searcher.Solve(state)
				if err != nil {
					t.Fatalf("Solve: %v", err)
				}
				if len(got) != len(tc.want) {
					t.Fatalf("useFrontier=%v: got %v (len %d), want %v (len %d)", useFrontier, got, len(got), tc.want, len(tc.want))
				}
				for i := range got {
					if got[i] != tc.want[i] {
						t.Fatalf("useFrontier=%v: move %d = %v, want %v (full: got %v, want %v)", useFrontier, i, got[i], tc.want[i], got, tc.want)
					}
				}
			})
		}
	}
}

func TestSearcherAppliedSolutionReachesGoal(t *testing.T) {
	state := mustState(t, 5, 1, 2, 4, 9, 6, 3, 8, 0, 10, 7, 11, 13, 14, 15, 12)
	searcher := NewSearcher(ManhattanHeuristic{}, DefaultOptions())

	got, err := searcher.Solve(state)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	cur := state
	for _, m := range got {
		next, _, ok := cur.Apply(m)
		if !ok {
			t.Fatalf("move %v invalid from %v", m, cur)
		}
		cur = next
	}
	if !puzzle.Equal(cur, puzzle.Goal(4)) {
		t.Fatalf("applying solution reached %v, want goal", cur)
	}
}

func TestSearcherRejectsUnsolvableInput(t *testing.T) {
	state := mustState(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0)
	searcher := NewSearcher(ManhattanHeuristic{}, DefaultOptions())

	if _, err := searcher.Solve(state); err != ErrUnsolvable {
		t.Fatalf("Solve on unsolvable input: err = %v, want ErrUnsolvable", err)
	}
}

func TestSearcherWithPdbMatchesManhattanSolutionLength(t *testing.T) {
	partition := pdb.Partition{
		pdb.NewTileGroup([]int{1, 2, 3, 4, 7}),
		pdb.NewTileGroup([]int{5, 6, 9, 10, 13}),
		pdb.NewTileGroup([]int{8, 11, 12, 14, 15}),
	}
	databases, err := pdb.BuildPartition(context.Background(), 4, partition, nil)
	if err != nil {
		t.Fatalf("BuildPartition: %v", err)
	}
	set := pdb.NewSet(4, partition, databases)

	state := mustState(t, 5, 1, 2, 4, 9, 6, 3, 8, 0, 10, 7, 11, 13, 14, 15, 12)

	withPdb, err := NewSearcher(set, DefaultOptions()).Solve(state)
	if err != nil {
		t.Fatalf("Solve with PDB: %v", err)
	}
	withManhattan, err := NewSearcher(ManhattanHeuristic{}, DefaultOptions()).Solve(state)
	if err != nil {
		t.Fatalf("Solve with Manhattan: %v", err)
	}
	if len(withPdb) != len(withManhattan) {
		t.Fatalf("PDB solution length %d, Manhattan solution length %d, want equal (both optimal)", len(withPdb), len(withManhattan))
	}
	if len(withPdb) != 8 {
		t.Fatalf("solution length = %d, want 8", len(withPdb))
	}
}
