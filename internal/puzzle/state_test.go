package puzzle

import "testing"

func TestGoal(t *testing.T) {
	g := Goal(4)
	want := State{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}
	if !Equal(g, want) {
		t.Fatalf("Goal(4) = %v, want %v", g, want)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	s := Goal(4)
	next, moved, ok := s.Apply(Up)
	if !ok {
		t.Fatalf("Apply(Up) on goal state should be valid (blank not in top row)")
	}
	if moved != 12 {
		t.Fatalf("moved tile = %d, want 12", moved)
	}
	if Equal(next, s) {
		t.Fatalf("Apply must not return the same state")
	}

	back, _, ok := next.Apply(Up.Reverse())
	if !ok {
		t.Fatalf("reverse move should be valid")
	}
	if !Equal(back, s) {
		t.Fatalf("round trip via reverse move failed: got %v, want %v", back, s)
	}

	// s itself must be untouched.
	if !Equal(s, Goal(4)) {
		t.Fatalf("Apply mutated its receiver")
	}
}

func TestApplyOutOfBoundsAtEachCorner(t *testing.T) {
	size := 3
	corners := []struct {
		name      string
		blankAt   int
		blockedMoves []Move
	}{
		{"top-left", 0, []Move{Up, Right}},
		{"top-right", size - 1, []Move{Up, Left}},
		{"bottom-left", size * (size - 1), []Move{Down, Right}},
		{"bottom-right", size*size - 1, []Move{Down, Left}},
	}

	for _, c := range corners {
		t.Run(c.name, func(t *testing.T) {
			tiles := make([]int, size*size)
			v := 1
			for i := range tiles {
				if i == c.blankAt {
					tiles[i] = 0
					continue
				}
				tiles[i] = v
				v++
			}
			s := State(tiles)
			blocked := map[Move]bool{}
			for _, m := range c.blockedMoves {
				blocked[m] = true
			}
			for _, m := range []Move{Up, Down, Left, Right} {
				_, _, ok := s.Apply(m)
				if blocked[m] && ok {
					t.Errorf("Apply(%v) from blank at %s should be out of bounds", m, c.name)
				}
				if !blocked[m] && !ok {
					t.Errorf("Apply(%v) from blank at %s should be valid", m, c.name)
				}
			}
		})
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		s := Goal(n)
		key := Compress(s)
		got := Decompress(key, n)
		if !Equal(got, s) {
			t.Errorf("N=%d: Decompress(Compress(s)) = %v, want %v", n, got, s)
		}
	}
}

func TestPattern(t *testing.T) {
	s := State{1, 2, 3, 4, 5, 6, 7, 8, 0}
	group := map[int]struct{}{1: {}, 2: {}, 5: {}, 8: {}}
	got := Pattern(s, group)
	want := State{1, 2, 0, 0, 5, 0, 0, 8, 0}
	if !Equal(got, want) {
		t.Fatalf("Pattern = %v, want %v", got, want)
	}
}

func TestNewStateRejectsNonSquare(t *testing.T) {
	_, err := NewState([]int{0, 1, 2})
	if err == nil {
		t.Fatal("expected error for non-square tile count")
	}
}

func TestNewStateRejectsNonPermutation(t *testing.T) {
	_, err := NewState([]int{1, 1, 2, 0})
	if err == nil {
		t.Fatal("expected error for non-permutation input")
	}
}

func TestNewStateAcceptsGoal(t *testing.T) {
	s, err := NewState([]int{1, 2, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(s, Goal(3)) {
		t.Fatalf("got %v, want goal", s)
	}
}
