package puzzle

import (
	"reflect"
	"testing"
)

func TestCompressMovesRoundTrip(t *testing.T) {
	seqs := [][]Move{
		{},
		{Up},
		{Down, Down, Left, Left, Up, Up, Left, Up},
		{Up, Down, Left, Right, Up, Down, Left, Right},
	}

	for _, seq := range seqs {
		packed, err := CompressMoves(seq)
		if err != nil {
			t.Fatalf("CompressMoves(%v): %v", seq, err)
		}
		got := DecompressMoves(packed)
		if len(seq) == 0 {
			if len(got) != 0 {
				t.Errorf("DecompressMoves(empty) = %v, want empty", got)
			}
		} else if !reflect.DeepEqual(got, seq) {
			t.Errorf("DecompressMoves(CompressMoves(%v)) = %v", seq, got)
		}
		if MovesLength(packed) != len(seq) {
			t.Errorf("MovesLength = %d, want %d", MovesLength(packed), len(seq))
		}
	}
}

func TestCompressMovesEmpty(t *testing.T) {
	packed, err := CompressMoves(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if packed != 0 {
		t.Errorf("compress_moves([]) = %d, want 0", packed)
	}
	if MovesLength(packed) != 0 {
		t.Errorf("moves_length(compress_moves([])) = %d, want 0", MovesLength(packed))
	}
}

func TestCompressMovesOverflow(t *testing.T) {
	seq := make([]Move, maxPackedMoves+1)
	if _, err := CompressMoves(seq); err != ErrInternalOverflow {
		t.Fatalf("expected ErrInternalOverflow, got %v", err)
	}
}

func TestMoveReverseIsInvolution(t *testing.T) {
	for _, m := range []Move{Up, Down, Left, Right} {
		if m.Reverse().Reverse() != m {
			t.Errorf("Reverse(Reverse(%v)) != %v", m, m)
		}
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, m := range []Move{Up, Down, Left, Right} {
		got, ok := ParseMove(m.String())
		if !ok || got != m {
			t.Errorf("ParseMove(%q) = %v, %v; want %v, true", m.String(), got, ok, m)
		}
	}
}
