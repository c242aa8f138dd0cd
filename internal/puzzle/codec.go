package puzzle

import (
	"math/bits"
	"sync"
)

var bitWidthCache sync.Map // int (N) -> int (bits per tile value)

// bitWidth returns ceil(log2(N^2)), the number of bits needed to store any
// tile value 0..N^2-1, caching the result per N like the teacher's
// per-N Zobrist/shift tables (they never change once computed).
func bitWidth(n int) int {
	if v, ok := bitWidthCache.Load(n); ok {
		return v.(int)
	}
	bw := bits.Len(uint(n*n - 1))
	if bw == 0 {
		bw = 1
	}
	actual, _ := bitWidthCache.LoadOrStore(n, bw)
	return actual.(int)
}

// Compress packs a State into a single non-negative integer: each tile
// value occupies a fixed-width field of bitWidth(N) bits, most-significant
// field first. The packing is bijective on valid states and stable across
// runs, so PDB artefacts built with it remain portable.
func Compress(s State) uint64 {
	bw := bitWidth(s.Size())
	var key uint64
	for _, v := range s {
		key = (key << uint(bw)) | uint64(v)
	}
	return key
}

// Decompress is the exact inverse of Compress for a board of the given size.
func Decompress(key uint64, n int) State {
	bw := uint(bitWidth(n))
	mask := uint64(1)<<bw - 1
	length := n * n
	out := make(State, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = int(key & mask)
		key >>= bw
	}
	return out
}

// maxPackedMoves is the largest move-sequence length CompressMoves can
// pack into a uint64: after the 8-bit length field, 56 bits remain for
// 2-bit move codes (spec.md §4.2 / §7 InternalOverflow).
const maxPackedMoves = (64 - 8) / 2

// CompressMoves packs a move sequence into a single integer: the low 8
// bits hold the sequence length, and the remaining bits hold each move's
// 2-bit code, most-recent move at the least-significant end of the moves
// region (the first move occupies the highest bit position of the
// length-many codes). Returns ErrInternalOverflow if the sequence is
// longer than maxPackedMoves (28) moves; callers that need to keep going
// (e.g. the frontier) must fall back to uncompressed storage in that case.
func CompressMoves(moves []Move) (uint64, error) {
	if len(moves) > maxPackedMoves {
		return 0, ErrInternalOverflow
	}
	var packed uint64
	for _, m := range moves {
		packed = (packed << 2) | uint64(m)
	}
	return (packed << 8) | uint64(len(moves)), nil
}

// MovesLength extracts a packed move sequence's length without
// decompressing the moves themselves.
func MovesLength(packed uint64) int {
	return int(packed & 0xFF)
}

// DecompressMoves is the exact inverse of CompressMoves.
func DecompressMoves(packed uint64) []Move {
	length := MovesLength(packed)
	bitsField := packed >> 8
	moves := make([]Move, length)
	for i := length - 1; i >= 0; i-- {
		moves[i] = Move(bitsField & 0b11)
		bitsField >>= 2
	}
	return moves
}
