package puzzle

// Move is a unit displacement of the blank tile, encoded directly as the
// 2-bit code used by the move-packing codec (see codec.go): the enum value
// IS the wire code, so CompressMoves needs no translation table.
type Move uint8

const (
	Up    Move = 0b00
	Down  Move = 0b01
	Left  Move = 0b10
	Right Move = 0b11
)

// Delta returns the (dr, dc) displacement a move applies to the blank's
// position. Matches the canonical blank-displacement convention: UP moves
// the blank up a row (the tile above slides down), DOWN moves it down a
// row, LEFT moves it right a column (the tile to its right slides left)
// — the move name always describes the direction the *sliding tile*
// appears to travel, not the blank.
func (m Move) Delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, 1
	case Right:
		return 0, -1
	default:
		panic("puzzle: invalid move")
	}
}

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic("puzzle: invalid move")
	}
}

// String renders the move the way the solver's output and the CLI print
// it: one of "UP", "DOWN", "LEFT", "RIGHT".
func (m Move) String() string {
	switch m {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "INVALID"
	}
}

// ParseMove parses a move name as printed by String.
func ParseMove(s string) (Move, bool) {
	switch s {
	case "UP":
		return Up, true
	case "DOWN":
		return Down, true
	case "LEFT":
		return Left, true
	case "RIGHT":
		return Right, true
	default:
		return 0, false
	}
}
