package rcube

import "strings"

// Move is one of the 18 named quarter turns: the six face turns, the
// three middle slices and the reverse of each.
type Move uint8

const (
	U      Move = iota // Up clockwise
	UPrime             // Up reverse
	E                  // Equatorial slice
	EPrime             // Equatorial slice reverse
	D                  // Down clockwise
	DPrime             // Down reverse
	R                  // Right clockwise
	RPrime             // Right reverse
	L                  // Left clockwise
	LPrime             // Left reverse
	M                  // Middle slice
	MPrime             // Middle slice reverse
	F                  // Front clockwise
	FPrime             // Front reverse
	B                  // Back clockwise
	BPrime             // Back reverse
	S                  // Standing slice
	SPrime             // Standing slice reverse

	numMoves
)

// reversePrefix marks the reverse of a move in notation: "-U" undoes "U".
const reversePrefix = "-"

var moveNames = [numMoves]string{
	U: "U", UPrime: "-U",
	E: "E", EPrime: "-E",
	D: "D", DPrime: "-D",
	R: "R", RPrime: "-R",
	L: "L", LPrime: "-L",
	M: "M", MPrime: "-M",
	F: "F", FPrime: "-F",
	B: "B", BPrime: "-B",
	S: "S", SPrime: "-S",
}

// AllMoves returns the full move vocabulary in notation order.
func AllMoves() []Move {
	moves := make([]Move, numMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// Valid reports whether m is one of the 18 moves.
func (m Move) Valid() bool {
	return m < numMoves
}

// String returns the notation for the move, e.g. "R" or "-R".
func (m Move) String() string {
	if !m.Valid() {
		return "?"
	}
	return moveNames[m]
}

// IsReverse reports whether m is the reverse form of its base move.
func (m Move) IsReverse() bool {
	return m.Valid() && m%2 == 1
}

// Base returns the clockwise form of the move: Base(-R) is R.
func (m Move) Base() Move {
	return m &^ 1
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	if !m.Valid() {
		return m
	}
	return m ^ 1
}

// IsSlice reports whether m turns a middle slice (E, M or S), which has
// no face of its own.
func (m Move) IsSlice() bool {
	switch m.Base() {
	case E, M, S:
		return true
	default:
		return false
	}
}

// ParseMove parses a move name such as "U" or "-U".
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	return 0, &InvalidMoveError{Notation: s}
}

// Invert returns the name of the move that undoes the named move: a
// leading "-" is stripped, otherwise one is added.
// Invert(Invert(s)) == s for every valid name.
func Invert(s string) (string, error) {
	if _, err := ParseMove(s); err != nil {
		return "", err
	}
	if strings.HasPrefix(s, reversePrefix) {
		return strings.TrimPrefix(s, reversePrefix), nil
	}
	return reversePrefix + s, nil
}

// Apply applies a move to the cube. An invalid Move value leaves the
// cube unchanged.
func (c *Cube) Apply(m Move) {
	switch m {
	case U:
		c.rotateFaceCW(FaceU)
		c.rotateRowLeft(0)
	case UPrime:
		c.rotateFaceCCW(FaceU)
		c.rotateRowRight(0)
	case E:
		c.rotateRowRight(1)
	case EPrime:
		c.rotateRowLeft(1)
	case D:
		c.rotateFaceCW(FaceD)
		c.rotateRowRight(2)
	case DPrime:
		c.rotateFaceCCW(FaceD)
		c.rotateRowLeft(2)
	case R:
		c.rotateFaceCW(FaceR)
		c.rotateColumnUp(2)
	case RPrime:
		c.rotateFaceCCW(FaceR)
		c.rotateColumnDown(2)
	case L:
		c.rotateFaceCW(FaceL)
		c.rotateColumnDown(0)
	case LPrime:
		c.rotateFaceCCW(FaceL)
		c.rotateColumnUp(0)
	case M:
		c.rotateColumnDown(1)
	case MPrime:
		c.rotateColumnUp(1)
	case F:
		c.rotateFaceCW(FaceF)
		c.rotateColumnCW(0)
	case FPrime:
		c.rotateFaceCCW(FaceF)
		c.rotateColumnCCW(0)
	case B:
		c.rotateFaceCW(FaceB)
		c.rotateColumnCCW(2)
	case BPrime:
		c.rotateFaceCCW(FaceB)
		c.rotateColumnCW(2)
	case S:
		c.rotateColumnCW(1)
	case SPrime:
		c.rotateColumnCCW(1)
	}
}

// ApplyMoves applies a sequence of moves in order and returns the
// resulting fitness.
func (c *Cube) ApplyMoves(moves []Move) int {
	for _, m := range moves {
		c.Apply(m)
	}
	return c.Fitness()
}

// ApplyNotation applies a single named move. An unknown name returns an
// *InvalidMoveError and leaves the cube unchanged.
func (c *Cube) ApplyNotation(name string) error {
	m, err := ParseMove(name)
	if err != nil {
		return err
	}
	c.Apply(m)
	return nil
}

// ApplyAll applies a sequence of named moves and returns the resulting
// fitness. All names are checked before any move is applied, so an
// unknown name leaves the cube exactly as it was.
func (c *Cube) ApplyAll(names []string) (int, error) {
	moves, err := ParseMoves(names)
	if err != nil {
		return 0, err
	}
	return c.ApplyMoves(moves), nil
}

// ParseMoves parses a list of move names. It stops at the first unknown
// name.
func ParseMoves(names []string) ([]Move, error) {
	moves := make([]Move, len(names))
	for i, name := range names {
		m, err := ParseMove(name)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}
