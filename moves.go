package rcube

// Common sequences.
//
// Example:
//
//	cube := rcube.New()
//	cube.ApplyMoves(rcube.SexyMove)
var (
	// SexyMove is the commutator R U -R -U. Six repetitions return the
	// cube to where it started.
	SexyMove = []Move{R, U, RPrime, UPrime}

	// InverseSexyMove undoes SexyMove.
	InverseSexyMove = []Move{U, R, UPrime, RPrime}
)

// InverseSequence returns the sequence that undoes moves: the moves in
// reverse order, each inverted.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
