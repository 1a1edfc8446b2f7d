// Package notation provides move sequence parsing, formatting and
// simplification on top of the rcube move vocabulary.
package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/rcube"
)

// ParseSequence parses a whitespace-separated sequence of moves such as
// "R U -R -U". The first unknown move aborts parsing; the returned error
// matches rcube.ErrInvalidMove.
func ParseSequence(s string) ([]rcube.Move, error) {
	return ParseFields(strings.Fields(s))
}

// ParseFields parses move names that are already split, e.g. command
// line arguments. Each field may itself hold several space-separated moves.
func ParseFields(fields []string) ([]rcube.Move, error) {
	moves := make([]rcube.Move, 0, len(fields))
	pos := 0
	for _, field := range fields {
		for _, part := range strings.Fields(field) {
			pos++
			move, err := rcube.ParseMove(part)
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", pos, err)
			}
			moves = append(moves, move)
		}
	}
	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []rcube.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}

// Inverse returns the sequence that undoes moves.
func Inverse(moves []rcube.Move) []rcube.Move {
	return rcube.InverseSequence(moves)
}

// Simplify removes moves that cancel out: a move directly followed by
// its inverse, and four identical moves in a row. Cancellation cascades,
// so "R U -U -R" simplifies to nothing. The result always leaves a cube
// in the same state as the input.
func Simplify(moves []rcube.Move) []rcube.Move {
	out := make([]rcube.Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n > 0 && out[n-1] == m.Inverse() {
			out = out[:n-1]
			continue
		}
		if n >= 3 && out[n-1] == m && out[n-2] == m && out[n-3] == m {
			out = out[:n-3]
			continue
		}
		out = append(out, m)
	}
	return out
}
