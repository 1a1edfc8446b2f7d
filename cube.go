package rcube

import "strings"

// Face identifies one of the six cube faces. A facelet's color is named
// by the face it belongs to when the cube is solved, so Face doubles as
// the facelet color type.
type Face uint8

const (
	FaceF Face = 0 // Front
	FaceR Face = 1 // Right
	FaceB Face = 2 // Back
	FaceL Face = 3 // Left
	FaceU Face = 4 // Up
	FaceD Face = 5 // Down
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// NumFacelets is the number of facelets on the cube.
const NumFacelets = NumFaces * 9

func (f Face) String() string {
	switch f {
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < NumFaces
}

// Index returns the position of a facelet in the array returned by
// Facelets. Faces are stored in F, R, B, L, U, D order, each as a
// row-major 3x3 grid:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Row 0 of F, R, B and L is the ring turned by U and row 2 the ring
// turned by D. Columns of F, U and D line up with each other; B is seen
// from behind, so its columns run mirrored.
func Index(face Face, row, col int) int {
	return int(face)*9 + row*3 + col
}

// Cube represents a 3x3x3 Rubik's cube as 54 colored facelets.
//
// Cube is a plain value with no internal locking. Callers that share a
// Cube between goroutines must serialize access themselves.
type Cube struct {
	facelets [NumFacelets]Face
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores the solved configuration.
func (c *Cube) Reset() {
	for i := range c.facelets {
		c.facelets[i] = homeColor(i)
	}
}

// homeColor returns the color found at position i on a solved cube.
func homeColor(i int) Face {
	return Face(i / 9)
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold the same facelet at every position.
func (c *Cube) Equal(other *Cube) bool {
	return c.facelets == other.facelets
}

// Facelets returns a copy of all 54 facelets in Index order.
func (c *Cube) Facelets() [NumFacelets]Face {
	return c.facelets
}

// noFacelet is reported for positions off the cube. Its Valid is false.
const noFacelet Face = NumFaces

// At returns the facelet at the given face, row and column. An invalid
// face or a row or column outside 0..2 yields a Face whose Valid is false.
func (c *Cube) At(face Face, row, col int) Face {
	if !face.Valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return noFacelet
	}
	return c.facelets[Index(face, row, col)]
}

// Face returns the nine facelets of one face in row-major order. For an
// invalid face every entry is invalid.
func (c *Cube) Face(face Face) [9]Face {
	var out [9]Face
	if !face.Valid() {
		for i := range out {
			out[i] = noFacelet
		}
		return out
	}
	start := Index(face, 0, 0)
	copy(out[:], c.facelets[start:start+9])
	return out
}

// ColorCounts returns how many facelets of each color the cube holds.
// Every reachable state has exactly 9 of each.
func (c *Cube) ColorCounts() [NumFaces]int {
	var counts [NumFaces]int
	for _, f := range c.facelets {
		counts[f]++
	}
	return counts
}

// Fitness returns the number of facelets whose color matches the color
// solved at their position. A solved cube scores 54.
func (c *Cube) Fitness() int {
	fitness := 0
	for i, f := range c.facelets {
		if f == homeColor(i) {
			fitness++
		}
	}
	return fitness
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.Fitness() == NumFacelets
}

// String returns the cube unfolded as a net of face letters: U on top,
// the L F R B band in the middle and D at the bottom.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.At(face, row, col).String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
