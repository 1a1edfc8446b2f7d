package rcube

// Rotation primitives. Every named move is one face rotation (skipped for
// the E, M and S slices) composed with one ring rotation. All of them
// work on fixed-size temporaries and never allocate.

// at returns a pointer to the facelet at face, row, col.
func (c *Cube) at(face Face, row, col int) *Face {
	return &c.facelets[Index(face, row, col)]
}

// rotateFaceCW rotates the 8 border facelets of a face 90 degrees
// clockwise. The center never moves.
func (c *Cube) rotateFaceCW(face Face) {
	old := c.Face(face)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			*c.at(face, row, col) = old[(2-col)*3+row]
		}
	}
}

// rotateFaceCCW rotates the 8 border facelets of a face 90 degrees
// counter-clockwise.
func (c *Cube) rotateFaceCCW(face Face) {
	old := c.Face(face)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			*c.at(face, row, col) = old[col*3+(2-row)]
		}
	}
}

// rotateRowLeft cycles one row across the side faces: F <- R <- B <- L <- F.
func (c *Cube) rotateRowLeft(row int) {
	for col := 0; col < 3; col++ {
		temp := *c.at(FaceF, row, col)
		*c.at(FaceF, row, col) = *c.at(FaceR, row, col)
		*c.at(FaceR, row, col) = *c.at(FaceB, row, col)
		*c.at(FaceB, row, col) = *c.at(FaceL, row, col)
		*c.at(FaceL, row, col) = temp
	}
}

// rotateRowRight cycles one row across the side faces: F <- L <- B <- R <- F.
func (c *Cube) rotateRowRight(row int) {
	for col := 0; col < 3; col++ {
		temp := *c.at(FaceF, row, col)
		*c.at(FaceF, row, col) = *c.at(FaceL, row, col)
		*c.at(FaceL, row, col) = *c.at(FaceB, row, col)
		*c.at(FaceB, row, col) = *c.at(FaceR, row, col)
		*c.at(FaceR, row, col) = temp
	}
}

// rotateColumnUp cycles column col through F <- D <- B <- U <- F.
// B is seen from behind, so its column is 2-col and runs upside down.
func (c *Cube) rotateColumnUp(col int) {
	var front [3]Face
	for i := 0; i < 3; i++ {
		front[i] = *c.at(FaceF, i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceF, i, col) = *c.at(FaceD, i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceD, i, col) = *c.at(FaceB, 2-i, 2-col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceB, i, 2-col) = *c.at(FaceU, 2-i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceU, i, col) = front[i]
	}
}

// rotateColumnDown is the inverse of rotateColumnUp: F <- U <- B <- D <- F.
func (c *Cube) rotateColumnDown(col int) {
	var front [3]Face
	for i := 0; i < 3; i++ {
		front[i] = *c.at(FaceF, i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceF, i, col) = *c.at(FaceU, i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceU, i, col) = *c.at(FaceB, 2-i, 2-col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceB, i, 2-col) = *c.at(FaceD, 2-i, col)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceD, i, col) = front[i]
	}
}

// rotateColumnCW cycles the ring around the F/B axis at depth idx.
// R and L take part by column, U and D by row:
//
//	R column idx   <- U row 2-idx
//	U row 2-idx    <- L column 2-idx (reversed)
//	L column 2-idx <- D row idx
//	D row idx      <- R column idx (reversed)
func (c *Cube) rotateColumnCW(idx int) {
	var right [3]Face
	for i := 0; i < 3; i++ {
		right[i] = *c.at(FaceR, i, idx)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceR, i, idx) = *c.at(FaceU, 2-idx, i)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceU, 2-idx, i) = *c.at(FaceL, 2-i, 2-idx)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceL, i, 2-idx) = *c.at(FaceD, idx, i)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceD, idx, i) = right[2-i]
	}
}

// rotateColumnCCW is the inverse of rotateColumnCW.
func (c *Cube) rotateColumnCCW(idx int) {
	var right [3]Face
	for i := 0; i < 3; i++ {
		right[i] = *c.at(FaceR, i, idx)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceR, i, idx) = *c.at(FaceD, idx, 2-i)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceD, idx, i) = *c.at(FaceL, i, 2-idx)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceL, i, 2-idx) = *c.at(FaceU, 2-idx, 2-i)
	}
	for i := 0; i < 3; i++ {
		*c.at(FaceU, 2-idx, i) = right[i]
	}
}
