// Package rcube models a 3x3x3 Rubik's cube as 54 colored facelets and
// the 18 quarter turns that permute them.
//
// # Moves
//
// The vocabulary is the six face turns U, D, R, L, F, B, the three middle
// slices E, M, S, and the reverse of each, written with a leading "-":
//
//	cube := rcube.New()
//	cube.Apply(rcube.R)
//	cube.Apply(rcube.UPrime)
//
//	// Or by name
//	fitness, err := cube.ApplyAll([]string{"R", "U", "-R", "-U"})
//
// Every move is a permutation of facelet positions, so each color always
// appears exactly 9 times, and a move followed by its inverse restores
// the previous state exactly.
//
// # Fitness
//
// Fitness counts the facelets whose color matches the color solved at
// their position. A solved cube scores 54.
//
//	fmt.Println(cube.Fitness())
//	fmt.Println(cube.IsSolved())
//
// # Tracking
//
// Tracker adds move history, undo and fitness callbacks on top of Cube:
//
//	t := rcube.NewTracker(rcube.WithFitnessCallback(func(prev, cur int) {
//	    fmt.Printf("fitness %d -> %d\n", prev, cur)
//	}))
//	t.ApplyMoves(rcube.SexyMove)
//	t.Undo()
package rcube
