package rcube

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// randomMoves returns a reproducible move sequence.
func randomMoves(seed int64, n int) []Move {
	rng := rand.New(rand.NewSource(seed))
	all := AllMoves()
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = all[rng.Intn(len(all))]
	}
	return moves
}

func checkColorCounts(t *testing.T, c *Cube) {
	t.Helper()
	for face, n := range c.ColorCounts() {
		if n != 9 {
			t.Errorf("color %v appears %d times, want 9", Face(face), n)
		}
	}
}

// faceletString renders the facelets as six space-separated groups of
// nine letters, one group per face in Index order.
func faceletString(c *Cube) string {
	var b strings.Builder
	for i, f := range c.Facelets() {
		if i > 0 && i%9 == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.String())
	}
	return b.String()
}

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if got := c.Fitness(); got != 54 {
		t.Errorf("Fitness() = %d, want 54", got)
	}
	for face := Face(0); face < NumFaces; face++ {
		for _, f := range c.Face(face) {
			if f != face {
				t.Errorf("face %v holds %v on a solved cube", face, f)
			}
		}
	}
}

func TestIndexLayout(t *testing.T) {
	if got := Index(FaceF, 0, 0); got != 0 {
		t.Errorf("Index(F,0,0) = %d, want 0", got)
	}
	if got := Index(FaceR, 1, 2); got != 14 {
		t.Errorf("Index(R,1,2) = %d, want 14", got)
	}
	if got := Index(FaceD, 2, 2); got != 53 {
		t.Errorf("Index(D,2,2) = %d, want 53", got)
	}

	c := New()
	c.Apply(R)
	facelets := c.Facelets()
	for face := Face(0); face < NumFaces; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if facelets[Index(face, row, col)] != c.At(face, row, col) {
					t.Fatalf("Facelets and At disagree at %v %d %d", face, row, col)
				}
			}
		}
	}
}

func TestOutOfRangeAccessors(t *testing.T) {
	c := New()
	tests := []struct {
		face     Face
		row, col int
	}{
		{Face(6), 0, 0},
		{Face(255), 1, 1},
		{FaceF, 3, 0},
		{FaceU, 0, -1},
	}
	for _, tt := range tests {
		if got := c.At(tt.face, tt.row, tt.col); got.Valid() {
			t.Errorf("At(%d, %d, %d) = %v, want an invalid face", tt.face, tt.row, tt.col, got)
		}
	}

	for i, f := range c.Face(Face(6)) {
		if f.Valid() {
			t.Errorf("Face(6)[%d] = %v, want an invalid face", i, f)
		}
	}
	if got := c.Face(FaceD); got[4] != FaceD {
		t.Errorf("Face(D) center = %v, want D", got[4])
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves() {
		c := New()
		c.Apply(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %v", m)
		}
		// A quarter turn displaces exactly one ring of 12 facelets.
		if got := c.Fitness(); got != 42 {
			t.Errorf("Fitness after %v = %d, want 42", m, got)
		}
	}
}

func TestMoveFaceletPositions(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{U, "RRRFFFFFF BBBRRRRRR LLLBBBBBB FFFLLLLLL UUUUUUUUU DDDDDDDDD"},
		{UPrime, "LLLFFFFFF FFFRRRRRR RRRBBBBBB BBBLLLLLL UUUUUUUUU DDDDDDDDD"},
		{E, "FFFLLLFFF RRRFFFRRR BBBRRRBBB LLLBBBLLL UUUUUUUUU DDDDDDDDD"},
		{D, "FFFFFFLLL RRRRRRFFF BBBBBBRRR LLLLLLBBB UUUUUUUUU DDDDDDDDD"},
		{R, "FFDFFDFFD RRRRRRRRR UBBUBBUBB LLLLLLLLL UUFUUFUUF DDBDDBDDB"},
		{L, "UFFUFFUFF RRRRRRRRR BBDBBDBBD LLLLLLLLL BUUBUUBUU FDDFDDFDD"},
		{M, "FUFFUFFUF RRRRRRRRR BDBBDBBDB LLLLLLLLL UBUUBUUBU DFDDFDDFD"},
		{F, "FFFFFFFFF URRURRURR BBBBBBBBB LLDLLDLLD UUUUUULLL RRRDDDDDD"},
		{B, "FFFFFFFFF RRDRRDRRD BBBBBBBBB ULLULLULL RRRUUUUUU DDDDDDLLL"},
		{S, "FFFFFFFFF RURRURRUR BBBBBBBBB LDLLDLLDL UUULLLUUU DDDRRRDDD"},
		{SPrime, "FFFFFFFFF RDRRDRRDR BBBBBBBBB LULLULLUL UUURRRUUU DDDLLLDDD"},
	}

	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			c := New()
			c.Apply(tt.move)
			if got := faceletString(c); got != tt.want {
				t.Errorf("after %v:\n got %s\nwant %s", tt.move, got, tt.want)
				t.Log(c.String())
			}
		})
	}
}

func TestScrambleFaceletPositions(t *testing.T) {
	c := New()
	fitness, err := c.ApplyAll(strings.Fields("R U -F M S -E D L B -R -U F -M E -S -D -L -B U U R F"))
	if err != nil {
		t.Fatalf("ApplyAll() error = %v", err)
	}

	want := "BFFDUUFBF RBLLFDRLF BUUBDBLFR BRDLBFUDL LFDURRRLU DUDRLDBRU"
	if got := faceletString(c); got != want {
		t.Errorf("scrambled cube:\n got %s\nwant %s", got, want)
		t.Log(c.String())
	}
	if fitness != 16 {
		t.Errorf("fitness = %d, want 16", fitness)
	}
}

func TestMoveOrderIsFour(t *testing.T) {
	for _, m := range AllMoves() {
		c := New()
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestFaceTurnsKeepCenters(t *testing.T) {
	// Slice moves carry centers along; face turns never do.
	f := New()
	for _, m := range AllMoves() {
		if m.IsSlice() {
			continue
		}
		f.Apply(m)
	}
	for face := Face(0); face < NumFaces; face++ {
		if got := f.At(face, 1, 1); got != face {
			t.Errorf("center of %v is %v after face turns only", face, got)
		}
	}
}

func TestColorCountsConserved(t *testing.T) {
	c := New()
	for i, m := range randomMoves(1, 500) {
		c.Apply(m)
		if i%50 == 0 {
			checkColorCounts(t, c)
		}
	}
	checkColorCounts(t, c)
}

func TestMoveThenInverseRestoresState(t *testing.T) {
	c := New()
	c.ApplyMoves(randomMoves(2, 40))

	for _, m := range AllMoves() {
		before := c.Facelets()
		c.Apply(m)
		c.Apply(m.Inverse())
		if c.Facelets() != before {
			t.Errorf("%v followed by %v did not restore the state", m, m.Inverse())
		}

		name, err := Invert(m.String())
		if err != nil {
			t.Fatalf("Invert(%q): %v", m, err)
		}
		c.Apply(m)
		if err := c.ApplyNotation(name); err != nil {
			t.Fatalf("ApplyNotation(%q): %v", name, err)
		}
		if c.Facelets() != before {
			t.Errorf("%v followed by %s did not restore the state", m, name)
		}
	}
}

func TestSequenceReversal(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		c := New()
		c.ApplyMoves(randomMoves(seed+100, 10))
		start := c.Clone()

		moves := randomMoves(seed, 25)
		c.ApplyMoves(moves)
		c.ApplyMoves(InverseSequence(moves))

		if !c.Equal(start) {
			t.Errorf("seed %d: sequence followed by its inverse did not restore the state", seed)
			t.Log(c.String())
		}
	}
}

func TestSequenceReversalByName(t *testing.T) {
	c := New()
	names := make([]string, 0, 20)
	for _, m := range randomMoves(3, 20) {
		names = append(names, m.String())
	}
	if _, err := c.ApplyAll(names); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}

	inverse := make([]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		name, err := Invert(names[i])
		if err != nil {
			t.Fatalf("Invert(%q): %v", names[i], err)
		}
		inverse = append(inverse, name)
	}

	fitness, err := c.ApplyAll(inverse)
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if fitness != 54 {
		t.Errorf("fitness after reversal = %d, want 54", fitness)
		t.Log(c.String())
	}
}

func TestFitnessBounds(t *testing.T) {
	c := New()
	for _, m := range randomMoves(4, 300) {
		c.Apply(m)
		if f := c.Fitness(); f < 0 || f > 54 {
			t.Fatalf("Fitness() = %d, out of range", f)
		}
	}
	c.Reset()
	if got := c.Fitness(); got != 54 {
		t.Errorf("Fitness() after Reset = %d, want 54", got)
	}
}

func TestInvalidMoveRejected(t *testing.T) {
	c := New()
	c.ApplyMoves([]Move{R, U, F})
	before := c.Facelets()

	err := c.ApplyNotation("Q")
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ApplyNotation(Q) error = %v, want ErrInvalidMove", err)
	}
	var moveErr *InvalidMoveError
	if !errors.As(err, &moveErr) || moveErr.Notation != "Q" {
		t.Errorf("ApplyNotation(Q) error = %#v, want *InvalidMoveError for Q", err)
	}
	if c.Facelets() != before {
		t.Error("rejected move changed the cube")
	}

	// A bad name in the middle of a batch must not apply the moves before it.
	if _, err := c.ApplyAll([]string{"R", "U", "X", "F"}); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ApplyAll error = %v, want ErrInvalidMove", err)
	}
	if c.Facelets() != before {
		t.Error("rejected batch partially applied")
	}

	for _, bad := range []string{"", "u", "--U", "U'", "R2", " R"} {
		if err := c.ApplyNotation(bad); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ApplyNotation(%q) error = %v, want ErrInvalidMove", bad, err)
		}
	}
	if c.Facelets() != before {
		t.Error("rejected moves changed the cube")
	}
}

func TestInvalidMoveValueIgnored(t *testing.T) {
	c := New()
	c.Apply(Move(200))
	if !c.IsSolved() {
		t.Error("out-of-range Move value changed the cube")
	}
}

func TestInvert(t *testing.T) {
	if got, _ := Invert("U"); got != "-U" {
		t.Errorf("Invert(U) = %q, want -U", got)
	}
	if got, _ := Invert("-U"); got != "U" {
		t.Errorf("Invert(-U) = %q, want U", got)
	}

	for _, m := range AllMoves() {
		once, err := Invert(m.String())
		if err != nil {
			t.Fatalf("Invert(%q): %v", m, err)
		}
		twice, err := Invert(once)
		if err != nil {
			t.Fatalf("Invert(%q): %v", once, err)
		}
		if twice != m.String() {
			t.Errorf("Invert(Invert(%q)) = %q", m, twice)
		}
		if once != m.Inverse().String() {
			t.Errorf("Invert(%q) = %q, Inverse() = %v", m, once, m.Inverse())
		}
		if m.Inverse().Inverse() != m {
			t.Errorf("%v.Inverse().Inverse() = %v", m, m.Inverse().Inverse())
		}
	}

	if _, err := Invert("Q"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Invert(Q) error = %v, want ErrInvalidMove", err)
	}
}

func TestParseMove(t *testing.T) {
	if len(AllMoves()) != 18 {
		t.Fatalf("AllMoves() has %d moves, want 18", len(AllMoves()))
	}
	for _, m := range AllMoves() {
		got, err := ParseMove(m.String())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m, err)
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %v", m, got)
		}
		if m.IsReverse() != (m.String()[0] == '-') {
			t.Errorf("%v.IsReverse() = %v", m, m.IsReverse())
		}
	}
	if !M.IsSlice() || !SPrime.IsSlice() || R.IsSlice() {
		t.Error("IsSlice misclassified a move")
	}
	if FPrime.Base() != F {
		t.Errorf("FPrime.Base() = %v, want F", FPrime.Base())
	}
}

func TestSexyMoveScenario(t *testing.T) {
	c := New()
	fitness, err := c.ApplyAll([]string{"R", "U", "-R", "-U"})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if fitness >= 54 {
		t.Errorf("fitness after R U -R -U = %d, want < 54", fitness)
	}
	checkColorCounts(t, c)

	fitness, err = c.ApplyAll([]string{"U", "R", "-U", "-R"})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if fitness != 54 {
		t.Errorf("fitness after inverse = %d, want 54", fitness)
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
		if i < 5 && c.IsSolved() {
			t.Errorf("solved after only %d repetitions", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestMovesDoNotCommute(t *testing.T) {
	a := New()
	a.ApplyMoves([]Move{U, R})
	b := New()
	b.ApplyMoves([]Move{R, U})
	if a.Equal(b) {
		t.Error("U R and R U should produce different states")
	}
}

func TestIndependentInstances(t *testing.T) {
	a := New()
	b := New()
	a.Apply(F)
	if !b.IsSolved() {
		t.Error("moving one cube changed another")
	}

	c := a.Clone()
	c.Apply(FPrime)
	if a.IsSolved() || !c.IsSolved() {
		t.Error("Clone shares state with the original")
	}
}

func TestString(t *testing.T) {
	want := "" +
		"      U U U \n" +
		"      U U U \n" +
		"      U U U \n" +
		"L L L F F F R R R B B B \n" +
		"L L L F F F R R R B B B \n" +
		"L L L F F F R R R B B B \n" +
		"      D D D \n" +
		"      D D D \n" +
		"      D D D \n"
	if got := New().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves([]Move{R, U, F})
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}

	m, ok := tr.Undo()
	if !ok || m != F {
		t.Errorf("Undo() = %v, %v, want F, true", m, ok)
	}
	tr.Undo()
	tr.Undo()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after undoing every move")
		t.Log(tr.CubeString())
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo() on empty history should report false")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.Apply(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if tr.Len() != 0 || tr.BestFitness() != 0 {
		t.Errorf("Reset left len=%d best=%d", tr.Len(), tr.BestFitness())
	}
}

func TestTrackerBestFitness(t *testing.T) {
	tr := NewTracker()
	if tr.BestFitness() != 0 {
		t.Errorf("BestFitness() = %d before any move, want 0", tr.BestFitness())
	}

	// Fitness after each move: 42, 32, 26, 32.
	tr.ApplyMoves([]Move{R, U, F, UPrime})
	if tr.Fitness() != 32 {
		t.Errorf("Fitness() = %d, want 32", tr.Fitness())
	}
	if tr.BestFitness() != 42 {
		t.Errorf("BestFitness() = %d, want 42", tr.BestFitness())
	}

	for tr.Len() > 0 {
		tr.Undo()
	}
	if !tr.IsSolved() {
		t.Fatal("Tracker should be solved after undoing every move")
	}
	if tr.BestFitness() != 42 {
		t.Errorf("BestFitness() = %d after undo, want 42", tr.BestFitness())
	}

	tr.ApplyMoves(InverseSequence(SexyMove))
	tr.ApplyMoves(SexyMove)
	if tr.BestFitness() != 54 {
		t.Errorf("BestFitness() = %d after returning to solved, want 54", tr.BestFitness())
	}
}

func TestTrackerFitnessCallback(t *testing.T) {
	var changes [][2]int
	tr := NewTracker(WithFitnessCallback(func(prev, cur int) {
		changes = append(changes, [2]int{prev, cur})
	}))

	tr.Apply(R)
	tr.Apply(RPrime)

	if len(changes) != 2 {
		t.Fatalf("callback fired %d times, want 2: %v", len(changes), changes)
	}
	if changes[0] != [2]int{54, 42} || changes[1] != [2]int{42, 54} {
		t.Errorf("callback changes = %v", changes)
	}
	if tr.BestFitness() != 54 {
		t.Errorf("BestFitness() = %d, want 54", tr.BestFitness())
	}

	var replaced int
	tr.SetFitnessCallback(func(prev, cur int) { replaced++ })
	tr.Apply(F)
	if replaced != 1 || len(changes) != 2 {
		t.Errorf("SetFitnessCallback: new callback fired %d times, old one %d", replaced, len(changes)-2)
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.ApplyMoves(SexyMove)
	if tr.Len() != 0 {
		t.Errorf("Len() = %d with history disabled", tr.Len())
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo() should report false with history disabled")
	}
	if tr.Fitness() == 54 {
		t.Error("moves were not applied")
	}
}

func TestTrackerSnapshotIsIndependent(t *testing.T) {
	tr := NewTracker()
	snap := tr.Cube()
	snap.Apply(R)
	if !tr.IsSolved() {
		t.Error("mutating the snapshot changed the tracker")
	}
	if err := tr.ApplyNotation("Z"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ApplyNotation(Z) error = %v", err)
	}
	if tr.Len() != 0 {
		t.Error("rejected move was recorded")
	}
}
