package rcube

// Tracker wraps a Cube with move history, undo and fitness tracking.
type Tracker struct {
	cube           *Cube
	history        []Move
	keepHistory    bool
	fitness        int
	bestFitness    int // Highest fitness reached by a move since the last reset; 0 before any move
	fitnessChanged func(prev, cur int)
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker(opts ...TrackerOption) *Tracker {
	cfg := defaultTrackerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	t := &Tracker{
		cube:           New(),
		keepHistory:    cfg.moveHistory,
		fitnessChanged: cfg.fitnessChanged,
	}
	t.fitness = t.cube.Fitness()
	return t
}

// SetFitnessCallback sets a callback that fires when a move changes the fitness.
func (t *Tracker) SetFitnessCallback(cb func(prev, cur int)) {
	t.fitnessChanged = cb
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.fitness = t.cube.Fitness()
	t.bestFitness = 0
}

// Apply applies a move and records it.
func (t *Tracker) Apply(m Move) {
	if !m.Valid() {
		return
	}
	t.cube.Apply(m)
	if t.keepHistory {
		t.history = append(t.history, m)
	}
	t.checkFitness()
	if t.fitness > t.bestFitness {
		t.bestFitness = t.fitness
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.Apply(m)
	}
}

// ApplyNotation applies a named move. An unknown name is rejected and
// nothing is recorded.
func (t *Tracker) ApplyNotation(name string) error {
	m, err := ParseMove(name)
	if err != nil {
		return err
	}
	t.Apply(m)
	return nil
}

// Undo reverts the last recorded move by applying its inverse.
// It returns false when there is nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.history) == 0 {
		return 0, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.Apply(last.Inverse())
	t.checkFitness()
	return last, true
}

// checkFitness refreshes the fitness and fires the callback on change.
func (t *Tracker) checkFitness() {
	prev := t.fitness
	t.fitness = t.cube.Fitness()
	if t.fitness != prev && t.fitnessChanged != nil {
		t.fitnessChanged(prev, t.fitness)
	}
}

// History returns a copy of the recorded moves.
func (t *Tracker) History() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// Len returns the number of recorded moves.
func (t *Tracker) Len() int {
	return len(t.history)
}

// Fitness returns the current fitness.
func (t *Tracker) Fitness() int {
	return t.fitness
}

// BestFitness returns the highest fitness reached by an applied move
// since the last reset. The solved starting state does not count, so a
// tracker with no moves reports 0. Undo never raises it.
func (t *Tracker) BestFitness() int {
	return t.bestFitness
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns a snapshot of the underlying cube.
func (t *Tracker) Cube() *Cube {
	return t.cube.Clone()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
