// Package session manages practice sessions: a cube whose move log is
// persisted, so it can be resumed, extended and undone across runs.
package session

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/rcube"
	"github.com/SeamusWaldron/rcube/internal/notation"
	"github.com/SeamusWaldron/rcube/internal/storage"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session: not found")

// Summary describes the current state of a session.
type Summary struct {
	Session     storage.Session
	MoveCount   int
	Fitness     int
	BestFitness int // highest fitness after any logged move; 0 for an empty log
	Solved      bool
	Moves       []rcube.Move
	Simplified  []rcube.Move
	Cube        *rcube.Cube
}

// Manager runs session operations against the database.
type Manager struct {
	db          *storage.DB
	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
}

// NewManager creates a new session manager.
func NewManager(db *storage.DB) *Manager {
	return &Manager{
		db:          db,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// Start creates a new session on a solved cube.
func (m *Manager) Start(notes string) (string, error) {
	id, err := m.sessionRepo.Create(notes)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return id, nil
}

// Last returns the ID of the most recent session.
func (m *Manager) Last() (string, error) {
	s, err := m.sessionRepo.GetLast()
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", ErrSessionNotFound
	}
	return s.SessionID, nil
}

// List returns recent sessions, newest first.
func (m *Manager) List(limit int) ([]storage.Session, error) {
	return m.sessionRepo.List(limit)
}

// Delete removes a session and its moves.
func (m *Manager) Delete(sessionID string) error {
	if _, err := m.get(sessionID); err != nil {
		return err
	}
	return m.sessionRepo.Delete(sessionID)
}

func (m *Manager) get(sessionID string) (*storage.Session, error) {
	s, err := m.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s, nil
}

// Load replays the session's move log onto a solved cube.
func (m *Manager) Load(sessionID string) (*rcube.Tracker, error) {
	if _, err := m.get(sessionID); err != nil {
		return nil, err
	}

	moves, err := m.loadMoves(sessionID)
	if err != nil {
		return nil, err
	}

	tracker := rcube.NewTracker()
	tracker.ApplyMoves(moves)
	return tracker, nil
}

func (m *Manager) loadMoves(sessionID string) ([]rcube.Move, error) {
	records, err := m.moveRepo.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return nil, fmt.Errorf("corrupt move log for session %s: %w", sessionID, err)
	}
	return moves, nil
}

// Apply appends moves to the session and returns the new fitness. The
// moves and the fitness are stored in one transaction.
func (m *Manager) Apply(sessionID string, moves []rcube.Move) (int, error) {
	tracker, err := m.Load(sessionID)
	if err != nil {
		return 0, err
	}

	for _, mv := range moves {
		if !mv.Valid() {
			return 0, &rcube.InvalidMoveError{Notation: fmt.Sprintf("Move(%d)", uint8(mv))}
		}
	}

	start := tracker.Len()
	tracker.ApplyMoves(moves)
	fitness := tracker.Fitness()

	err = m.db.Transaction(func(tx *sql.Tx) error {
		if err := m.moveRepo.CreateBatchTx(tx, sessionID, start, moves); err != nil {
			return err
		}
		return m.sessionRepo.UpdateFitnessTx(tx, sessionID, fitness)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply moves: %w", err)
	}

	return fitness, nil
}

// ApplyNotation parses a move sequence and applies it to the session.
// Nothing is stored if any move is unknown.
func (m *Manager) ApplyNotation(sessionID, sequence string) (int, error) {
	moves, err := notation.ParseSequence(sequence)
	if err != nil {
		return 0, err
	}
	return m.Apply(sessionID, moves)
}

// Undo removes the last n moves and returns the undone moves, most
// recent first, along with the new fitness.
func (m *Manager) Undo(sessionID string, n int) ([]rcube.Move, int, error) {
	if n <= 0 {
		return nil, 0, fmt.Errorf("undo count must be positive, got %d", n)
	}

	tracker, err := m.Load(sessionID)
	if err != nil {
		return nil, 0, err
	}

	var undone []rcube.Move
	for len(undone) < n {
		mv, ok := tracker.Undo()
		if !ok {
			break
		}
		undone = append(undone, mv)
	}
	fitness := tracker.Fitness()

	err = m.db.Transaction(func(tx *sql.Tx) error {
		if _, err := m.moveRepo.DeleteLastTx(tx, sessionID, len(undone)); err != nil {
			return err
		}
		return m.sessionRepo.UpdateFitnessTx(tx, sessionID, fitness)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to undo moves: %w", err)
	}

	return undone, fitness, nil
}

// Reset clears the session's move log, returning it to a solved cube.
func (m *Manager) Reset(sessionID string) error {
	if _, err := m.get(sessionID); err != nil {
		return err
	}

	return m.db.Transaction(func(tx *sql.Tx) error {
		if err := m.moveRepo.DeleteAllTx(tx, sessionID); err != nil {
			return err
		}
		return m.sessionRepo.UpdateFitnessTx(tx, sessionID, rcube.NumFacelets)
	})
}

// Summary returns the session's current state.
func (m *Manager) Summary(sessionID string) (*Summary, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}

	moves, err := m.loadMoves(sessionID)
	if err != nil {
		return nil, err
	}

	tracker := rcube.NewTracker()
	tracker.ApplyMoves(moves)

	return &Summary{
		Session:     *s,
		MoveCount:   len(moves),
		Fitness:     tracker.Fitness(),
		BestFitness: tracker.BestFitness(),
		Solved:      tracker.IsSolved(),
		Moves:       moves,
		Simplified:  notation.Simplify(moves),
		Cube:        tracker.Cube(),
	}, nil
}
