package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/rcube"
)

// Session represents a practice session in the database.
type Session struct {
	SessionID string
	CreatedAt time.Time
	Notes     *string
	Fitness   int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session on a solved cube and returns its ID.
func (r *SessionRepository) Create(notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, created_at, notes, fitness)
		VALUES (?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339Nano), notesPtr, rcube.NumFacelets)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID. It returns nil, nil when the session does not exist.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT session_id, created_at, notes, fitness
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &createdAtStr, &s.Notes, &s.Fitness)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
	return &s, nil
}

// GetLast retrieves the most recently created session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY rowid DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, created_at, notes, fitness
		FROM sessions
		ORDER BY rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var createdAtStr string
		if err := rows.Scan(&s.SessionID, &createdAtStr, &s.Notes, &s.Fitness); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// UpdateFitness stores the fitness of the session's current cube.
func (r *SessionRepository) UpdateFitness(sessionID string, fitness int) error {
	return updateFitness(r.db, sessionID, fitness)
}

// UpdateFitnessTx is UpdateFitness inside a transaction.
func (r *SessionRepository) UpdateFitnessTx(tx *sql.Tx, sessionID string, fitness int) error {
	return updateFitness(tx, sessionID, fitness)
}

func updateFitness(db execer, sessionID string, fitness int) error {
	_, err := db.Exec("UPDATE sessions SET fitness = ? WHERE session_id = ?", fitness, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session fitness: %w", err)
	}
	return nil
}

// Delete deletes a session and its moves (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
