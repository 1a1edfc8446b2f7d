package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/rcube"
)

// execer is satisfied by *sql.DB, *sql.Tx and *DB.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// CreateBatch appends moves to a session in a single transaction,
// numbering them from startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, startIndex int, moves []rcube.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		return r.CreateBatchTx(tx, sessionID, startIndex, moves)
	})
}

// CreateBatchTx is CreateBatch inside a caller-owned transaction.
func (r *MoveRepository) CreateBatchTx(tx *sql.Tx, sessionID string, startIndex int, moves []rcube.Move) error {
	for i, move := range moves {
		_, err := tx.Exec(`
			INSERT INTO moves (session_id, move_index, notation)
			VALUES (?, ?, ?)
		`, sessionID, startIndex+i, move.String())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
		}
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// DeleteLastTx removes the n most recent moves of a session and returns
// how many were removed.
func (r *MoveRepository) DeleteLastTx(tx *sql.Tx, sessionID string, n int) (int, error) {
	result, err := tx.Exec(`
		DELETE FROM moves
		WHERE move_id IN (
			SELECT move_id FROM moves
			WHERE session_id = ?
			ORDER BY move_index DESC
			LIMIT ?
		)
	`, sessionID, n)
	if err != nil {
		return 0, fmt.Errorf("failed to delete moves: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted moves: %w", err)
	}
	return int(deleted), nil
}

// DeleteAllTx removes every move of a session.
func (r *MoveRepository) DeleteAllTx(tx *sql.Tx, sessionID string) error {
	if _, err := tx.Exec("DELETE FROM moves WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete moves: %w", err)
	}
	return nil
}

// ToMoves converts MoveRecords back to moves. A record holding an
// unknown notation is reported with its index.
func ToMoves(records []MoveRecord) ([]rcube.Move, error) {
	moves := make([]rcube.Move, len(records))
	for i, r := range records {
		m, err := rcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
