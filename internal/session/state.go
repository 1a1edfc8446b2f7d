package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState represents the persistent CLI state between runs.
type AppState struct {
	ActiveSessionID string `json:"active_session_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// NewStateFile creates a new state file manager, loading any existing state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// SetActiveSession sets the active session ID.
func (sf *StateFile) SetActiveSession(sessionID string) error {
	sf.state.ActiveSessionID = sessionID
	return sf.Save()
}

// ClearActiveSession clears the active session ID.
func (sf *StateFile) ClearActiveSession() error {
	sf.state.ActiveSessionID = ""
	return sf.Save()
}

// ActiveSessionID returns the active session ID.
func (sf *StateFile) ActiveSessionID() string {
	return sf.state.ActiveSessionID
}
